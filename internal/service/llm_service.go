package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"nyaay-saathi/internal/models"
	"nyaay-saathi/pkg/config"

	"github.com/Role1776/gigago"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ErrEmptyCompletion is returned when the model answers with no choices.
var ErrEmptyCompletion = errors.New("no response from LLM")

// CompletionRequest is one call to the external model. System is sent ahead of
// Messages. JSON asks for a single JSON object back and selects the analysis
// model where the provider has one.
type CompletionRequest struct {
	System      string
	Messages    []models.ConversationMessage
	Temperature float64
	MaxTokens   int
	JSON        bool
}

// ChatModel is the external language model. Implementations make exactly one
// upstream call per Complete and never retry.
type ChatModel interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// OpenAIModel talks to any OpenAI-compatible chat completions endpoint.
type OpenAIModel struct {
	client        *openai.Client
	model         string
	analysisModel string
	logger        *zap.Logger
}

func NewOpenAIModel(cfg config.LLMConfig, logger *zap.Logger) *OpenAIModel {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &OpenAIModel{
		client:        openai.NewClientWithConfig(clientCfg),
		model:         cfg.Model,
		analysisModel: cfg.AnalysisModel,
		logger:        logger,
	}
}

func (m *OpenAIModel) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       m.model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}
	if req.JSON {
		chatReq.Model = m.analysisModel
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := m.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	m.logger.Debug("Model responded",
		zap.String("model", chatReq.Model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	return resp.Choices[0].Message.Content, nil
}

// GigaChatModel serves the same requests through Sber's GigaChat API.
type GigaChatModel struct {
	client *gigago.Client
	name   string
	logger *zap.Logger
}

func NewGigaChatModel(ctx context.Context, cfg config.GigaChatConfig, logger *zap.Logger) (*GigaChatModel, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}

	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	logger.Info("Using GigaChat model")

	return &GigaChatModel{
		client: client,
		name:   "GigaChat",
		logger: logger,
	}, nil
}

// Complete builds a fresh generative model per call so concurrent turns never
// share a system instruction or temperature. GigaChat has no JSON response
// mode; the analysis prompt asks for JSON explicitly instead.
func (m *GigaChatModel) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	model := m.client.GenerativeModel(m.name)
	messages := prepareGigaChat(model, req)

	resp, err := model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	m.logger.Debug("GigaChat responded", zap.Int("response_length", len(content)))

	return content, nil
}

func (m *GigaChatModel) Close() error {
	if m.client != nil {
		m.client.Close()
	}
	return nil
}

// prepareGigaChat copies the request settings onto model and converts the
// conversation. The model's own token limit stays when the request sets none.
func prepareGigaChat(model *gigago.GenerativeModel, req CompletionRequest) []gigago.Message {
	model.SystemInstruction = req.System
	model.Temperature = req.Temperature
	if req.MaxTokens > 0 {
		model.MaxTokens = int32(req.MaxTokens)
	}

	messages := make([]gigago.Message, 0, len(req.Messages))
	for _, msg := range req.Messages {
		switch msg.Role {
		case models.RoleUser:
			messages = append(messages, gigago.Message{Role: gigago.RoleUser, Content: msg.Content})
		case models.RoleAssistant:
			messages = append(messages, gigago.Message{Role: gigago.RoleAssistant, Content: msg.Content})
		}
	}
	return messages
}
