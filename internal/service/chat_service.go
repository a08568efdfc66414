package service

import (
	"context"
	"strings"

	"nyaay-saathi/internal/models"

	"go.uber.org/zap"
)

const (
	chatTemperature = 0.3
	chatMaxTokens   = 1000
)

const systemPrompt = `
You are a knowledgeable and trustworthy legal assistant trained in Indian laws, legal processes, and rights.
You assist users in understanding their legal position and navigating the Indian legal system.
Your responses should be easy to understand and conversational (in English or Hinglish), while maintaining legal precision and clarity.

Capabilities:
- Offer insights on Indian legislation (IPC, CrPC, IT Act, Consumer Protection Act, etc.)
- Clarify legal entitlements in common scenarios (arrest, FIR, landlord-tenant issues, consumer grievances, traffic offenses, etc.)
- Explain legal procedures (how to lodge an FIR, how to seek bail, structure of courts, etc.)
- Provide general guidance, not legal advice or representation
- Recommend official resources or consulting a qualified lawyer when necessary

Guidelines & Conduct:
- Refer only to existing Indian laws and publicly accessible legal information; do not create legal interpretations.
- Clearly state when a topic requires professional legal counsel or is beyond your scope.
- Always include the disclaimer: "I am an AI assistant and not a licensed legal advisor. Please consult a lawyer for serious or urgent matters."
- Ask follow-up questions if the user's query lacks clarity.
- Keep responses concise and clear unless the user asks for more detail.
`

type ChatRequest struct {
	Message  string
	Simplify bool
	Language string
}

// ChatService answers chat turns: knowledge base first, then the response
// cache, then the external model.
type ChatService struct {
	store         *ConversationStore
	knowledge     *KnowledgeService
	cache         ResponseCache
	model         ChatModel
	jargon        *JargonService
	translator    *TranslationService
	contextWindow int
	logger        *zap.Logger
}

func NewChatService(
	store *ConversationStore,
	knowledge *KnowledgeService,
	cache ResponseCache,
	model ChatModel,
	jargon *JargonService,
	translator *TranslationService,
	contextWindow int,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		store:         store,
		knowledge:     knowledge,
		cache:         cache,
		model:         model,
		jargon:        jargon,
		translator:    translator,
		contextWindow: contextWindow,
		logger:        logger,
	}
}

// Chat runs one turn on the session's conversation and returns the reply.
// The user message is kept even when the model call fails.
func (s *ChatService) Chat(ctx context.Context, sessionID string, req ChatRequest) (string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", validationError("message is required")
	}
	language := req.Language
	if language == "" {
		language = LanguageEnglish
	}

	conv := s.store.Get(sessionID)
	conv.mu.Lock()
	defer conv.mu.Unlock()

	conv.append(models.RoleUser, req.Message)
	conv.state = StateAwaitingAnswer

	answer, err := s.answer(ctx, conv, req.Message, language)
	if err != nil {
		conv.state = StateFailed
		return "", err
	}

	conv.state = StateResponding
	if req.Simplify {
		answer = s.jargon.Simplify(answer)
	}
	if language != LanguageEnglish {
		answer = s.translator.Translate(answer, language)
	}

	conv.append(models.RoleAssistant, answer)
	conv.state = StateIdle

	return answer, nil
}

// caller holds conv.mu
func (s *ChatService) answer(ctx context.Context, conv *Conversation, message, language string) (string, error) {
	if answer, ok := s.knowledge.Match(message); ok {
		s.logger.Debug("Answered from knowledge base")
		return answer, nil
	}

	hash := QuestionHash(message)
	if answer, ok := s.cache.Get(ctx, hash, language); ok {
		s.logger.Debug("Answered from response cache", zap.String("question_hash", hash))
		return answer, nil
	}

	answer, err := s.model.Complete(ctx, CompletionRequest{
		System:      systemPrompt,
		Messages:    conv.lastMessages(s.contextWindow),
		Temperature: chatTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		s.logger.Error("Model call failed", zap.String("question_hash", hash), zap.Error(err))
		return "", externalServiceError("failed to get a response from the language model", err)
	}

	s.cache.Put(ctx, hash, language, answer)
	return answer, nil
}

// Reset clears the session's conversation.
func (s *ChatService) Reset(sessionID string) {
	s.store.Reset(sessionID)
}

func (s *ChatService) Simplify(text string) string {
	return s.jargon.Simplify(text)
}

func (s *ChatService) FAQs() []models.QAEntry {
	return s.knowledge.Entries()
}

// Conversation exposes the session's conversation for inspection.
func (s *ChatService) Conversation(sessionID string) *Conversation {
	return s.store.Get(sessionID)
}
