package handlers

import (
	"nyaay-saathi/internal/dto"
	"nyaay-saathi/internal/service"
	"nyaay-saathi/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService        *service.ChatService
	jargonService      *service.JargonService
	translationService *service.TranslationService
	logger             *zap.Logger
}

func NewChatHandler(
	chatService *service.ChatService,
	jargonService *service.JargonService,
	translationService *service.TranslationService,
	logger *zap.Logger,
) *ChatHandler {
	return &ChatHandler{
		chatService:        chatService,
		jargonService:      jargonService,
		translationService: translationService,
		logger:             logger,
	}
}

// Chat godoc
// @Summary Ask the legal assistant
// @Description Answers from the knowledge base, the response cache or the language model, optionally simplified and translated
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	answer, err := h.chatService.Chat(c.Context(), middleware.SessionID(c), service.ChatRequest{
		Message:  req.Message,
		Simplify: req.Simplify,
		Language: req.Language,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Chat failed")
	}

	return c.JSON(dto.ChatResponse{Response: answer})
}

// Reset godoc
// @Summary Reset the conversation
// @Tags chat
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /api/reset [post]
func (h *ChatHandler) Reset(c *fiber.Ctx) error {
	h.chatService.Reset(middleware.SessionID(c))
	return c.JSON(dto.StatusResponse{Status: "conversation reset"})
}

// Simplify godoc
// @Summary Explain legal jargon in a text
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.SimplifyRequest true "Text to simplify"
// @Success 200 {object} dto.SimplifyResponse
// @Router /api/simplify [post]
func (h *ChatHandler) Simplify(c *fiber.Ctx) error {
	var req dto.SimplifyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	return c.JSON(dto.SimplifyResponse{Simplified: h.chatService.Simplify(req.Text)})
}

// FAQs godoc
// @Summary List frequently asked questions
// @Tags chat
// @Produce json
// @Success 200 {object} dto.FAQsResponse
// @Router /api/faqs [get]
func (h *ChatHandler) FAQs(c *fiber.Ctx) error {
	entries := h.chatService.FAQs()
	faqs := make([]dto.FAQ, 0, len(entries))
	for _, e := range entries {
		faqs = append(faqs, dto.FAQ{Question: e.Question, Answer: e.Answer})
	}

	return c.JSON(dto.FAQsResponse{FAQs: faqs})
}

// DetectLanguage godoc
// @Summary Guess the language of a text from its script
// @Tags language
// @Accept json
// @Produce json
// @Param request body dto.DetectLanguageRequest true "Text"
// @Success 200 {object} dto.DetectLanguageResponse
// @Router /api/detect_language [post]
func (h *ChatHandler) DetectLanguage(c *fiber.Ctx) error {
	var req dto.DetectLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	return c.JSON(dto.DetectLanguageResponse{Language: service.DetectLanguage(req.Text)})
}

// IdentifyJargon godoc
// @Summary List the legal terms found in a text
// @Tags language
// @Accept json
// @Produce json
// @Param request body dto.IdentifyJargonRequest true "Text"
// @Success 200 {object} dto.IdentifyJargonResponse
// @Router /api/identify_jargon [post]
func (h *ChatHandler) IdentifyJargon(c *fiber.Ctx) error {
	var req dto.IdentifyJargonRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	return c.JSON(dto.IdentifyJargonResponse{Terms: h.jargonService.Identify(req.Text, req.Language)})
}

// LegalTerms godoc
// @Summary Common legal terms in a language
// @Tags language
// @Produce json
// @Param language path string true "Language code, e.g. hindi"
// @Success 200 {object} dto.LegalTermsResponse
// @Router /api/legal_terms/{language} [get]
func (h *ChatHandler) LegalTerms(c *fiber.Ctx) error {
	return c.JSON(dto.LegalTermsResponse{Terms: h.translationService.LegalTerms(c.Params("language"))})
}
