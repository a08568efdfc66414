package handlers

import (
	"nyaay-saathi/internal/dto"
	"nyaay-saathi/internal/service"
	"nyaay-saathi/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HistoryHandler serves saved chats. Every route sits behind AuthMiddleware.
type HistoryHandler struct {
	historyService *service.HistoryService
	logger         *zap.Logger
}

func NewHistoryHandler(historyService *service.HistoryService, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		logger:         logger,
	}
}

// SaveChat godoc
// @Summary Save a conversation
// @Tags history
// @Accept json
// @Produce json
// @Param request body dto.SaveChatRequest true "Messages to save"
// @Success 200 {object} dto.SaveChatResponse
// @Failure 401 {object} dto.MessageResponse
// @Router /api/save_chat [post]
func (h *HistoryHandler) SaveChat(c *fiber.Ctx) error {
	var req dto.SaveChatRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	_, email, _ := middleware.CurrentUser(c)
	chatID, err := h.historyService.Save(c.Context(), email, req.Messages)
	if err != nil {
		return respondFailure(c, h.logger, err, "Failed to save chat")
	}

	return c.JSON(dto.SaveChatResponse{Success: true, ChatID: chatID})
}

// ChatHistory godoc
// @Summary List saved conversations
// @Tags history
// @Produce json
// @Success 200 {object} dto.ChatHistoryResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /api/chat_history [get]
func (h *HistoryHandler) ChatHistory(c *fiber.Ctx) error {
	_, email, _ := middleware.CurrentUser(c)
	chats, err := h.historyService.List(c.Context(), email)
	if err != nil {
		return respondFailure(c, h.logger, err, "Failed to load chat history")
	}

	return c.JSON(dto.ChatHistoryResponse{Success: true, Chats: chats})
}

// GetChat godoc
// @Summary Get a saved conversation
// @Tags history
// @Produce json
// @Param id path string true "Chat ID"
// @Success 200 {object} dto.SavedChatResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /api/chat/{id} [get]
func (h *HistoryHandler) GetChat(c *fiber.Ctx) error {
	_, email, _ := middleware.CurrentUser(c)
	chat, err := h.historyService.Get(c.Context(), email, c.Params("id"))
	if err != nil {
		return respondFailure(c, h.logger, err, "Failed to load chat")
	}

	return c.JSON(dto.SavedChatResponse{Success: true, Chat: chat})
}

// DeleteChat godoc
// @Summary Delete a saved conversation
// @Tags history
// @Produce json
// @Param id path string true "Chat ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /api/chat/{id} [delete]
func (h *HistoryHandler) DeleteChat(c *fiber.Ctx) error {
	_, email, _ := middleware.CurrentUser(c)
	if err := h.historyService.Delete(c.Context(), email, c.Params("id")); err != nil {
		return respondFailure(c, h.logger, err, "Failed to delete chat")
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: "Chat deleted"})
}
