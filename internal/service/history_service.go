package service

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"nyaay-saathi/internal/models"
	"nyaay-saathi/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	chatTitleLen     = 50
	defaultChatTitle = "New Chat"
)

// HistoryService manages the chats a logged-in user has saved.
type HistoryService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewHistoryService(userRepo repository.UserRepository, logger *zap.Logger) *HistoryService {
	return &HistoryService{
		userRepo: userRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// chatTitle is the first message's content cut to 50 characters.
func chatTitle(messages []models.ConversationMessage) string {
	if len(messages) == 0 {
		return defaultChatTitle
	}
	content := messages[0].Content
	if utf8.RuneCountInString(content) <= chatTitleLen {
		return content
	}
	return string([]rune(content)[:chatTitleLen])
}

func (s *HistoryService) Save(ctx context.Context, email string, messages []models.ConversationMessage) (string, error) {
	if messages == nil {
		messages = []models.ConversationMessage{}
	}
	chat := &models.SavedChat{
		ID:        uuid.NewString(),
		Title:     chatTitle(messages),
		Timestamp: s.now(),
		Messages:  messages,
	}

	if err := s.userRepo.AddChat(ctx, email, chat); err != nil {
		return "", mapHistoryError(err)
	}

	s.logger.Debug("Chat saved", zap.String("chat_id", chat.ID), zap.Int("messages", len(messages)))
	return chat.ID, nil
}

func (s *HistoryService) List(ctx context.Context, email string) ([]*models.SavedChat, error) {
	chats, err := s.userRepo.ListChats(ctx, email)
	if err != nil {
		return nil, mapHistoryError(err)
	}
	return chats, nil
}

func (s *HistoryService) Get(ctx context.Context, email, chatID string) (*models.SavedChat, error) {
	chat, err := s.userRepo.GetChat(ctx, email, chatID)
	if err != nil {
		return nil, mapHistoryError(err)
	}
	return chat, nil
}

func (s *HistoryService) Delete(ctx context.Context, email, chatID string) error {
	if err := s.userRepo.DeleteChat(ctx, email, chatID); err != nil {
		return mapHistoryError(err)
	}
	return nil
}

func mapHistoryError(err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return &Error{Kind: KindNotFound, Message: "User not found", Err: err}
	case errors.Is(err, repository.ErrChatNotFound):
		return &Error{Kind: KindNotFound, Message: "Chat not found", Err: err}
	default:
		return err
	}
}
