package repository

import (
	"context"
	"errors"
	"time"

	"nyaay-saathi/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrChatNotFound = errors.New("chat not found")
)

// UserRepository stores accounts and their saved chats, keyed by the
// normalized (lowercase) email address.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, email string, at time.Time) error

	AddChat(ctx context.Context, email string, chat *models.SavedChat) error
	ListChats(ctx context.Context, email string) ([]*models.SavedChat, error)
	GetChat(ctx context.Context, email, chatID string) (*models.SavedChat, error)
	DeleteChat(ctx context.Context, email, chatID string) error
}
