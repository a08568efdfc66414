package dto

import "nyaay-saathi/internal/models"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse is the {success, message} envelope used by the account and
// history endpoints.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type UserResponse struct {
	LoggedIn bool   `json:"logged_in"`
	UserID   string `json:"user_id,omitempty"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
}

type SaveChatRequest struct {
	Messages []models.ConversationMessage `json:"messages"`
}

type SaveChatResponse struct {
	Success bool   `json:"success"`
	ChatID  string `json:"chat_id"`
}

type ChatHistoryResponse struct {
	Success bool                `json:"success"`
	Chats   []*models.SavedChat `json:"chats"`
}

type SavedChatResponse struct {
	Success bool              `json:"success"`
	Chat    *models.SavedChat `json:"chat"`
}
