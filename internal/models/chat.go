package models

import "time"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ConversationMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SavedChat is a conversation a logged-in user chose to keep.
type SavedChat struct {
	ID        string                `json:"id" db:"id"`
	Title     string                `json:"title" db:"title"`
	Timestamp time.Time             `json:"timestamp" db:"created_at"`
	Messages  []ConversationMessage `json:"messages" db:"messages"`
}
