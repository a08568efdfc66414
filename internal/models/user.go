package models

import (
	"time"

	"github.com/google/uuid"
)

// User is one account in the user store. ChatHistory is only populated by the
// JSON store, which keeps chats inline with the account record.
type User struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	Name        string       `json:"name" db:"name"`
	Email       string       `json:"email" db:"email"`
	Password    string       `json:"password" db:"password"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	LastLogin   time.Time    `json:"last_login" db:"last_login"`
	ChatHistory []*SavedChat `json:"chat_history" db:"-"`
}
