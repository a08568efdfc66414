package service

import (
	"fmt"
	"sync"

	"nyaay-saathi/internal/models"
	"nyaay-saathi/pkg/config"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ConversationState tracks where a conversation is within one chat turn.
type ConversationState int

const (
	StateIdle ConversationState = iota
	StateAwaitingAnswer
	StateResponding
	// StateFailed is left by the next inbound message.
	StateFailed
)

func (s ConversationState) String() string {
	switch s {
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateResponding:
		return "responding"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Conversation is an append-only message log. Its mutex is held for a whole
// chat turn, so turns on the same conversation run one at a time.
type Conversation struct {
	mu       sync.Mutex
	messages []models.ConversationMessage
	state    ConversationState
}

func (c *Conversation) Messages() []models.ConversationMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.ConversationMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) State() ConversationState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Conversation) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
	c.state = StateIdle
}

// caller holds c.mu
func (c *Conversation) append(role, content string) {
	c.messages = append(c.messages, models.ConversationMessage{Role: role, Content: content})
}

// caller holds c.mu
func (c *Conversation) lastMessages(n int) []models.ConversationMessage {
	start := len(c.messages) - n
	if start < 0 {
		start = 0
	}
	out := make([]models.ConversationMessage, len(c.messages)-start)
	copy(out, c.messages[start:])
	return out
}

// ConversationStore hands out conversations by session id. In global scope
// every caller shares one conversation regardless of session. Session-scoped
// conversations are evicted least recently used first.
type ConversationStore struct {
	mu            sync.Mutex
	global        *Conversation
	conversations *lru.Cache[string, *Conversation]
}

func NewConversationStore(scope string, maxConversations int) (*ConversationStore, error) {
	if scope == config.ScopeGlobal {
		return &ConversationStore{global: &Conversation{}}, nil
	}

	conversations, err := lru.New[string, *Conversation](maxConversations)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation store: %w", err)
	}
	return &ConversationStore{conversations: conversations}, nil
}

// Get returns the conversation for sessionID, creating an empty one if needed.
func (s *ConversationStore) Get(sessionID string) *Conversation {
	if s.global != nil {
		return s.global
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, ok := s.conversations.Get(sessionID); ok {
		return conv
	}
	conv := &Conversation{}
	s.conversations.Add(sessionID, conv)
	return conv
}

func (s *ConversationStore) Reset(sessionID string) {
	s.Get(sessionID).reset()
}
