package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nyaay-saathi/internal/models"
	"nyaay-saathi/pkg/auth"
)

func TestChatTitle(t *testing.T) {
	assert.Equal(t, "New Chat", chatTitle(nil))
	assert.Equal(t, "short", chatTitle([]models.ConversationMessage{{Content: "short"}}))

	long := strings.Repeat("अ", 60)
	assert.Equal(t, strings.Repeat("अ", 50), chatTitle([]models.ConversationMessage{{Content: long}}))
}

func TestHistoryService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestUserRepo(t)
	authSvc := NewAuthService(repo, auth.NewJWTManager("secret", time.Hour), zap.NewNop())
	_, err := authSvc.EnsureDemoAccount(ctx)
	require.NoError(t, err)

	svc := NewHistoryService(repo, zap.NewNop())

	id, err := svc.Save(ctx, DemoEmail, []models.ConversationMessage{
		{Role: models.RoleUser, Content: "How do I file an FIR?"},
		{Role: models.RoleAssistant, Content: "Visit the police station."},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	chats, err := svc.List(ctx, DemoEmail)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, "How do I file an FIR?", chats[0].Title)

	chat, err := svc.Get(ctx, DemoEmail, id)
	require.NoError(t, err)
	assert.Len(t, chat.Messages, 2)

	require.NoError(t, svc.Delete(ctx, DemoEmail, id))

	_, err = svc.Get(ctx, DemoEmail, id)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, KindNotFound, KindOf(svc.Delete(ctx, DemoEmail, id)))

	_, err = svc.List(ctx, "ghost@example.com")
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.EqualError(t, err, "User not found: user not found")
}

func TestHistoryService_SaveEmptyChat(t *testing.T) {
	ctx := context.Background()
	repo := newTestUserRepo(t)
	authSvc := NewAuthService(repo, auth.NewJWTManager("secret", time.Hour), zap.NewNop())
	_, err := authSvc.EnsureDemoAccount(ctx)
	require.NoError(t, err)

	svc := NewHistoryService(repo, zap.NewNop())
	id, err := svc.Save(ctx, DemoEmail, nil)
	require.NoError(t, err)

	chat, err := svc.Get(ctx, DemoEmail, id)
	require.NoError(t, err)
	assert.Equal(t, "New Chat", chat.Title)
	assert.Empty(t, chat.Messages)
}
