package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nyaay-saathi/internal/models"
)

func newTestJSONRepo(t *testing.T) (*JSONUserRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user_db.json")
	return NewJSONUserRepository(path, zap.NewNop()), path
}

func testUser(email string) *models.User {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.User{
		ID:        uuid.New(),
		Name:      "Asha",
		Email:     email,
		Password:  "hash",
		CreatedAt: now,
		LastLogin: now,
	}
}

func TestJSONUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo, path := newTestJSONRepo(t)

	user := testUser("asha@example.com")
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "Asha", got.Name)
	assert.Empty(t, got.ChatHistory)

	assert.ErrorIs(t, repo.Create(ctx, testUser("asha@example.com")), ErrUserExists)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	var raw map[string]map[string]map[string]any
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &raw))
	entry := raw["users"]["asha@example.com"]
	assert.Equal(t, user.ID.String(), entry["id"])
	assert.Equal(t, []any{}, entry["chat_history"])
}

func TestJSONUserRepository_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestJSONRepo(t)
	require.NoError(t, repo.Create(ctx, testUser("asha@example.com")))

	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, repo.UpdateLastLogin(ctx, "asha@example.com", at))

	got, err := repo.GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.True(t, at.Equal(got.LastLogin))

	assert.ErrorIs(t, repo.UpdateLastLogin(ctx, "nobody@example.com", at), ErrUserNotFound)
}

func TestJSONUserRepository_Chats(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestJSONRepo(t)
	require.NoError(t, repo.Create(ctx, testUser("asha@example.com")))

	chats, err := repo.ListChats(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Empty(t, chats)

	for _, id := range []string{"c1", "c2"} {
		require.NoError(t, repo.AddChat(ctx, "asha@example.com", &models.SavedChat{
			ID:        id,
			Title:     "title " + id,
			Timestamp: time.Now(),
			Messages:  []models.ConversationMessage{{Role: models.RoleUser, Content: "hi"}},
		}))
	}

	chats, err = repo.ListChats(ctx, "asha@example.com")
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, "c1", chats[0].ID)

	chat, err := repo.GetChat(ctx, "asha@example.com", "c2")
	require.NoError(t, err)
	assert.Equal(t, "title c2", chat.Title)
	require.Len(t, chat.Messages, 1)

	require.NoError(t, repo.DeleteChat(ctx, "asha@example.com", "c1"))
	assert.ErrorIs(t, repo.DeleteChat(ctx, "asha@example.com", "c1"), ErrChatNotFound)

	_, err = repo.GetChat(ctx, "asha@example.com", "c1")
	assert.ErrorIs(t, err, ErrChatNotFound)

	_, err = repo.ListChats(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, repo.AddChat(ctx, "nobody@example.com", &models.SavedChat{ID: "x"}), ErrUserNotFound)
}

func TestJSONUserRepository_CorruptFileStartsEmpty(t *testing.T) {
	ctx := context.Background()
	repo, path := newTestJSONRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := repo.GetByEmail(ctx, "asha@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"users":{}}`, string(data))
}

func TestJSONUserRepository_ConcurrentWritesInProcess(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestJSONRepo(t)
	require.NoError(t, repo.Create(ctx, testUser("asha@example.com")))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.AddChat(ctx, "asha@example.com", &models.SavedChat{ID: uuid.NewString()})
		}()
	}
	wg.Wait()

	chats, err := repo.ListChats(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Len(t, chats, 20)
}
