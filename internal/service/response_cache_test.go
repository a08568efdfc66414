package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestQuestionHash(t *testing.T) {
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", QuestionHash("hello"))
	assert.Equal(t, QuestionHash("same"), QuestionHash("same"))
	assert.NotEqual(t, QuestionHash("a"), QuestionHash("b"))
}

func TestMemoryResponseCache_PutGet(t *testing.T) {
	ctx := context.Background()
	cache, err := NewMemoryResponseCache(100)
	require.NoError(t, err)

	_, ok := cache.Get(ctx, "h1", "English")
	assert.False(t, ok)

	cache.Put(ctx, "h1", "English", "answer")
	got, ok := cache.Get(ctx, "h1", "English")
	assert.True(t, ok)
	assert.Equal(t, "answer", got)

	_, ok = cache.Get(ctx, "h1", "Hindi")
	assert.False(t, ok, "language is part of the key")
}

func TestMemoryResponseCache_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	cache, err := NewMemoryResponseCache(2)
	require.NoError(t, err)

	cache.Put(ctx, "a", "English", "A")
	cache.Put(ctx, "b", "English", "B")
	_, _ = cache.Get(ctx, "a", "English")
	cache.Put(ctx, "c", "English", "C")

	_, ok := cache.Get(ctx, "b", "English")
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "a", "English")
	assert.True(t, ok)
	assert.Equal(t, 2, cache.Len())
}

func TestMemoryResponseCache_RejectsZeroCapacity(t *testing.T) {
	_, err := NewMemoryResponseCache(0)
	assert.Error(t, err)
}

func newTestRedisCache(t *testing.T, capacity int) (*RedisResponseCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisResponseCache(client, capacity, time.Hour, zap.NewNop()), mr
}

func TestRedisResponseCache_PutGet(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestRedisCache(t, 100)

	_, ok := cache.Get(ctx, "h1", "English")
	assert.False(t, ok)

	cache.Put(ctx, "h1", "English", "answer")
	got, ok := cache.Get(ctx, "h1", "English")
	assert.True(t, ok)
	assert.Equal(t, "answer", got)

	assert.True(t, mr.Exists("nyaay:answer:h1:English"))
	assert.Equal(t, time.Hour, mr.TTL("nyaay:answer:h1:English"))
}

func TestRedisResponseCache_TrimsToCapacity(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestRedisCache(t, 2)

	cache.Put(ctx, "a", "English", "A")
	cache.Put(ctx, "b", "English", "B")
	_, _ = cache.Get(ctx, "a", "English")
	cache.Put(ctx, "c", "English", "C")

	_, ok := cache.Get(ctx, "b", "English")
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "a", "English")
	assert.True(t, ok)

	order, err := mr.List(redisOrderKey)
	require.NoError(t, err)
	assert.Len(t, order, 2)
}

func TestRedisResponseCache_ExpiredEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestRedisCache(t, 10)

	for i := 0; i < 3; i++ {
		cache.Put(ctx, fmt.Sprintf("h%d", i), "English", "x")
	}
	mr.FastForward(2 * time.Hour)

	_, ok := cache.Get(ctx, "h0", "English")
	assert.False(t, ok)
}

func TestRedisResponseCache_UnavailableIsMiss(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestRedisCache(t, 10)
	mr.Close()

	cache.Put(ctx, "h1", "English", "answer")
	_, ok := cache.Get(ctx, "h1", "English")
	assert.False(t, ok)
}
