package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ResponseCache remembers raw model answers by question hash and language.
// A miss is reported through the bool, never as an error.
type ResponseCache interface {
	Get(ctx context.Context, questionHash, language string) (string, bool)
	Put(ctx context.Context, questionHash, language, answer string)
}

// QuestionHash is the cache key for a user message: md5 of its bytes, hex.
func QuestionHash(message string) string {
	sum := md5.Sum([]byte(message))
	return hex.EncodeToString(sum[:])
}

type cacheKey struct {
	hash     string
	language string
}

// MemoryResponseCache is a process-local LRU.
type MemoryResponseCache struct {
	entries *lru.Cache[cacheKey, string]
}

func NewMemoryResponseCache(capacity int) (*MemoryResponseCache, error) {
	entries, err := lru.New[cacheKey, string](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create response cache: %w", err)
	}
	return &MemoryResponseCache{entries: entries}, nil
}

func (c *MemoryResponseCache) Get(_ context.Context, questionHash, language string) (string, bool) {
	return c.entries.Get(cacheKey{hash: questionHash, language: language})
}

func (c *MemoryResponseCache) Put(_ context.Context, questionHash, language, answer string) {
	c.entries.Add(cacheKey{hash: questionHash, language: language}, answer)
}

func (c *MemoryResponseCache) Len() int {
	return c.entries.Len()
}

const (
	redisAnswerPrefix = "nyaay:answer:"
	redisOrderKey     = "nyaay:answer:order"
)

// RedisResponseCache shares answers between server instances. Keys expire
// after ttl; the order list keeps the most recently used keys at its head and
// is trimmed to capacity, evicting whatever falls off the tail.
type RedisResponseCache struct {
	client   *redis.Client
	capacity int
	ttl      time.Duration
	logger   *zap.Logger
}

func NewRedisResponseCache(client *redis.Client, capacity int, ttl time.Duration, logger *zap.Logger) *RedisResponseCache {
	return &RedisResponseCache{
		client:   client,
		capacity: capacity,
		ttl:      ttl,
		logger:   logger,
	}
}

func redisAnswerKey(questionHash, language string) string {
	return redisAnswerPrefix + questionHash + ":" + language
}

func (c *RedisResponseCache) Get(ctx context.Context, questionHash, language string) (string, bool) {
	key := redisAnswerKey(questionHash, language)

	answer, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Response cache read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}

	pipe := c.client.TxPipeline()
	pipe.LRem(ctx, redisOrderKey, 0, key)
	pipe.LPush(ctx, redisOrderKey, key)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warn("Response cache touch failed", zap.String("key", key), zap.Error(err))
	}

	return answer, true
}

func (c *RedisResponseCache) Put(ctx context.Context, questionHash, language, answer string) {
	key := redisAnswerKey(questionHash, language)

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, answer, c.ttl)
	pipe.LRem(ctx, redisOrderKey, 0, key)
	pipe.LPush(ctx, redisOrderKey, key)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warn("Response cache write failed", zap.String("key", key), zap.Error(err))
		return
	}

	c.evict(ctx)
}

func (c *RedisResponseCache) evict(ctx context.Context) {
	stale, err := c.client.LRange(ctx, redisOrderKey, int64(c.capacity), -1).Result()
	if err != nil || len(stale) == 0 {
		return
	}

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, stale...)
	pipe.LTrim(ctx, redisOrderKey, 0, int64(c.capacity)-1)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warn("Response cache eviction failed", zap.Int("stale", len(stale)), zap.Error(err))
	}
}
