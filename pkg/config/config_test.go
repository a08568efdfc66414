package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 16*1024*1024, cfg.Server.BodyLimit)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "gpt-4", cfg.LLM.Model)
	assert.Equal(t, ScopeSession, cfg.Chat.ConversationScope)
	assert.Equal(t, 5, cfg.Chat.ContextWindow)
	assert.Equal(t, 100, cfg.Chat.CacheCapacity)
	assert.Equal(t, CacheBackendMemory, cfg.Chat.CacheBackend)
	assert.Equal(t, UserStoreJSON, cfg.Storage.UserStore)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expiration)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "GigaChat")
	t.Setenv("GIGACHAT_API_KEY", "base64key")
	t.Setenv("CHAT_CONVERSATION_SCOPE", "global")
	t.Setenv("CHAT_CACHE_CAPACITY", "7")
	t.Setenv("DEBUG", "yes")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderGigaChat, cfg.LLM.Provider)
	assert.Equal(t, ScopeGlobal, cfg.Chat.ConversationScope)
	assert.Equal(t, 7, cfg.Chat.CacheCapacity)
	assert.True(t, cfg.Server.Debug)
}

func TestValidate_RejectsUnknownValues(t *testing.T) {
	base := func() *Config {
		return &Config{
			LLM:     LLMConfig{Provider: ProviderOpenAI, APIKey: "k"},
			Chat:    ChatConfig{ConversationScope: ScopeSession, CacheBackend: CacheBackendMemory, ContextWindow: 5, CacheCapacity: 100, MaxConversations: 10},
			Storage: StorageConfig{UserStore: UserStoreJSON},
		}
	}

	require.NoError(t, base().Validate())

	cases := map[string]func(c *Config){
		"provider":  func(c *Config) { c.LLM.Provider = "bard" },
		"scope":     func(c *Config) { c.Chat.ConversationScope = "tenant" },
		"cache":     func(c *Config) { c.Chat.CacheBackend = "memcached" },
		"store":     func(c *Config) { c.Storage.UserStore = "sqlite" },
		"window":    func(c *Config) { c.Chat.ContextWindow = 0 },
		"capacity":  func(c *Config) { c.Chat.CacheCapacity = -1 },
		"max convs": func(c *Config) { c.Chat.MaxConversations = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
