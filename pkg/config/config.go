package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI   = "openai"
	ProviderGigaChat = "gigachat"

	ScopeSession = "session"
	ScopeGlobal  = "global"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"

	UserStoreJSON     = "json"
	UserStorePostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	LLM      LLMConfig
	GigaChat GigaChatConfig
	Chat     ChatConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
	// Debug disables the Secure flag on session cookies.
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
}

// LLMConfig selects the external model behind the chat endpoint.
type LLMConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	// AnalysisModel is used for uploaded document analysis.
	AnalysisModel string
	Timeout       time.Duration
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
}

type ChatConfig struct {
	ConversationScope string
	MaxConversations  int
	ContextWindow     int
	CacheBackend      string
	CacheCapacity     int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type StorageConfig struct {
	UserStore         string
	UserDBFile        string
	KnowledgeBaseFile string
	UploadDir         string
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work the same way.
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "5000"),
			ReadTimeout:  getEnvSeconds("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: getEnvSeconds("SERVER_WRITE_TIMEOUT", 120),
			BodyLimit:    getEnvInt("SERVER_BODY_LIMIT_MB", 16) * 1024 * 1024,
			Debug:        getEnvBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "nyaay_saathi"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("SECRET_KEY", "nyaay-saathi-random-key"),
			Expiration: time.Duration(getEnvInt("SESSION_LIFETIME_DAYS", 7)) * 24 * time.Hour,
		},
		LLM: LLMConfig{
			Provider:      strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI)),
			APIKey:        getEnv("OPENAI_API_KEY", ""),
			BaseURL:       getEnv("OPENAI_BASE_URL", ""),
			Model:         getEnv("OPENAI_MODEL", "gpt-4"),
			AnalysisModel: getEnv("OPENAI_ANALYSIS_MODEL", "gpt-4-1106-preview"),
			Timeout:       getEnvSeconds("LLM_TIMEOUT", 60),
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: getEnvBool("GIGACHAT_INSECURE_SKIP_VERIFY", false),
		},
		Chat: ChatConfig{
			ConversationScope: strings.ToLower(getEnv("CHAT_CONVERSATION_SCOPE", ScopeSession)),
			MaxConversations:  getEnvInt("CHAT_MAX_CONVERSATIONS", 1000),
			ContextWindow:     getEnvInt("CHAT_CONTEXT_WINDOW", 5),
			CacheBackend:      strings.ToLower(getEnv("CHAT_CACHE_BACKEND", CacheBackendMemory)),
			CacheCapacity:     getEnvInt("CHAT_CACHE_CAPACITY", 100),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvInt("REDIS_CACHE_TTL_HOURS", 24)) * time.Hour,
		},
		Storage: StorageConfig{
			UserStore:         strings.ToLower(getEnv("STORAGE_USER_STORE", UserStoreJSON)),
			UserDBFile:        getEnv("STORAGE_USER_DB_FILE", "/tmp/user_db.json"),
			KnowledgeBaseFile: getEnv("STORAGE_KNOWLEDGE_BASE_FILE", "legal_knowledge_base.json"),
			UploadDir:         getEnv("STORAGE_UPLOAD_DIR", "temp_uploads"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOpenAI:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("no OpenAI API key found (OPENAI_API_KEY)")
		}
	case ProviderGigaChat:
		if c.GigaChat.APIKey == "" {
			return fmt.Errorf("no GigaChat API key found (GIGACHAT_API_KEY)")
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider)
	}

	switch c.Chat.ConversationScope {
	case ScopeSession, ScopeGlobal:
	default:
		return fmt.Errorf("unknown CHAT_CONVERSATION_SCOPE %q", c.Chat.ConversationScope)
	}

	switch c.Chat.CacheBackend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("unknown CHAT_CACHE_BACKEND %q", c.Chat.CacheBackend)
	}

	switch c.Storage.UserStore {
	case UserStoreJSON, UserStorePostgres:
	default:
		return fmt.Errorf("unknown STORAGE_USER_STORE %q", c.Storage.UserStore)
	}

	if c.Chat.ContextWindow <= 0 {
		return fmt.Errorf("CHAT_CONTEXT_WINDOW must be > 0")
	}
	if c.Chat.CacheCapacity <= 0 {
		return fmt.Errorf("CHAT_CACHE_CAPACITY must be > 0")
	}
	if c.Chat.MaxConversations <= 0 {
		return fmt.Errorf("CHAT_MAX_CONVERSATIONS must be > 0")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvSeconds(key string, defaultValue int) time.Duration {
	return time.Duration(getEnvInt(key, defaultValue)) * time.Second
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}
