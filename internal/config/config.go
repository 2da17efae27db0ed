package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Store     StoreConfig
	Keys      APIKeys
	Ai        AIConfig
	Clipboard ClipboardConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	WsLogFilePath      string
	CorsAllowedOrigins string
	NatsURL            string // empty disables NATS
	RedisURL           string // empty disables the websocket relay
	TracingEnabled     bool
	OtelEndpoint       string
}

type StoreConfig struct {
	Driver    string // memory, redis, postgres, sqlite
	DSN       string
	KeyPrefix string
}

type APIKeys struct {
	GoogleGemini string
	Anthropic    string
	OpenAI       string
}

type AIConfig struct {
	LLMProvider   string // "ollama", "gemini", "anthropic", "openai"
	LLMModel      string // empty uses the provider default
	OllamaBaseURL string
	OpenAIBaseURL string
	Timeout       time.Duration
	MaxTokens     int
	Temperature   float64
}

type ClipboardConfig struct {
	Enabled      bool
	PollInterval time.Duration
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			WsLogFilePath:      getEnv("WS_LOG_FILE_PATH", "logs/websocket.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			TracingEnabled:     getEnvAsBool("OTEL_ENABLED", false),
			OtelEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
		Store: StoreConfig{
			Driver:    getEnv("STORE_DRIVER", "sqlite"),
			DSN:       getEnv("STORE_DSN", "notecapture.db"),
			KeyPrefix: getEnv("STORE_KEY_PREFIX", "notecapture:"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			Anthropic:    getEnv("ANTHROPIC_API_KEY", ""),
			OpenAI:       getEnv("OPENAI_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:      getEnv("LLM_MODEL", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
			Timeout:       getEnvAsDuration("LLM_TIMEOUT", 120*time.Second),
			MaxTokens:     getEnvAsInt("LLM_MAX_TOKENS", 0),
			Temperature:   getEnvAsFloat("LLM_TEMPERATURE", 0.7),
		},
		Clipboard: ClipboardConfig{
			Enabled:      getEnvAsBool("CLIPBOARD_ENABLED", true),
			PollInterval: getEnvAsDuration("CLIPBOARD_POLL_INTERVAL", time.Second),
		},
	}
}

// APIKey returns the key for the configured LLM provider.
func (c *Config) APIKey() string {
	switch c.Ai.LLMProvider {
	case "gemini":
		return c.Keys.GoogleGemini
	case "anthropic":
		return c.Keys.Anthropic
	case "openai":
		return c.Keys.OpenAI
	default:
		return ""
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("1500ms", "2m") or bare seconds.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if value, err := time.ParseDuration(strValue); err == nil && value > 0 {
		return value
	}
	if secs, err := strconv.Atoi(strValue); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
