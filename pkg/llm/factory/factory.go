package factory

import (
	"context"
	"fmt"
	"time"

	"ai-notecapture-be/pkg/llm"
	"ai-notecapture-be/pkg/llm/anthropic"
	"ai-notecapture-be/pkg/llm/gemini"
	"ai-notecapture-be/pkg/llm/ollama"
	"ai-notecapture-be/pkg/llm/openai"
)

type Config struct {
	Provider  string // ollama | gemini | anthropic | openai
	Model     string
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	MaxTokens int
}

func NewLLMProvider(ctx context.Context, cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "ollama", "":
		return ollama.NewOllamaProvider(cfg.BaseURL, cfg.Model, cfg.Timeout), nil
	case "gemini":
		return gemini.NewGeminiProvider(ctx, cfg.APIKey, cfg.Model, cfg.Timeout)
	case "anthropic":
		return anthropic.NewAnthropicProvider(cfg.APIKey, cfg.Model, cfg.MaxTokens, cfg.Timeout)
	case "openai":
		return openai.NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
