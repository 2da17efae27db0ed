package factory

import (
	"context"
	"testing"

	"ai-notecapture-be/pkg/llm/anthropic"
	"ai-notecapture-be/pkg/llm/ollama"
	"ai-notecapture-be/pkg/llm/openai"
)

func TestNewLLMProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		check   func(t *testing.T, p interface{})
	}{
		{
			name: "ollama default base url",
			cfg:  Config{Provider: "ollama", Model: "llama3"},
			check: func(t *testing.T, p interface{}) {
				o, ok := p.(*ollama.OllamaProvider)
				if !ok {
					t.Fatalf("got %T, want *ollama.OllamaProvider", p)
				}
				if o.BaseURL != ollama.DefaultBaseURL {
					t.Errorf("BaseURL = %q, want %q", o.BaseURL, ollama.DefaultBaseURL)
				}
			},
		},
		{
			name: "anthropic",
			cfg:  Config{Provider: "anthropic", APIKey: "k"},
			check: func(t *testing.T, p interface{}) {
				if _, ok := p.(*anthropic.AnthropicProvider); !ok {
					t.Errorf("got %T, want *anthropic.AnthropicProvider", p)
				}
			},
		},
		{
			name: "openai",
			cfg:  Config{Provider: "openai", APIKey: "k", BaseURL: "http://localhost:8080/v1"},
			check: func(t *testing.T, p interface{}) {
				if _, ok := p.(*openai.OpenAIProvider); !ok {
					t.Errorf("got %T, want *openai.OpenAIProvider", p)
				}
			},
		},
		{name: "openai without key", cfg: Config{Provider: "openai"}, wantErr: true},
		{name: "gemini without key", cfg: Config{Provider: "gemini"}, wantErr: true},
		{name: "unknown", cfg: Config{Provider: "huggingface"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewLLMProvider(context.Background(), tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLLMProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, p)
			}
		})
	}
}
