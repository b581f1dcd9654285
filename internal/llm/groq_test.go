package llm

import (
	"testing"
)

func TestNewGroqProvider(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		p, err := NewGroqProvider(GroqConfig{
			APIKey: "gsk-test",
			Model:  "llama-3.3-70b-versatile",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "llama-3.3-70b-versatile" {
			t.Errorf("model = %q, want %q", p.ModelID(), "llama-3.3-70b-versatile")
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		_, err := NewGroqProvider(GroqConfig{
			Model: "llama-3.3-70b-versatile",
		})
		if err == nil {
			t.Fatal("expected error for empty API key")
		}
	})

	t.Run("custom model pass-through", func(t *testing.T) {
		p, err := NewGroqProvider(GroqConfig{
			APIKey: "gsk-test",
			Model:  "mixtral-8x7b-32768",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Model ID should be used as-is (no friendly-name mapping).
		if p.ModelID() != "mixtral-8x7b-32768" {
			t.Errorf("model = %q, want %q", p.ModelID(), "mixtral-8x7b-32768")
		}
	})

	t.Run("custom base URL", func(t *testing.T) {
		p, err := NewGroqProvider(GroqConfig{
			APIKey:  "gsk-test",
			Model:   "llama-3.3-70b-versatile",
			BaseURL: "https://proxy.example.com/openai/v1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p == nil {
			t.Fatal("expected non-nil provider")
		}
	})
}
