package llm

import (
	"errors"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "google/gemini-2.0-flash-001",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "google/gemini-2.0-flash-001" {
			t.Errorf("model = %q, want %q", p.ModelID(), "google/gemini-2.0-flash-001")
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{
			Model: "google/gemini-2.0-flash-001",
		})
		var missing *ErrMissingAPIKey
		if !errors.As(err, &missing) {
			t.Fatalf("expected ErrMissingAPIKey, got %v", err)
		}
		if missing.EnvVar != "OPENROUTER_API_KEY" {
			t.Errorf("env var = %q", missing.EnvVar)
		}
	})
}
