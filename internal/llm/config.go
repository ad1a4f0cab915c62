package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all LLM provider configuration. It is built once at process
// start and handed to NewProvider; providers never read the environment.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "anthropic", "openai", "openrouter", "ollama", "mock"
	Provider string

	Gemini     GeminiConfig
	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	OpenRouter OpenRouterConfig
	Ollama     OllamaConfig
	Mock       MockConfig

	// Timeout bounds a single model call. Zero means no timeout.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-1.5-pro-latest"

	// Backend is "api" (Gemini Developer API, default) or "vertex".
	Backend string

	// Project and Location are required for the vertex backend.
	Project  string
	Location string
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for compatible APIs.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-001"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// OllamaConfig holds Ollama-specific configuration.
type OllamaConfig struct {
	Host  string // Default: OLLAMA_HOST resolution, then http://127.0.0.1:11434
	Model string // Default: "llama3.1"
}

// MockConfig configures the offline mock provider.
type MockConfig struct {
	// Response is the canned reply text. Empty makes every call fail.
	Response string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model:   "gemini-1.5-pro-latest",
			Backend: "api",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-001",
		},
		Ollama: OllamaConfig{
			Model: "llama3.1",
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. A malformed QUIZGEN_TIMEOUT is reported as
// an error alongside a Config that is otherwise usable.
func ConfigFromEnv() (Config, error) {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	get := func(keys ...string) string {
		for _, k := range keys {
			if v, ok := lookup(k); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
		return ""
	}
	set := func(dst *string, keys ...string) {
		if v := get(keys...); v != "" {
			*dst = v
		}
	}

	set(&cfg.Provider, "QUIZGEN_LLM_PROVIDER")
	cfg.Provider = strings.ToLower(cfg.Provider)

	set(&cfg.Gemini.APIKey, "GOOGLE_API_KEY", "GEMINI_API_KEY", "QUIZGEN_GEMINI_API_KEY")
	set(&cfg.Gemini.Model, "QUIZGEN_GEMINI_MODEL")
	set(&cfg.Gemini.Backend, "QUIZGEN_GEMINI_BACKEND")
	set(&cfg.Gemini.Project, "GOOGLE_CLOUD_PROJECT")
	set(&cfg.Gemini.Location, "GOOGLE_CLOUD_LOCATION")

	set(&cfg.Anthropic.APIKey, "ANTHROPIC_API_KEY", "QUIZGEN_ANTHROPIC_API_KEY")
	set(&cfg.Anthropic.Model, "QUIZGEN_ANTHROPIC_MODEL")

	set(&cfg.OpenAI.APIKey, "OPENAI_API_KEY", "QUIZGEN_OPENAI_API_KEY")
	set(&cfg.OpenAI.Model, "QUIZGEN_OPENAI_MODEL")
	set(&cfg.OpenAI.BaseURL, "QUIZGEN_OPENAI_BASE_URL")

	set(&cfg.OpenRouter.APIKey, "OPENROUTER_API_KEY", "QUIZGEN_OPENROUTER_API_KEY")
	set(&cfg.OpenRouter.Model, "QUIZGEN_OPENROUTER_MODEL")

	set(&cfg.Ollama.Host, "OLLAMA_HOST")
	set(&cfg.Ollama.Model, "QUIZGEN_OLLAMA_MODEL")

	if v, ok := lookup("QUIZGEN_MOCK_RESPONSE"); ok {
		cfg.Mock.Response = v
	}

	if v := get("QUIZGEN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("parse QUIZGEN_TIMEOUT %q: %w", v, err)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// Validate checks that the selected provider has what it needs to connect.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.Backend == "vertex" {
			if c.Gemini.Project == "" || c.Gemini.Location == "" {
				return fmt.Errorf("GOOGLE_CLOUD_PROJECT and GOOGLE_CLOUD_LOCATION are required for the vertex backend")
			}
			return nil
		}
		if c.Gemini.APIKey == "" {
			return &ErrMissingAPIKey{Provider: "gemini", EnvVar: "GOOGLE_API_KEY"}
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return &ErrMissingAPIKey{Provider: "anthropic", EnvVar: "ANTHROPIC_API_KEY"}
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return &ErrMissingAPIKey{Provider: "openai", EnvVar: "OPENAI_API_KEY"}
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return &ErrMissingAPIKey{Provider: "openrouter", EnvVar: "OPENROUTER_API_KEY"}
		}
	case "ollama", "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
