package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"
)

// OllamaProvider implements Provider against an Ollama server.
type OllamaProvider struct {
	client *api.Client
	model  string
}

// NewOllamaProvider creates a provider for the configured Ollama host.
// An empty host falls back to Ollama's own default (127.0.0.1:11434).
func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	base := envconfig.Host()
	if cfg.Host != "" {
		host := cfg.Host
		if !strings.Contains(host, "://") {
			host = "http://" + host
		}
		u, err := url.Parse(host)
		if err != nil {
			return nil, fmt.Errorf("parse ollama host %q: %w", cfg.Host, err)
		}
		base = u
	}

	return &OllamaProvider{
		client: api.NewClient(base, http.DefaultClient),
		model:  cfg.Model,
	}, nil
}

func (p *OllamaProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	genReq := &api.GenerateRequest{
		Model:   p.model,
		Prompt:  ollamaPrompt(req.Messages),
		System:  req.System,
		Options: map[string]any{},
	}
	if req.Temperature > 0 {
		genReq.Options["temperature"] = req.Temperature
	}
	if req.MaxTokens > 0 {
		genReq.Options["num_predict"] = req.MaxTokens
	}

	var b strings.Builder
	var final api.GenerateResponse
	err := p.client.Generate(ctx, genReq, func(resp api.GenerateResponse) error {
		b.WriteString(resp.Response)
		if resp.Done {
			final = resp
		}
		return nil
	})
	if err != nil {
		return nil, mapOllamaError(err)
	}

	if b.Len() == 0 {
		return nil, &ErrInvalidResponse{
			Err: fmt.Errorf("no text content in Ollama response"),
		}
	}

	model := final.Model
	if model == "" {
		model = p.model
	}

	stop := "end"
	if final.DoneReason == "length" {
		stop = "max_tokens"
	}

	return &Response{
		Text: b.String(),
		Usage: Usage{
			InputTokens:  final.PromptEvalCount,
			OutputTokens: final.EvalCount,
			TotalTokens:  final.PromptEvalCount + final.EvalCount,
		},
		Model:      model,
		StopReason: stop,
	}, nil
}

func (p *OllamaProvider) ModelID() string {
	return p.model
}

// ollamaPrompt flattens the conversation into the single prompt string the
// generate endpoint takes. A lone user message is passed through untouched.
func ollamaPrompt(msgs []Message) string {
	if len(msgs) == 1 && msgs[0].Role == RoleUser {
		return msgs[0].Content
	}

	var b strings.Builder
	for _, m := range msgs {
		fmt.Fprintf(&b, "%s: %s\n\n", m.Role, m.Content)
	}
	return b.String()
}

func mapOllamaError(err error) error {
	var statusErr api.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
