package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// LoggingProvider is a decorator that logs every LLM request.
type LoggingProvider struct {
	inner  Provider
	logger *slog.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	logger := l.logger.With(
		"call_id", uuid.NewString(),
		"model", l.inner.ModelID(),
		"purpose", PurposeFrom(ctx),
	)
	logger.DebugContext(ctx, "sending LLM request", "prompt_chars", promptChars(req))

	resp, err := l.inner.Generate(ctx, req)

	latency := time.Since(start)
	if err != nil {
		logger.ErrorContext(ctx, "LLM request failed", "latency", latency, "error", err)
		return nil, err
	}

	attrs := []any{
		"latency", latency,
		"served_by", resp.Model,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
		"stop_reason", resp.StopReason,
		"response_chars", len(resp.Text),
	}
	if cost := LookupCost(resp.Model); cost != nil {
		attrs = append(attrs, "cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
	}
	logger.DebugContext(ctx, "LLM request completed", attrs...)

	if resp.StopReason == "max_tokens" {
		logger.WarnContext(ctx, "LLM response truncated at max tokens", "output_tokens", resp.Usage.OutputTokens)
	}

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func promptChars(req Request) int {
	n := len(req.System)
	for _, m := range req.Messages {
		n += len(m.Content)
	}
	return n
}
