package quizgen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/pdfquiz/internal/llm"
)

// Generator asks the model for questions about a document and parses the
// reply. It never returns an error: every failure is logged and carried in
// the Result.
type Generator struct {
	provider llm.Provider
	config   Config
	logger   *slog.Logger
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{provider: provider, config: cfg, logger: logger}
}

// Generate produces questions for the given document text.
func (g *Generator) Generate(ctx context.Context, text string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Failed(StageGenerate, fmt.Errorf("provider panic: %v", r))
			g.logger.ErrorContext(ctx, "error generating questions", "error", res.Err)
		}
	}()

	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.UserPrompt(BuildPrompt(text, g.config.Count))
	req.MaxTokens = g.config.MaxTokens
	req.Temperature = g.config.Temperature

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		g.logger.ErrorContext(ctx, "error generating questions", "error", err)
		return Failed(StageGenerate, fmt.Errorf("generate questions: %w", err))
	}

	res = Parse(resp.Text)
	if res.Err != nil {
		g.logger.ErrorContext(ctx, "JSON decode error", "source", res.Source, "error", res.Err)
		g.logger.ErrorContext(ctx, "raw response content", "raw", res.Raw)
		return res
	}

	g.logger.InfoContext(ctx, "questions generated",
		"count", len(res.Questions),
		"requested", g.config.Count,
		"source", res.Source,
	)
	return res
}
