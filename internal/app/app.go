// Package app wires the extractor, the model and the parser into the
// stdin-to-stdout pipeline.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/pdfquiz/internal/llm"
	"github.com/abhisek/pdfquiz/internal/quizgen"
)

// TextExtractor turns document bytes into text. An empty result means there
// is nothing to ask questions about.
type TextExtractor interface {
	ExtractText(data []byte) string
}

// ConnectFunc creates the model provider. It is only called when there is
// text to send.
type ConnectFunc func(ctx context.Context) (llm.Provider, error)

// Pipeline reads one PDF and writes one JSON array of questions.
type Pipeline struct {
	Extractor TextExtractor
	Connect   ConnectFunc
	Quiz      quizgen.Config
	Logger    *slog.Logger
}

// Run executes the pipeline once. Whatever goes wrong before the output is
// written, out receives a JSON array followed by a newline; the returned
// error only reports a failure to write it.
func (p *Pipeline) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("run_id", uuid.NewString())

	data, err := io.ReadAll(in)
	if err != nil {
		logger.ErrorContext(ctx, "error reading input", "error", err, "bytes", len(data))
		data = nil
	}

	res := p.generate(ctx, logger, data)
	return writeRecords(out, res.Records())
}

func (p *Pipeline) generate(ctx context.Context, logger *slog.Logger, data []byte) quizgen.Result {
	text := p.Extractor.ExtractText(data)
	if text == "" {
		logger.InfoContext(ctx, "no text extracted, skipping generation", "bytes", len(data))
		return quizgen.Result{}
	}
	logger.DebugContext(ctx, "text extracted", "bytes", len(data), "chars", len(text))

	provider, err := p.Connect(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "error generating questions", "error", err)
		return quizgen.Failed(quizgen.StageConnect, fmt.Errorf("connect: %w", err))
	}

	return quizgen.New(provider, p.Quiz, logger).Generate(ctx, text)
}

// writeRecords prints the records as one compact JSON line. Marshal
// compacts each raw record, so newlines inside the model's array vanish.
func writeRecords(out io.Writer, records []json.RawMessage) error {
	b, err := json.Marshal(records)
	if err != nil {
		// Records were decoded from valid JSON and always re-encode.
		b = []byte("[]")
	}
	b = append(b, '\n')
	if _, err := out.Write(b); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
