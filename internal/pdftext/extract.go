// Package pdftext pulls the plain text layer out of PDF documents.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrEmptyInput is returned when there are no bytes to parse.
var ErrEmptyInput = errors.New("empty PDF input")

// Extract returns the text of every page of the PDF in data, concatenated
// in page order. Layout and formatting are discarded. Pages whose object is
// missing are skipped.
func Extract(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", ErrEmptyInput
	}

	// The parser panics on some malformed cross-reference tables and
	// object streams instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("parse PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}

	var b strings.Builder

	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		// Font resource names are page-local: /F1 on one page may be a
		// different font object with a different encoding on the next.
		fonts := make(map[string]*pdf.Font)
		for _, name := range p.Fonts() {
			f := p.Font(name)
			fonts[name] = &f
		}

		pageText, err := p.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("read page %d: %w", i, err)
		}
		b.WriteString(pageText)
	}

	return b.String(), nil
}

// Extractor adapts Extract to the pipeline's failure policy: problems are
// logged and turned into an empty string, never returned.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates an Extractor that reports failures to logger.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Extractor{logger: logger}
}

// ExtractText returns the document text, or "" if it cannot be extracted.
// Text that is only whitespace is returned as is.
func (e *Extractor) ExtractText(data []byte) string {
	text, err := Extract(data)
	if err != nil {
		e.logger.Error("error extracting text from PDF", "error", err, "bytes", len(data))
		return ""
	}
	if strings.TrimSpace(text) == "" {
		e.logger.Warn("PDF text is blank", "bytes", len(data), "chars", len(text))
	}
	return text
}
