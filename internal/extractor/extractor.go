// Package extractor turns uploaded documents into plain text.
//
// Extraction never fails past this package: unreadable input degrades to an
// empty Extraction whose Reason says what went wrong, and callers decide
// whether empty text is an error.
package extractor

import (
	"context"
	"fmt"
	"io"
	"strings"

	"doc-quiz/internal/domain"
)

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxBytes bounds how much of a document is read. Zero means unlimited.
func WithMaxBytes(n int64) Option {
	return func(e *Extractor) {
		e.maxBytes = n
	}
}

// Extractor implements domain.TextExtractor for .txt and .pdf uploads.
type Extractor struct {
	maxBytes int64
	openPDF  func(data []byte) (pageSource, error)
}

// New creates an Extractor backed by the ledongthuc/pdf reader.
func New(opts ...Option) *Extractor {
	e := &Extractor{openPDF: openPDF}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract picks a branch from the filename suffix. Unknown suffixes yield
// empty text without reading r.
func (e *Extractor) Extract(ctx context.Context, filename string, r io.Reader) domain.Extraction {
	result := domain.Extraction{Format: domain.FormatOf(filename)}
	if result.Format == domain.FormatUnknown {
		result.Reason = fmt.Sprintf("unsupported file type: %q", filename)
		return result
	}

	data, err := e.read(r)
	if err != nil {
		result.Reason = err.Error()
		return result
	}

	switch result.Format {
	case domain.FormatText:
		result.Text = string(data)
	case domain.FormatPDF:
		e.extractPDF(ctx, data, &result)
	}
	return result
}

func (e *Extractor) read(r io.Reader) ([]byte, error) {
	if e.maxBytes <= 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read document: %w", err)
		}
		return data, nil
	}

	data, err := io.ReadAll(io.LimitReader(r, e.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if int64(len(data)) > e.maxBytes {
		return nil, fmt.Errorf("document exceeds %d bytes", e.maxBytes)
	}
	return data, nil
}

// extractPDF concatenates page texts in page order with no separator. Pages
// that fail or have no text are skipped.
func (e *Extractor) extractPDF(ctx context.Context, data []byte, result *domain.Extraction) {
	doc, err := e.openPDF(data)
	if err != nil {
		result.Reason = fmt.Sprintf("unreadable pdf: %v", err)
		return
	}

	result.Pages = doc.NumPage()
	var (
		text   strings.Builder
		failed int
	)
	for n := 1; n <= result.Pages; n++ {
		if err := ctx.Err(); err != nil {
			result.Reason = fmt.Sprintf("extraction stopped at page %d: %v", n, err)
			break
		}
		pageText, err := doc.PageText(n)
		if err != nil {
			failed++
			continue
		}
		if pageText == "" {
			continue
		}
		text.WriteString(pageText)
		result.PagesWithText++
	}
	result.Text = text.String()

	if failed > 0 && result.Reason == "" {
		result.Reason = fmt.Sprintf("%d of %d pages could not be extracted", failed, result.Pages)
	}
}

var _ domain.TextExtractor = (*Extractor)(nil)
