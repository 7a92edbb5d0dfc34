package domain

import (
	"context"
	"io"
	"strings"
)

// DocumentFormat is the branch selected from an upload's filename suffix.
type DocumentFormat string

const (
	FormatPDF     DocumentFormat = "pdf"
	FormatText    DocumentFormat = "txt"
	FormatUnknown DocumentFormat = "unknown"
)

// FormatOf picks the extraction branch. The suffix match is case-sensitive.
func FormatOf(filename string) DocumentFormat {
	switch {
	case strings.HasSuffix(filename, ".pdf"):
		return FormatPDF
	case strings.HasSuffix(filename, ".txt"):
		return FormatText
	default:
		return FormatUnknown
	}
}

// Extraction is the result of reading a document. Text may be empty; a
// non-empty Reason explains why extraction degraded.
type Extraction struct {
	Text          string         `json:"text"`
	Format        DocumentFormat `json:"format"`
	Pages         int            `json:"pages,omitempty"`
	PagesWithText int            `json:"pages_with_text,omitempty"`
	Reason        string         `json:"reason,omitempty"`
}

// Empty reports whether the extraction produced no usable text.
func (e Extraction) Empty() bool {
	return strings.TrimSpace(e.Text) == ""
}

// Degraded reports whether extraction fell back to empty or partial text.
func (e Extraction) Degraded() bool {
	return e.Reason != ""
}

// TextExtractor converts an uploaded document into plain text. It absorbs its
// own parse failures and reports them through Extraction.Reason.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, r io.Reader) Extraction
}
