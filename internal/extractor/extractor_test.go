package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"doc-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePages serves fixed page texts; a non-nil entry in errs fails that page.
type fakePages struct {
	texts []string
	errs  []error
}

func (f *fakePages) NumPage() int { return len(f.texts) }

func (f *fakePages) PageText(n int) (string, error) {
	if f.errs != nil && f.errs[n-1] != nil {
		return "", f.errs[n-1]
	}
	return f.texts[n-1], nil
}

func withPages(pages *fakePages) Option {
	return func(e *Extractor) {
		e.openPDF = func([]byte) (pageSource, error) { return pages, nil }
	}
}

// buildPDF writes a minimal uncompressed PDF with one page per content
// stream. All pages share a WinAnsi Helvetica font named F1.
func buildPDF(contents ...string) []byte {
	var (
		buf     bytes.Buffer
		offsets []int
	)
	object := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")
	fontID := 3 + 2*len(contents)
	kids := make([]string, len(contents))
	for i := range contents {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}

	object("<< /Type /Catalog /Pages 2 0 R >>")
	object(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(contents)))
	for i, content := range contents {
		object(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
			"/Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>", fontID, 4+2*i))
		object(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}
	object("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}

func textPage(s string) string {
	return fmt.Sprintf("BT /F1 12 Tf (%s) Tj ET", s)
}

func TestExtract_Text(t *testing.T) {
	e := New()
	content := "First line.\nSecond line with ünïcode.\n"

	first := e.Extract(context.Background(), "notes.txt", strings.NewReader(content))
	second := e.Extract(context.Background(), "notes.txt", strings.NewReader(content))

	assert.Equal(t, content, first.Text)
	assert.Equal(t, domain.FormatText, first.Format)
	assert.False(t, first.Degraded())
	assert.Equal(t, first, second)
}

func TestExtract_EmptyText(t *testing.T) {
	result := New().Extract(context.Background(), "empty.txt", strings.NewReader(""))

	assert.True(t, result.Empty())
	assert.False(t, result.Degraded())
}

func TestExtract_UnsupportedSuffix(t *testing.T) {
	for _, name := range []string{"notes.docx", "NOTES.TXT", "scan.PDF", "README"} {
		t.Run(name, func(t *testing.T) {
			result := New().Extract(context.Background(), name, strings.NewReader("Plenty of readable text here."))

			assert.Equal(t, domain.FormatUnknown, result.Format)
			assert.True(t, result.Empty())
			assert.Contains(t, result.Reason, "unsupported file type")
		})
	}
}

func TestExtract_ReadFailure(t *testing.T) {
	result := New().Extract(context.Background(), "notes.txt", iotest.ErrReader(errors.New("connection reset")))

	assert.True(t, result.Empty())
	assert.Contains(t, result.Reason, "connection reset")
}

func TestExtract_MaxBytes(t *testing.T) {
	e := New(WithMaxBytes(8))

	ok := e.Extract(context.Background(), "a.txt", strings.NewReader("12345678"))
	assert.Equal(t, "12345678", ok.Text)

	tooBig := e.Extract(context.Background(), "a.txt", strings.NewReader("123456789"))
	assert.True(t, tooBig.Empty())
	assert.Contains(t, tooBig.Reason, "exceeds 8 bytes")
}

func TestExtract_PDFConcatenatesPages(t *testing.T) {
	pages := &fakePages{
		texts: []string{"Cells divide by mitosis", "", "ignored", ". Energy comes from mitochondria."},
		errs:  []error{nil, nil, errors.New("bad font"), nil},
	}
	e := New(withPages(pages))

	result := e.Extract(context.Background(), "bio.pdf", strings.NewReader("%PDF-1.4"))

	assert.Equal(t, "Cells divide by mitosis. Energy comes from mitochondria.", result.Text)
	assert.Equal(t, domain.FormatPDF, result.Format)
	assert.Equal(t, 4, result.Pages)
	assert.Equal(t, 2, result.PagesWithText)
	assert.Equal(t, "1 of 4 pages could not be extracted", result.Reason)
}

func TestExtract_RealPDFJoinsPagesInOrder(t *testing.T) {
	data := buildPDF(
		textPage("Cells divide by mitosis."),
		textPage("Energy comes from mitochondria."),
	)

	result := New().Extract(context.Background(), "bio.pdf", bytes.NewReader(data))

	assert.Equal(t, "Cells divide by mitosis.Energy comes from mitochondria.", result.Text)
	assert.Equal(t, domain.FormatPDF, result.Format)
	assert.Equal(t, 2, result.Pages)
	assert.Equal(t, 2, result.PagesWithText)
	assert.False(t, result.Degraded())
}

func TestExtract_RealPDFWithoutText(t *testing.T) {
	// a page that only strokes a line, like a scan with no text layer
	data := buildPDF("0 0 m 100 100 l S", "0 0 m 50 50 l S")

	result := New().Extract(context.Background(), "scan.pdf", bytes.NewReader(data))

	assert.True(t, result.Empty())
	assert.False(t, result.Degraded())
	assert.Equal(t, 2, result.Pages)
	assert.Zero(t, result.PagesWithText)
}

func TestExtract_PDFWithoutText(t *testing.T) {
	e := New(withPages(&fakePages{texts: []string{"", "", ""}}))

	result := e.Extract(context.Background(), "scan.pdf", strings.NewReader("%PDF-1.4"))

	assert.True(t, result.Empty())
	assert.False(t, result.Degraded())
	assert.Equal(t, 3, result.Pages)
	assert.Zero(t, result.PagesWithText)
}

func TestExtract_PDFCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := New(withPages(&fakePages{texts: []string{"page one text"}}))

	result := e.Extract(ctx, "doc.pdf", strings.NewReader("%PDF-1.4"))

	assert.True(t, result.Empty())
	assert.Contains(t, result.Reason, "extraction stopped at page 1")
}

func TestExtract_MalformedPDF(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not a pdf", "this is plain text pretending to be a pdf"},
		{"empty", ""},
		{"truncated header", "%PDF-1.7\n1 0 obj\n<< /Type /Catalog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result domain.Extraction
			require.NotPanics(t, func() {
				result = New().Extract(context.Background(), "broken.pdf", strings.NewReader(tt.data))
			})

			assert.True(t, result.Empty())
			assert.Equal(t, domain.FormatPDF, result.Format)
			assert.Contains(t, result.Reason, "unreadable pdf")
		})
	}
}
