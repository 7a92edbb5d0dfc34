package extractor

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// pageSource is the part of a parsed PDF the extractor needs. Pages are
// numbered from 1.
type pageSource interface {
	NumPage() int
	PageText(n int) (string, error)
}

type pdfDocument struct {
	reader *pdf.Reader
	pages  int
}

// openPDF parses data with ledongthuc/pdf. The library panics on some
// malformed inputs; those panics come back as errors.
func openPDF(data []byte) (doc pageSource, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("pdf: %v", r)
		}
	}()

	if len(data) == 0 {
		return nil, errors.New("pdf: empty document")
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return &pdfDocument{reader: reader, pages: reader.NumPage()}, nil
}

func (d *pdfDocument) NumPage() int {
	return d.pages
}

func (d *pdfDocument) PageText(n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("pdf page %d: %v", n, r)
		}
	}()

	page := d.reader.Page(n)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}
