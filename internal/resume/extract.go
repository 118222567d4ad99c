// Package resume turns an uploaded PDF résumé into plain text.
package resume

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadableDocument is returned when the input cannot be opened as a PDF.
var ErrUnreadableDocument = errors.New("unreadable pdf document")

const pdfSignature = "%PDF-"

// pageSource exposes the paged text of a document.
type pageSource interface {
	NumPage() int
	PageText(num int) (string, error)
}

type pdfPages struct {
	reader *pdf.Reader
}

func (p pdfPages) NumPage() int {
	return p.reader.NumPage()
}

func (p pdfPages) PageText(num int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: %v", num, r)
		}
	}()

	page := p.reader.Page(num)
	if page.V.IsNull() {
		return "", nil
	}

	return page.GetPlainText(nil)
}

// IsPDF reports whether data starts with the PDF file signature.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte(pdfSignature))
}

// Extract returns the newline-joined text of every page that yields text.
func Extract(r io.ReaderAt, size int64) (string, error) {
	pages, err := open(r, size)
	if err != nil {
		return "", err
	}

	return joinPages(pages), nil
}

// ExtractBytes extracts text from an in-memory PDF.
func ExtractBytes(data []byte) (string, error) {
	if !IsPDF(data) {
		return "", fmt.Errorf("%w: missing %q signature", ErrUnreadableDocument, pdfSignature)
	}

	return Extract(bytes.NewReader(data), int64(len(data)))
}

// ExtractFile extracts text from the PDF at path.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading resume %q: %w", path, err)
	}

	text, err := ExtractBytes(data)
	if err != nil {
		return "", fmt.Errorf("resume %q: %w", path, err)
	}

	return text, nil
}

func open(r io.ReaderAt, size int64) (pages pageSource, err error) {
	// The pdf package panics on some malformed inputs instead of returning an error.
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
			err = fmt.Errorf("%w: %v", ErrUnreadableDocument, rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}

	return pdfPages{reader: reader}, nil
}

func joinPages(pages pageSource) string {
	texts := make([]string, 0, pages.NumPage())
	for i := 1; i <= pages.NumPage(); i++ {
		text, err := pages.PageText(i)
		if err != nil {
			continue
		}
		// The pdf reader starts each text run with a newline.
		if text = strings.TrimSpace(text); text == "" {
			continue
		}
		texts = append(texts, text)
	}

	return strings.Join(texts, "\n")
}
