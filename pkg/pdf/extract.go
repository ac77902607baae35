package pdf

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PageMarker is the in-band delimiter inserted before each page's text so
// page boundaries survive the flattening of the document into one string.
// The %d is the 1-based page index.
const PageMarker = "===PAGE_%d==="

// TextSource converts a PDF resource into a single text blob annotated with
// page markers.
type TextSource interface {
	ExtractText(path string) (string, error)
}

// LibraryTextSource extracts text using the embedded text layer of the PDF.
// Scanned (image-only) PDFs yield empty pages; OCR is out of scope.
type LibraryTextSource struct{}

// NewLibraryTextSource creates the default text source.
func NewLibraryTextSource() *LibraryTextSource { return &LibraryTextSource{} }

// ExtractText reads every page of the PDF at path and returns the
// concatenated text. Each page is preceded by its page marker, its text runs
// are joined with a single trailing space, and the page ends with one
// newline. Remote URLs and missing files fail with ErrNotFound; broken PDF
// bytes fail with a ParseError. No partial text is returned on failure.
func (s *LibraryTextSource) ExtractText(path string) (text string, err error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return "", fmt.Errorf("%w: remote resource %q is not supported", ErrNotFound, path)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	// The reader panics on some malformed content streams, so failures are
	// mapped to a ParseError here instead of crashing the caller.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ParseError{Path: path, Err: fmt.Errorf("panic while reading pdf: %v", r)}
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		fmt.Fprintf(&b, PageMarker+"\n", i)

		page := reader.Page(i)
		if page.V.IsNull() {
			b.WriteString("\n")
			continue
		}

		content := page.Content()
		for _, run := range content.Text {
			b.WriteString(decodeRun(run.S))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

// decodeRun percent-decodes a single text run payload. Payloads that are not
// valid percent-encodings are passed through unchanged.
func decodeRun(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
