package pdf

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the given path does not reference an existing
// local PDF. Remote URLs are rejected with the same error since this
// component only reads local files.
var ErrNotFound = errors.New("pdf resource not found")

// ParseError reports a structural failure while reading the PDF bytes.
// It wraps the underlying extraction library error.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse pdf %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
