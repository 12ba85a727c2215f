package inetheader

import (
	"errors"
	"fmt"

	"github.com/zostay/go-inetheader/field"
)

// Errors returned by Parse and Serialize.
var (
	// ErrMalformedLine is returned when a header line has no colon.
	ErrMalformedLine = errors.New("inetheader: header line is missing a colon")

	// ErrLineTooLong is returned when a header line, including its
	// terminating CRLF, exceeds the configured line-length limit.
	ErrLineTooLong = errors.New("inetheader: header line exceeds the configured length limit")

	// ErrInvalidNameByte marks a name byte outside the printable ASCII
	// range 0x21..0x7E. It does not interrupt parsing: the offending entry
	// is still stored and the store's validity flag is latched instead
	// (see Store.IsValid).
	ErrInvalidNameByte = errors.New("inetheader: header name contains a byte outside the printable ASCII range")

	// ErrFoldingImpossible is returned by Header.Serialize when the fold
	// encoding cannot break some value's line to the configured width.
	ErrFoldingImpossible = field.ErrFoldingImpossible
)

// ParseError reports a parse failure together with the byte offset in the
// input buffer at which it was detected.
type ParseError struct {
	Offset int
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("inetheader: %v at offset %d", e.Err, e.Offset)
}

// Unwrap allows errors.Is/errors.As to see through to the wrapped sentinel.
func (e *ParseError) Unwrap() error {
	return e.Err
}
