package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownParser is returned when a source asks for a parser
	// that was never registered.
	ErrUnknownParser = errors.New("text: unknown font parser")

	// ErrInvalidSize is returned when a face is requested at a size <= 0.
	ErrInvalidSize = errors.New("text: invalid face size")
)

// ParserError reports which metrics backend failed to parse a font.
type ParserError struct {
	Parser string
	Err    error
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("text: %s parser: %v", e.Parser, e.Err)
}

func (e *ParserError) Unwrap() error {
	return e.Err
}
