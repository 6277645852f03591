package bootgfx

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the renderer and the compositors.
var (
	// ErrAllocation is returned when a text buffer would exceed the
	// configured size limit or its size overflows.
	ErrAllocation = errors.New("bootgfx: buffer allocation failed")

	// ErrInvalidDimensions is returned for non-positive widths, negative
	// margins, margins leaving no room for text and blit scales below 1.
	ErrInvalidDimensions = errors.New("bootgfx: invalid dimensions")

	// ErrMissingFont is returned when no font is supplied.
	ErrMissingFont = errors.New("bootgfx: missing font")

	// ErrOutOfBounds is returned when a blit region does not fit
	// inside the framebuffer.
	ErrOutOfBounds = errors.New("bootgfx: region out of framebuffer bounds")

	// ErrLayoutMismatch is returned when the rendering pass placed a
	// different number of lines than the sizing pass counted.
	ErrLayoutMismatch = errors.New("bootgfx: layout pass does not match sizing pass")
)

// DimensionError describes an unusable width or height.
// It unwraps to ErrInvalidDimensions.
type DimensionError struct {
	Width  int
	Height int
	Reason string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("bootgfx: invalid dimensions %dx%d: %s", e.Width, e.Height, e.Reason)
}

func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimensions
}
