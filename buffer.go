// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bootgfx

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/bootgfx/core"
)

// Buffer geometry shared by both layout passes.
const (
	// TopOffset is the y of the first line box.
	TopOffset = 2

	// Padding is the number of rows added to line_count × line_height:
	// TopOffset rows above the first line and two rows of slack below
	// the last one.
	Padding = 4
)

// TextBuffer is an 8-bit luminance buffer holding one rendered text block.
// Samples are stored row-major, one byte per pixel, without padding.
type TextBuffer struct {
	width  int
	height int
	pix    []uint8
}

// NewTextBuffer allocates a zeroed width×height buffer, bounded by
// DefaultMaxBufferBytes.
func NewTextBuffer(width, height int) (*TextBuffer, error) {
	return allocTextBuffer(width, height, DefaultMaxBufferBytes, 0)
}

// allocTextBuffer checks the requested size against limit before
// allocating, then fills the buffer with bg.
func allocTextBuffer(width, height, limit int, bg uint8) (*TextBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, &DimensionError{Width: width, Height: height, Reason: "buffer must not be empty"}
	}
	if height > limit/width {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d bytes", ErrAllocation, width, height, limit)
	}

	pix := make([]uint8, width*height)
	if bg != 0 {
		for i := range pix {
			pix[i] = bg
		}
	}
	return &TextBuffer{width: width, height: height, pix: pix}, nil
}

// bufferHeight returns lines × lineHeight + Padding, or false when the
// product does not fit in an int.
func bufferHeight(lines, lineHeight int) (int, bool) {
	if lines < 0 || lineHeight < 0 {
		return 0, false
	}
	if lineHeight > 0 && lines > (math.MaxInt-Padding)/lineHeight {
		return 0, false
	}
	return lines*lineHeight + Padding, true
}

// Width returns the width of the buffer.
func (b *TextBuffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *TextBuffer) Height() int {
	return b.height
}

// Pix returns the raw samples.
func (b *TextBuffer) Pix() []uint8 {
	return b.pix
}

// GreyAt returns the sample at (x, y), or 0 outside the buffer.
func (b *TextBuffer) GreyAt(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[y*b.width+x]
}

// Image returns an image.Gray sharing the buffer's memory.
func (b *TextBuffer) Image() *image.Gray {
	return &image.Gray{
		Pix:    b.pix,
		Stride: b.width,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// Composite blends span s into the buffer and reports whether it was
// written.
//
// Spans are never clipped. A span whose row lies outside the buffer, that
// starts left of column 0, or whose end reaches the last column
// (X+Len >= width) is discarded whole.
func (b *TextBuffer) Composite(s core.Span, p Polarity, policy BlendPolicy) bool {
	if s.Len <= 0 || s.Y < 0 || s.Y >= b.height || s.X < 0 || s.X+s.Len >= b.width {
		return false
	}

	i := s.Y*b.width + s.X
	row := b.pix[i : i+s.Len]
	for j, v := range row {
		row[j] = policy.blend(v, s.Coverage, p)
	}
	return true
}
