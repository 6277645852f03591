// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package core

import "fmt"

// Span is a horizontal run of pixels sharing one coverage value.
//
// Spans are transient: rasterizers emit them and compositors consume them
// immediately. A span never owns pixel memory.
type Span struct {
	X        int   // Starting X position
	Y        int   // Scanline
	Len      int   // Run length in pixels
	Coverage uint8 // Coverage value (0-255)
}

// End returns the first X position past the run.
func (s Span) End() int {
	return s.X + s.Len
}

// Translate returns the span moved by (dx, dy).
func (s Span) Translate(dx, dy int) Span {
	s.X += dx
	s.Y += dy
	return s
}

// String returns a compact representation, handy in test failures.
func (s Span) String() string {
	return fmt.Sprintf("span{x=%d y=%d len=%d cov=%d}", s.X, s.Y, s.Len, s.Coverage)
}
