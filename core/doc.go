// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package core provides the coverage primitives shared by the text
// pipeline and the buffer compositor.
//
// A glyph is never handed around as an image. Rasterizers describe their
// footprint as a sequence of horizontal [Span] values: one run of equal
// coverage on one scanline. This is the same shape a run-length encoded
// alpha mask has, and it lets each stage of the pipeline stay lazy:
//
//	for s := range core.MaskSpans(mask, origin) {
//	    buf.Composite(s, polarity, policy)
//	}
//
// # Key Components
//
//   - [Span] holds x, y, run length and an 8-bit coverage value
//   - [RowSpans] run-length encodes one row of coverage samples
//   - [MaskSpans] walks a whole *image.Alpha row by row
//   - [ScaleSpans] expands spans by integer factors (scaled fonts)
package core
