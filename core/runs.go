// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package core

import (
	"image"
	"image/color"
	"iter"
)

// RowSpans returns an iterator over the runs of one coverage row.
//
// Consecutive samples with the same non-zero value are merged into a single
// span. Zero samples are skipped, they would not change any buffer.
// The first sample of row is placed at x.
func RowSpans(row []uint8, x, y int) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		i := 0
		for i < len(row) {
			a := row[i]
			if a == 0 {
				i++
				continue
			}
			start := i
			for i < len(row) && row[i] == a {
				i++
			}
			if !yield(Span{X: x + start, Y: y, Len: i - start, Coverage: a}) {
				return
			}
		}
	}
}

// MaskSpans returns an iterator over the coverage runs of an alpha mask.
//
// The mask's bounds are kept: a sample at (mx, my) inside m.Rect ends up at
// (mx+offset.X, my+offset.Y). Rows are visited top to bottom.
func MaskSpans(m *image.Alpha, offset image.Point) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		if m == nil {
			return
		}
		b := m.Rect
		w := b.Dx()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := m.PixOffset(b.Min.X, y)
			for s := range RowSpans(m.Pix[i:i+w], b.Min.X+offset.X, y+offset.Y) {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// ImageSpans is like MaskSpans for any image whose alpha channel holds
// coverage. *image.Alpha masks take the fast path; every other image is
// converted through color.AlphaModel, one row at a time.
func ImageSpans(m image.Image, r image.Rectangle, offset image.Point) iter.Seq[Span] {
	if a, ok := m.(*image.Alpha); ok {
		if a == nil {
			return func(func(Span) bool) {}
		}
		sub, _ := a.SubImage(r).(*image.Alpha)
		return MaskSpans(sub, offset)
	}
	return func(yield func(Span) bool) {
		if m == nil {
			return
		}
		r = r.Intersect(m.Bounds())
		row := make([]uint8, r.Dx())
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				row[x-r.Min.X] = color.AlphaModel.Convert(m.At(x, y)).(color.Alpha).A
			}
			for s := range RowSpans(row, r.Min.X+offset.X, y+offset.Y) {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// ScaleSpans expands each span by integer factors around origin.
//
// A span at (x, y) relative to origin becomes sy spans starting at
// origin + (x*sx, y*sy + i), each sx times longer. Factors below 1 are
// treated as 1.
func ScaleSpans(seq iter.Seq[Span], origin image.Point, sx, sy int) iter.Seq[Span] {
	sx = max(sx, 1)
	sy = max(sy, 1)
	return func(yield func(Span) bool) {
		for s := range seq {
			x := origin.X + (s.X-origin.X)*sx
			y := origin.Y + (s.Y-origin.Y)*sy
			for i := range sy {
				if !yield(Span{X: x, Y: y + i, Len: s.Len * sx, Coverage: s.Coverage}) {
					return
				}
			}
		}
	}
}

// TranslateSpans moves every span of seq by (dx, dy).
func TranslateSpans(seq iter.Seq[Span], dx, dy int) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		for s := range seq {
			if !yield(s.Translate(dx, dy)) {
				return
			}
		}
	}
}
