// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package core

import (
	"image"
	"image/color"
	"slices"
	"testing"
)

func TestRowSpans(t *testing.T) {
	tests := []struct {
		name string
		row  []uint8
		x, y int
		want []Span
	}{
		{"empty", nil, 0, 0, nil},
		{"all zero", []uint8{0, 0, 0}, 0, 0, nil},
		{"single run", []uint8{255, 255, 255}, 4, 2, []Span{{X: 4, Y: 2, Len: 3, Coverage: 255}}},
		{
			"mixed",
			[]uint8{0, 10, 10, 200, 0, 0, 7},
			1, 0,
			[]Span{
				{X: 2, Y: 0, Len: 2, Coverage: 10},
				{X: 4, Y: 0, Len: 1, Coverage: 200},
				{X: 7, Y: 0, Len: 1, Coverage: 7},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(RowSpans(tt.row, tt.x, tt.y))
			if !slices.Equal(got, tt.want) {
				t.Errorf("RowSpans(%v) = %v, want %v", tt.row, got, tt.want)
			}
		})
	}
}

func TestRowSpansStopsEarly(t *testing.T) {
	n := 0
	for range RowSpans([]uint8{1, 0, 2, 0, 3}, 0, 0) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterations = %d, want 2", n)
	}
}

func TestMaskSpans(t *testing.T) {
	m := image.NewAlpha(image.Rect(-1, -2, 2, 0))
	m.SetAlpha(-1, -2, color.Alpha{A: 90})
	m.SetAlpha(0, -2, color.Alpha{A: 90})
	m.SetAlpha(1, -1, color.Alpha{A: 255})

	got := slices.Collect(MaskSpans(m, image.Pt(10, 20)))
	want := []Span{
		{X: 9, Y: 18, Len: 2, Coverage: 90},
		{X: 11, Y: 19, Len: 1, Coverage: 255},
	}
	if !slices.Equal(got, want) {
		t.Errorf("MaskSpans() = %v, want %v", got, want)
	}

	if got := slices.Collect(MaskSpans(nil, image.Point{})); len(got) != 0 {
		t.Errorf("MaskSpans(nil) = %v, want none", got)
	}
}

func TestImageSpansMatchesMaskSpans(t *testing.T) {
	m := image.NewAlpha(image.Rect(0, 0, 4, 3))
	for i := range m.Pix {
		m.Pix[i] = uint8(i % 3 * 100)
	}
	r := image.Rect(1, 0, 4, 2)
	sub, _ := m.SubImage(r).(*image.Alpha)
	want := slices.Collect(MaskSpans(sub, image.Pt(5, 5)))

	// Same coverage through the generic path.
	gray := image.NewNRGBA(m.Rect)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			gray.Set(x, y, color.NRGBA{A: m.AlphaAt(x, y).A})
		}
	}
	got := slices.Collect(ImageSpans(gray, r, image.Pt(5, 5)))
	if !slices.Equal(got, want) {
		t.Errorf("ImageSpans() = %v, want %v", got, want)
	}
	if fast := slices.Collect(ImageSpans(m, r, image.Pt(5, 5))); !slices.Equal(fast, want) {
		t.Errorf("ImageSpans(*image.Alpha) = %v, want %v", fast, want)
	}
}

func TestImageSpansNil(t *testing.T) {
	r := image.Rect(0, 0, 4, 4)
	var a *image.Alpha
	if got := slices.Collect(ImageSpans(a, r, image.Point{})); len(got) != 0 {
		t.Errorf("ImageSpans(nil *image.Alpha) = %v, want none", got)
	}
	if got := slices.Collect(ImageSpans(nil, r, image.Point{})); len(got) != 0 {
		t.Errorf("ImageSpans(nil) = %v, want none", got)
	}
}

func TestScaleSpans(t *testing.T) {
	in := slices.Values([]Span{{X: 11, Y: 21, Len: 2, Coverage: 50}})
	got := slices.Collect(ScaleSpans(in, image.Pt(10, 20), 3, 2))
	want := []Span{
		{X: 13, Y: 22, Len: 6, Coverage: 50},
		{X: 13, Y: 23, Len: 6, Coverage: 50},
	}
	if !slices.Equal(got, want) {
		t.Errorf("ScaleSpans() = %v, want %v", got, want)
	}

	ident := slices.Collect(ScaleSpans(in, image.Pt(10, 20), 0, -4))
	if !slices.Equal(ident, []Span{{X: 11, Y: 21, Len: 2, Coverage: 50}}) {
		t.Errorf("ScaleSpans() with factors < 1 = %v, want unchanged", ident)
	}
}

func TestTranslateSpans(t *testing.T) {
	in := slices.Values([]Span{{X: 1, Y: 2, Len: 3, Coverage: 4}})
	got := slices.Collect(TranslateSpans(in, -1, 5))
	if want := (Span{X: 0, Y: 7, Len: 3, Coverage: 4}); len(got) != 1 || got[0] != want {
		t.Errorf("TranslateSpans() = %v, want [%v]", got, want)
	}
}

func TestSpanEnd(t *testing.T) {
	s := Span{X: 3, Len: 4}
	if s.End() != 7 {
		t.Errorf("End() = %d, want 7", s.End())
	}
}
