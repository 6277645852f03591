package text

import (
	"slices"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// tallFont has a deeper baseline and wider advances than stubFont.
type tallFont struct {
	stubFont
}

func (f *tallFont) Metrics() Metrics {
	return Metrics{Height: 16, LineHeight: 18, Baseline: 12}
}

func (f *tallFont) Advance(rune) int {
	return 9
}

func TestFilteredFont(t *testing.T) {
	f := NewFilteredFont(&stubFont{}, RangeBasicLatin)

	if got := f.Advance('A'); got != stubAdvance {
		t.Errorf("Advance('A') = %d, want %d", got, stubAdvance)
	}
	if got := f.Advance('é'); got != 0 {
		t.Errorf("Advance('é') = %d, want 0", got)
	}
	if !f.HasGlyph('A') || f.HasGlyph('é') {
		t.Error("HasGlyph does not follow the ranges")
	}
	if spans := slices.Collect(f.Rasterize('é', 0, 0)); len(spans) != 0 {
		t.Errorf("Rasterize('é') = %v, want nothing", spans)
	}
	if spans := slices.Collect(f.Rasterize('A', 0, 0)); len(spans) != stubHeight {
		t.Errorf("Rasterize('A') = %d spans, want %d", len(spans), stubHeight)
	}

	all := NewFilteredFont(&stubFont{})
	if !all.HasGlyph('é') || all.Advance('é') != stubAdvance {
		t.Error("FilteredFont without ranges should not filter")
	}
}

func TestUnicodeRangeContains(t *testing.T) {
	tests := []struct {
		r    rune
		ur   UnicodeRange
		want bool
	}{
		{'A', RangeBasicLatin, true},
		{0x7F, RangeBasicLatin, true},
		{0x80, RangeBasicLatin, false},
		{'═', RangeBoxDrawing, true},
		{'█', RangeBlockElements, true},
		{'Ж', RangeCyrillic, true},
	}
	for _, tt := range tests {
		if got := tt.ur.Contains(tt.r); got != tt.want {
			t.Errorf("%v.Contains(%q) = %v, want %v", tt.ur, tt.r, got, tt.want)
		}
	}
}

func TestMultiFont(t *testing.T) {
	m, err := NewMultiFont(NewFilteredFont(&stubFont{}, RangeBasicLatin), &tallFont{})
	if err != nil {
		t.Fatalf("NewMultiFont() error = %v", err)
	}

	want := Metrics{Height: 16, LineHeight: 18, Baseline: 12}
	if got := m.Metrics(); got != want {
		t.Errorf("Metrics() = %+v, want %+v", got, want)
	}
	if got := m.Advance('A'); got != stubAdvance {
		t.Errorf("Advance('A') = %d, want %d", got, stubAdvance)
	}
	if got := m.Advance('é'); got != 9 {
		t.Errorf("Advance('é') = %d, want 9", got)
	}
	if !m.HasGlyph('é') {
		t.Error("HasGlyph('é') = false, want true")
	}

	// The primary font's baseline is 4px higher than the shared one.
	a := slices.Collect(m.Rasterize('A', 0, 0))
	if len(a) == 0 || a[0].Y != 4 {
		t.Errorf("Rasterize('A') first row = %v, want y 4", a)
	}
	e := slices.Collect(m.Rasterize('é', 0, 0))
	if len(e) == 0 || e[0].Y != 0 {
		t.Errorf("Rasterize('é') first row = %v, want y 0", e)
	}
}

func TestNewMultiFontErrors(t *testing.T) {
	if _, err := NewMultiFont(); err == nil {
		t.Error("NewMultiFont() error = nil, want error")
	}
	if _, err := NewMultiFont(&stubFont{}, nil); err == nil {
		t.Error("NewMultiFont(nil font) error = nil, want error")
	}
}

func TestHasGlyphDecorators(t *testing.T) {
	base := NewFilteredFont(&stubFont{}, RangeBasicLatin)
	cached, err := NewCachedFont(base, 8)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []Font{Scale(base, 2, 2), cached} {
		if !HasGlyph(f, 'A') || HasGlyph(f, 'Ж') {
			t.Errorf("%T does not forward HasGlyph", f)
		}
	}
	if !HasGlyph(&stubFont{}, 'Ж') {
		t.Error("fonts without GlyphChecker should cover every rune")
	}
}

func TestSourceFaceHasGlyph(t *testing.T) {
	for _, parser := range []string{"ximage", "gotext"} {
		t.Run(parser, func(t *testing.T) {
			src, err := NewFontSource(goregular.TTF, WithParser(parser))
			if err != nil {
				t.Fatal(err)
			}
			f, err := src.Face(12)
			if err != nil {
				t.Fatal(err)
			}
			if !HasGlyph(f, 'A') {
				t.Error("HasGlyph('A') = false")
			}
			if HasGlyph(f, '\U0001F600') {
				t.Error("HasGlyph(emoji) = true for Go Regular")
			}
		})
	}
}
