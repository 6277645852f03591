package text

import (
	"errors"
	"iter"

	"github.com/gogpu/bootgfx/core"
)

// MultiFont combines multiple fonts with fallback.
// Each rune is measured and drawn with the first font that has its glyph;
// runes no font covers fall back to the first font.
//
// Baselines are aligned: the cell is as tall as the tallest ascent plus the
// deepest descent, and every font is shifted down to the shared baseline.
// MultiFont is safe for concurrent use when its fonts are.
type MultiFont struct {
	fonts   []Font
	metrics Metrics
}

// NewMultiFont creates a MultiFont from fonts, in priority order.
func NewMultiFont(fonts ...Font) (*MultiFont, error) {
	if len(fonts) == 0 {
		return nil, errors.New("text: NewMultiFont: fonts cannot be empty")
	}

	var baseline, descent, gap int
	for _, f := range fonts {
		if f == nil {
			return nil, errors.New("text: NewMultiFont: nil font")
		}
		m := f.Metrics()
		baseline = max(baseline, m.Baseline)
		descent = max(descent, m.Height-m.Baseline)
		gap = max(gap, m.LineHeight-m.Height)
	}

	return &MultiFont{
		fonts: fonts,
		metrics: Metrics{
			Height:     baseline + descent,
			LineHeight: baseline + descent + gap,
			Baseline:   baseline,
		},
	}, nil
}

// Metrics implements Font.Metrics.
func (m *MultiFont) Metrics() Metrics {
	return m.metrics
}

// Advance implements Font.Advance.
func (m *MultiFont) Advance(r rune) int {
	return m.fontFor(r).Advance(r)
}

// HasGlyph implements GlyphChecker.HasGlyph.
// Returns true if any font has the glyph.
func (m *MultiFont) HasGlyph(r rune) bool {
	for _, f := range m.fonts {
		if HasGlyph(f, r) {
			return true
		}
	}
	return false
}

// Rasterize implements Font.Rasterize.
func (m *MultiFont) Rasterize(r rune, x, y int) iter.Seq[core.Span] {
	f := m.fontFor(r)
	shift := m.metrics.Baseline - f.Metrics().Baseline
	return f.Rasterize(r, x, y+shift)
}

// fontFor returns the first font that has the glyph for r.
// If no font has the glyph, returns the first font as fallback.
func (m *MultiFont) fontFor(r rune) Font {
	for _, f := range m.fonts {
		if HasGlyph(f, r) {
			return f
		}
	}
	return m.fonts[0]
}
