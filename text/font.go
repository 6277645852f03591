package text

import (
	"iter"

	"github.com/gogpu/bootgfx/core"
)

// Measurer is the part of a Font the layout needs: metrics and advances.
type Measurer interface {
	// Metrics returns the whole-pixel metrics of the font.
	Metrics() Metrics

	// Advance returns the horizontal advance of r in pixels.
	Advance(r rune) int
}

// Font is a glyph metrics and rasterization capability.
//
// Rasterize returns the coverage spans of r with the top-left corner of the
// glyph cell at (x, y). The y coordinate is the top of the line box, not the
// baseline. Rasterizing the same rune at different integer positions must
// yield the same spans translated by the difference; decorators such as
// ScaledFont and CachedFont rely on it.
type Font interface {
	Measurer

	// Rasterize returns the coverage spans of the glyph for r.
	// Spaces yield an empty sequence, missing glyphs whatever fallback
	// glyph the font draws.
	Rasterize(r rune, x, y int) iter.Seq[core.Span]
}

// GlyphChecker is implemented by fonts that know which runes they cover.
type GlyphChecker interface {
	HasGlyph(r rune) bool
}

// HasGlyph reports whether f covers r. Fonts that do not implement
// GlyphChecker are assumed to cover every rune.
func HasGlyph(f Font, r rune) bool {
	if gc, ok := f.(GlyphChecker); ok {
		return gc.HasGlyph(r)
	}
	return true
}

// Measure returns the natural width of s: the sum of its rune advances.
func Measure(f Measurer, s string) int {
	w := 0
	for _, r := range s {
		w += f.Advance(r)
	}
	return w
}
