package text

import (
	"image"
	"iter"

	"github.com/gogpu/bootgfx/core"
)

// ScaledFont is a Font derived from a base Font by integer scale factors.
//
// It owns no glyph data: metrics and advances are multiplied and every
// base span is stretched into sy spans of sx times the length. The base
// font must outlive the ScaledFont.
type ScaledFont struct {
	base   Font
	sx, sy int
}

// Scale returns base magnified by sx horizontally and sy vertically.
// Factors below 1 are treated as 1.
func Scale(base Font, sx, sy int) *ScaledFont {
	return &ScaledFont{
		base: base,
		sx:   max(sx, 1),
		sy:   max(sy, 1),
	}
}

// Resolve returns the font to render with at the given scale.
// A scale of 1 or less returns base unchanged; anything larger returns
// a ScaledFont with equal horizontal and vertical factors.
func Resolve(base Font, scale int) Font {
	if scale <= 1 {
		return base
	}
	return Scale(base, scale, scale)
}

// Base returns the font being scaled.
func (f *ScaledFont) Base() Font {
	return f.base
}

// Factors returns the horizontal and vertical scale factors.
func (f *ScaledFont) Factors() (sx, sy int) {
	return f.sx, f.sy
}

// Metrics implements Font.Metrics.
func (f *ScaledFont) Metrics() Metrics {
	m := f.base.Metrics()
	return Metrics{
		Height:     m.Height * f.sy,
		LineHeight: m.LineHeight * f.sy,
		Baseline:   m.Baseline * f.sy,
	}
}

// Advance implements Font.Advance.
func (f *ScaledFont) Advance(r rune) int {
	return f.base.Advance(r) * f.sx
}

// HasGlyph implements GlyphChecker.HasGlyph.
func (f *ScaledFont) HasGlyph(r rune) bool {
	return HasGlyph(f.base, r)
}

// Rasterize implements Font.Rasterize.
func (f *ScaledFont) Rasterize(r rune, x, y int) iter.Seq[core.Span] {
	return core.ScaleSpans(f.base.Rasterize(r, x, y), image.Pt(x, y), f.sx, f.sy)
}
