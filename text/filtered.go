package text

import (
	"iter"

	"github.com/gogpu/bootgfx/core"
)

// UnicodeRange represents a contiguous range of code points.
type UnicodeRange struct {
	Start rune
	End   rune
}

// Contains reports whether the rune is in the range.
func (ur UnicodeRange) Contains(r rune) bool {
	return r >= ur.Start && r <= ur.End
}

// Unicode ranges commonly found in boot and console fonts.
var (
	RangeBasicLatin = UnicodeRange{0x0000, 0x007F} // ASCII
	RangeLatin1Sup  = UnicodeRange{0x0080, 0x00FF} // Latin-1 Supplement
	RangeLatinExtA  = UnicodeRange{0x0100, 0x017F} // Latin Extended-A
	RangeGreek      = UnicodeRange{0x0370, 0x03FF} // Greek and Coptic
	RangeCyrillic   = UnicodeRange{0x0400, 0x04FF} // Cyrillic

	RangeBoxDrawing    = UnicodeRange{0x2500, 0x257F} // Box Drawing
	RangeBlockElements = UnicodeRange{0x2580, 0x259F} // Block Elements
)

// FilteredFont restricts a font to specific Unicode ranges.
// Runes outside the ranges have no glyph, no advance and draw nothing,
// which makes FilteredFont useful to pick a font per script in a MultiFont.
//
// FilteredFont is safe for concurrent use when the wrapped font is.
type FilteredFont struct {
	font   Font
	ranges []UnicodeRange
}

// NewFilteredFont creates a FilteredFont.
// If no ranges are specified, all glyphs are available (no filtering).
func NewFilteredFont(f Font, ranges ...UnicodeRange) *FilteredFont {
	return &FilteredFont{
		font:   f,
		ranges: ranges,
	}
}

// Metrics implements Font.Metrics.
func (f *FilteredFont) Metrics() Metrics {
	return f.font.Metrics()
}

// Advance implements Font.Advance.
func (f *FilteredFont) Advance(r rune) int {
	if !f.inRanges(r) {
		return 0
	}
	return f.font.Advance(r)
}

// HasGlyph implements GlyphChecker.HasGlyph.
func (f *FilteredFont) HasGlyph(r rune) bool {
	return f.inRanges(r) && HasGlyph(f.font, r)
}

// Rasterize implements Font.Rasterize.
func (f *FilteredFont) Rasterize(r rune, x, y int) iter.Seq[core.Span] {
	if !f.inRanges(r) {
		return func(func(core.Span) bool) {}
	}
	return f.font.Rasterize(r, x, y)
}

// inRanges reports whether r is in any of the allowed ranges.
func (f *FilteredFont) inRanges(r rune) bool {
	if len(f.ranges) == 0 {
		return true
	}
	for _, ur := range f.ranges {
		if ur.Contains(r) {
			return true
		}
	}
	return false
}
