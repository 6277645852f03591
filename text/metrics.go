package text

import "math"

// Metrics holds the whole-pixel metrics the layout works with.
type Metrics struct {
	// Height is the height of the glyph cell (ascent + descent).
	Height int

	// LineHeight is the vertical distance between two consecutive lines.
	// Buffer sizing and the layout cursor both advance by this value.
	LineHeight int

	// Baseline is the distance from the top of the glyph cell to the baseline.
	Baseline int
}

// FontMetrics holds font-level metrics at a specific size, as reported by
// a FontParser. Both Ascent and Descent are positive distances from the
// baseline.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font.
	Descent float64

	// LineGap is the recommended extra gap between lines.
	LineGap float64
}

// Height returns the total line height (ascent + descent + line gap).
func (m FontMetrics) Height() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// pixels rounds font metrics up to whole pixels.
func (m FontMetrics) pixels() Metrics {
	asc := int(math.Ceil(m.Ascent))
	desc := int(math.Ceil(m.Descent))
	lh := int(math.Ceil(m.Height()))
	if lh < asc+desc {
		lh = asc + desc
	}
	return Metrics{
		Height:     asc + desc,
		LineHeight: lh,
		Baseline:   asc,
	}
}
