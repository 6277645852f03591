package text

import (
	"iter"
	"strings"

	"github.com/gogpu/bootgfx/core"
)

// LineStyle controls how a single line is placed horizontally.
type LineStyle struct {
	// Align is used when the line is not justified.
	Align Alignment

	// Justify stretches the spaces of a line so that it fills Width.
	Justify bool

	// JustifyLast also justifies the last line of each paragraph.
	// By default it is placed with Align instead.
	JustifyLast bool

	// Width is the available width in pixels.
	Width int
}

// justifies reports whether l is stretched to the full width.
func (s LineStyle) justifies(l Line) bool {
	return s.Justify && (!l.ParagraphEnd || s.JustifyLast)
}

// Placement is the horizontal position of one glyph of a line.
type Placement struct {
	Rune rune

	// X is the left edge of the glyph cell.
	X int

	// Advance is the distance to the next glyph, including any
	// justification stretch.
	Advance int
}

// Place returns the glyph positions of line, anchored at anchorX.
//
// Without justification the line starts at anchorX (left), at
// anchorX + (Width-w)/2 (center) or at anchorX + Width-w (right), w being
// its natural width. With justification the difference Width-w is spread
// over the spaces between the first and last visible glyph so the line
// ends exactly at anchorX + Width; the first (Width-w) mod n spaces get one
// extra pixel. Lines without inner spaces, lines wider than Width and, unless
// JustifyLast is set, the last line of a paragraph fall back to Align.
func Place(f Measurer, anchorX int, style LineStyle, line Line) iter.Seq[Placement] {
	return func(yield func(Placement) bool) {
		if line.Text == "" {
			return
		}

		natural := Measure(f, line.Text)
		extra := style.Width - natural

		first, last, gaps := innerSpaces(line.Text)
		if style.justifies(line) && gaps > 0 && extra > 0 {
			per, rem := extra/gaps, extra%gaps
			x, k := anchorX, 0
			for i, r := range line.Text {
				adv := f.Advance(r)
				if isBreakSpace(r) && i > first && i < last {
					adv += per
					if k < rem {
						adv++
					}
					k++
				}
				if !yield(Placement{Rune: r, X: x, Advance: adv}) {
					return
				}
				x += adv
			}
			return
		}

		x := anchorX + alignOffset(style.Align, style.Width, natural)
		for _, r := range line.Text {
			adv := f.Advance(r)
			if !yield(Placement{Rune: r, X: x, Advance: adv}) {
				return
			}
			x += adv
		}
	}
}

// RenderLine returns the coverage spans of line with the top of the line
// box at y. Every placed glyph is rasterized through f in order.
func RenderLine(f Font, anchorX, y int, style LineStyle, line Line) iter.Seq[core.Span] {
	return func(yield func(core.Span) bool) {
		for p := range Place(f, anchorX, style, line) {
			for s := range f.Rasterize(p.Rune, p.X, y) {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// alignOffset returns the x offset of a line of width w inside avail.
func alignOffset(a Alignment, avail, w int) int {
	switch a {
	case AlignCenter:
		return (avail - w) / 2
	case AlignRight:
		return avail - w
	default:
		return 0
	}
}

// innerSpaces returns the byte offsets of the first and last visible rune
// of s and the number of spaces between them.
func innerSpaces(s string) (first, last, gaps int) {
	first = strings.IndexFunc(s, func(r rune) bool { return !isBreakSpace(r) })
	last = strings.LastIndexFunc(s, func(r rune) bool { return !isBreakSpace(r) })
	if first < 0 {
		return 0, 0, 0
	}
	for _, r := range s[first:last] {
		if isBreakSpace(r) {
			gaps++
		}
	}
	return first, last, gaps
}
