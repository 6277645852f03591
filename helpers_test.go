package bootgfx

import (
	"iter"

	"github.com/gogpu/bootgfx/core"
	"github.com/gogpu/bootgfx/text"
)

// boxFont draws every non-space rune as a solid block.
type boxFont struct {
	advance    int
	body       int // span length per row
	height     int
	lineHeight int
	coverage   uint8
}

func newBoxFont() *boxFont {
	return &boxFont{advance: 6, body: 5, height: 10, lineHeight: 12, coverage: 200}
}

func (f *boxFont) Metrics() text.Metrics {
	return text.Metrics{Height: f.height, LineHeight: f.lineHeight, Baseline: f.height - 2}
}

func (f *boxFont) Advance(rune) int {
	return f.advance
}

func (f *boxFont) Rasterize(r rune, x, y int) iter.Seq[core.Span] {
	return func(yield func(core.Span) bool) {
		if r == ' ' {
			return
		}
		for row := range f.height {
			if !yield(core.Span{X: x, Y: y + row, Len: f.body, Coverage: f.coverage}) {
				return
			}
		}
	}
}
