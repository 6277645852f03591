package text

import "iter"

// Alignment specifies text horizontal alignment within the layout width.
type Alignment int

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// PlacedLine is a wrapped line together with its vertical position.
type PlacedLine struct {
	Line

	// Index is the zero-based line number.
	Index int

	// Y is the top of the line box.
	Y int
}

// CountLines returns the number of lines Lines produces for the same
// arguments. It is the sizing pass of the two-pass layout: the result
// decides the buffer height before any pixel memory exists.
func CountLines(f Measurer, maxWidth int, text string, mode WrapMode) int {
	n := 0
	for range Lines(f, maxWidth, text, mode) {
		n++
	}
	return n
}

// Layout is the rendering pass of the two-pass layout. It re-runs the
// wrapping and places line i at top + i*LineHeight.
//
// For equal arguments Layout yields exactly CountLines items.
func Layout(f Measurer, maxWidth int, text string, top int, mode WrapMode) iter.Seq[PlacedLine] {
	return func(yield func(PlacedLine) bool) {
		lh := f.Metrics().LineHeight
		i, y := 0, top
		for l := range Lines(f, maxWidth, text, mode) {
			if !yield(PlacedLine{Line: l, Index: i, Y: y}) {
				return
			}
			i++
			y += lh
		}
	}
}
