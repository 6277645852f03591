package bootgfx

import "github.com/gogpu/bootgfx/text"

// Polarity selects whether glyph coverage brightens or darkens the buffer.
type Polarity uint8

const (
	// PolarityLight adds coverage: light text on a dark background.
	PolarityLight Polarity = iota

	// PolarityDark subtracts coverage: dark text on a light background.
	PolarityDark
)

// String returns the string representation of the polarity.
func (p Polarity) String() string {
	switch p {
	case PolarityLight:
		return "Light"
	case PolarityDark:
		return "Dark"
	default:
		return unknownStr
	}
}

// BlendPolicy selects what happens when coverage leaves the 0..255 range.
type BlendPolicy uint8

const (
	// BlendLegacy reproduces the historical boot screen arithmetic:
	// a light sum above 255 becomes 0 and a dark difference wraps
	// around modulo 256.
	BlendLegacy BlendPolicy = iota

	// BlendClamp saturates at 0 and 255.
	BlendClamp
)

// String returns the string representation of the blend policy.
func (b BlendPolicy) String() string {
	switch b {
	case BlendLegacy:
		return "Legacy"
	case BlendClamp:
		return "Clamp"
	default:
		return unknownStr
	}
}

// blend combines a buffer value v with coverage c.
func (b BlendPolicy) blend(v, c uint8, p Polarity) uint8 {
	if p == PolarityDark {
		if b == BlendClamp && c > v {
			return 0
		}
		return v - c
	}

	sum := int(v) + int(c)
	if sum > 255 {
		if b == BlendClamp {
			return 255
		}
		return 0
	}
	return uint8(sum)
}

// Style controls how a block of text is placed inside its buffer.
// A Style is a plain value and is never modified by the renderer.
type Style struct {
	// Align places lines that are not justified.
	Align text.Alignment

	// Justify stretches inner spaces so lines fill the available width.
	Justify bool

	// JustifyLast also stretches the last line of each paragraph.
	JustifyLast bool

	// Margin is the horizontal inset on both sides, in pixels.
	Margin int

	// Polarity selects additive or subtractive blending.
	Polarity Polarity
}

// avail returns the width left for text between the margins.
func (s Style) avail(width int) int {
	return width - 2*s.Margin
}

func (s Style) lineStyle(width int) text.LineStyle {
	return text.LineStyle{
		Align:       s.Align,
		Justify:     s.Justify,
		JustifyLast: s.JustifyLast,
		Width:       s.avail(width),
	}
}

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"
