package text

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// WrapMode specifies how text is wrapped when it exceeds the maximum width.
type WrapMode uint8

const (
	// WrapWordChar breaks at spaces first,
	// then falls back to character boundaries for long words.
	// This is the default (zero value).
	WrapWordChar WrapMode = iota

	// WrapNone disables text wrapping; only explicit newlines break lines.
	WrapNone

	// WrapWord breaks at spaces only.
	// Long words that exceed the maximum width overflow.
	WrapWord

	// WrapChar breaks at any character boundary.
	WrapChar
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "None"
	case WrapWord:
		return "Word"
	case WrapChar:
		return "Char"
	case WrapWordChar:
		return "WordChar"
	default:
		return unknownStr
	}
}

// Line is one wrapped line of text.
type Line struct {
	// Text is the line content. It never carries the spaces the line was
	// broken at, nor trailing spaces.
	Text string

	// Glyphs is the number of runes in Text.
	Glyphs int

	// Width is the natural width of Text in pixels.
	Width int

	// ParagraphEnd reports whether this is the last line of a paragraph
	// (followed by an explicit newline or the end of the text).
	ParagraphEnd bool
}

// Lines returns the wrapped lines of text, in order.
//
// Text is split into paragraphs at explicit newlines (CRLF and CR are
// normalized). Each paragraph is wrapped greedily so that no line is wider
// than maxWidth, unless mode leaves no legal break: a single glyph under
// WrapWordChar and WrapChar, a whole word under WrapWord, any paragraph
// under WrapNone.
//
// An empty paragraph yields one empty line, a single trailing newline
// does not, and empty text yields no lines at all.
//
// The sequence is lazy and can be ranged over any number of times;
// the same inputs always produce the same lines.
func Lines(f Measurer, maxWidth int, text string, mode WrapMode) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		if text == "" {
			return
		}
		for _, para := range splitParagraphs(text) {
			if !wrapParagraph(f, maxWidth, para, mode, yield) {
				return
			}
		}
	}
}

// Wrap calls fn with the text and glyph count of every wrapped line.
// Wrapping stops early when fn returns false.
func Wrap(f Measurer, maxWidth int, text string, mode WrapMode, fn func(line string, glyphs int) bool) {
	for l := range Lines(f, maxWidth, text, mode) {
		if !fn(l.Text, l.Glyphs) {
			return
		}
	}
}

// splitParagraphs splits text by hard line breaks.
func splitParagraphs(text string) []string {
	// Normalize line endings
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	paras := strings.Split(text, "\n")
	if n := len(paras); n > 1 && paras[n-1] == "" {
		paras = paras[:n-1]
	}
	return paras
}

// wrapParagraph yields the lines of one paragraph (no hard breaks).
// It returns false when yield asked to stop.
func wrapParagraph(f Measurer, maxWidth int, para string, mode WrapMode, yield func(Line) bool) bool {
	if para == "" {
		// Empty paragraph still produces a line (for line height)
		return yield(Line{ParagraphEnd: true})
	}

	start := 0
	for start < len(para) {
		line, next := nextLine(f, maxWidth, para, start, mode)
		line.ParagraphEnd = next >= len(para)
		if !yield(line) {
			return false
		}
		start = next
	}
	return true
}

// nextLine measures the line starting at byte offset start and returns it
// together with the offset the following line starts at.
func nextLine(f Measurer, maxWidth int, para string, start int, mode WrapMode) (Line, int) {
	var (
		x, n int

		// end of the last non-space rune on the line
		contentEnd = start
		contentW   int
		contentN   int

		// last word boundary that fits
		breakEnd = -1
		breakW   int
		breakN   int

		// a word is being laid past maxWidth (WrapWord only)
		overflow bool
	)

	for i := start; i < len(para); {
		r, size := utf8.DecodeRuneInString(para[i:])

		if isBreakSpace(r) {
			if contentEnd > start && contentEnd == i {
				if overflow {
					return makeLine(para, start, contentEnd, contentW, contentN), skipSpaces(para, i)
				}
				breakEnd, breakW, breakN = i, x, n
			}
			x += f.Advance(r)
			n++
			i += size
			continue
		}

		adv := f.Advance(r)
		if mode != WrapNone && contentEnd == start && x > 0 && x+adv > maxWidth {
			// the indent leaves no room for the first glyph: drop it
			return nextLine(f, maxWidth, para, i, mode)
		}
		if !overflow && mode != WrapNone && contentEnd > start && x+adv > maxWidth {
			switch {
			case breakEnd >= 0 && mode != WrapChar:
				return makeLine(para, start, breakEnd, breakW, breakN), skipSpaces(para, breakEnd)
			case mode == WrapWord:
				overflow = true
			default:
				return makeLine(para, start, contentEnd, contentW, contentN), skipSpaces(para, contentEnd)
			}
		}

		x += adv
		n++
		i += size
		contentEnd, contentW, contentN = i, x, n
	}

	return makeLine(para, start, contentEnd, contentW, contentN), len(para)
}

func makeLine(para string, start, end, width, glyphs int) Line {
	return Line{
		Text:   para[start:end],
		Glyphs: glyphs,
		Width:  width,
	}
}

// isBreakSpace reports whether r is a space lines may be broken at.
func isBreakSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// skipSpaces returns the offset of the first non-space byte at or after i.
func skipSpaces(para string, i int) int {
	for i < len(para) && (para[i] == ' ' || para[i] == '\t') {
		i++
	}
	return i
}
