package text

import (
	"slices"
	"strings"
	"testing"
	"unicode/utf8"
)

// TestWrapModeString tests WrapMode.String method.
func TestWrapModeString(t *testing.T) {
	tests := []struct {
		mode WrapMode
		want string
	}{
		{WrapWordChar, "WordChar"},
		{WrapNone, "None"},
		{WrapWord, "Word"},
		{WrapChar, "Char"},
		{WrapMode(99), unknownStr},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := tt.mode.String()
			if got != tt.want {
				t.Errorf("WrapMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}

func lineTexts(f Measurer, maxWidth int, text string, mode WrapMode) []string {
	var out []string
	for l := range Lines(f, maxWidth, text, mode) {
		out = append(out, l.Text)
	}
	return out
}

func TestLines(t *testing.T) {
	f := &stubFont{}
	tests := []struct {
		name     string
		text     string
		maxWidth int
		mode     WrapMode
		want     []string
	}{
		{"empty text", "", 100, WrapWordChar, nil},
		{"fits", "AB CD", 100, WrapWordChar, []string{"AB CD"}},
		{"exact fit", "AB CD", 27, WrapWordChar, []string{"AB CD"}},
		{"one pixel short", "AB CD", 26, WrapWordChar, []string{"AB", "CD"}},
		{"three lines", "AAA BBB CCC", 20, WrapWordChar, []string{"AAA", "BBB", "CCC"}},
		{"spaces collapse at break", "AB    CD", 20, WrapWordChar, []string{"AB", "CD"}},
		{"leading indent kept", "  AB", 100, WrapWordChar, []string{"  AB"}},
		{"trailing spaces trimmed", "AB   ", 100, WrapWordChar, []string{"AB"}},
		{"newline", "AB\nCD", 100, WrapWordChar, []string{"AB", "CD"}},
		{"crlf", "AB\r\nCD\rEF", 100, WrapWordChar, []string{"AB", "CD", "EF"}},
		{"trailing newline", "AB\n", 100, WrapWordChar, []string{"AB"}},
		{"blank paragraph", "AB\n\nCD", 100, WrapWordChar, []string{"AB", "", "CD"}},
		{"only newline", "\n", 100, WrapWordChar, []string{""}},
		{"long word char fallback", "ABCDEFG", 20, WrapWordChar, []string{"ABC", "DEF", "G"}},
		{"long word after word", "AB CDEFGH", 20, WrapWordChar, []string{"AB", "CDE", "FGH"}},
		{"word mode overflows", "AB CDEFGH IJ", 20, WrapWord, []string{"AB", "CDEFGH", "IJ"}},
		{"char mode", "AB CD", 20, WrapChar, []string{"AB", "CD"}},
		{"char mode splits words", "ABCD EF", 20, WrapChar, []string{"ABC", "D E", "F"}},
		{"none", "AAA BBB CCC", 20, WrapNone, []string{"AAA BBB CCC"}},
		{"glyph wider than line", "AB", 3, WrapWordChar, []string{"A", "B"}},
		{"zero width", "AB", 0, WrapWordChar, []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineTexts(f, tt.maxWidth, tt.text, tt.mode)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Lines(%q, %d, %v) = %q, want %q", tt.text, tt.maxWidth, tt.mode, got, tt.want)
			}
		})
	}
}

func TestLinesMetadata(t *testing.T) {
	f := &stubFont{}
	got := slices.Collect(Lines(f, 20, "AAA BBB\nCC", WrapWordChar))
	want := []Line{
		{Text: "AAA", Glyphs: 3, Width: 18, ParagraphEnd: false},
		{Text: "BBB", Glyphs: 3, Width: 18, ParagraphEnd: true},
		{Text: "CC", Glyphs: 2, Width: 12, ParagraphEnd: true},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Lines() = %+v, want %+v", got, want)
	}
}

func TestLinesNeverExceedWidth(t *testing.T) {
	f := &stubFont{}
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 6) +
		"\n0123456789 !?()[]{}/\\+-*" +
		"\n        indented"

	for _, maxWidth := range []int{6, 20, 33, 50, 97, 200, 1190} {
		for l := range Lines(f, maxWidth, text, WrapWordChar) {
			if l.Width > maxWidth && l.Glyphs > 1 {
				t.Errorf("maxWidth %d: line %q is %dpx wide", maxWidth, l.Text, l.Width)
			}
			if l.Width != Measure(f, l.Text) {
				t.Errorf("line %q: Width = %d, want %d", l.Text, l.Width, Measure(f, l.Text))
			}
			if l.Glyphs != utf8.RuneCountInString(l.Text) {
				t.Errorf("line %q: Glyphs = %d, want %d", l.Text, l.Glyphs, utf8.RuneCountInString(l.Text))
			}
			if strings.HasSuffix(l.Text, " ") {
				t.Errorf("line %q has trailing spaces", l.Text)
			}
		}
	}
}

func TestLinesDropsOverwideIndent(t *testing.T) {
	f := &stubFont{}
	tests := []struct {
		name     string
		maxWidth int
		text     string
		want     []string
	}{
		{"indent wider than line", 20, "        ab", []string{"ab"}},
		{"indent leaves no room", 20, "     ab", []string{"ab"}},
		{"indent fits", 20, "  ab", []string{"  ab"}},
		{"spaces only", 20, "          ", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for l := range Lines(f, tt.maxWidth, tt.text, WrapWordChar) {
				if l.Width > tt.maxWidth && l.Glyphs > 1 {
					t.Errorf("line %q is %dpx wide", l.Text, l.Width)
				}
				got = append(got, l.Text)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Lines(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestLinesKeepsAllWords(t *testing.T) {
	f := &stubFont{}
	text := "one two three four five six seven eight nine ten"
	var words []string
	for l := range Lines(f, 40, text, WrapWord) {
		words = append(words, strings.Fields(l.Text)...)
	}
	if got := strings.Join(words, " "); got != text {
		t.Errorf("rejoined words = %q, want %q", got, text)
	}
}

func TestLinesRestartable(t *testing.T) {
	f := &stubFont{}
	seq := Lines(f, 30, "lorem ipsum dolor sit amet", WrapWordChar)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second pass = %+v, want %+v", second, first)
	}
}

func TestWrapHandler(t *testing.T) {
	f := &stubFont{}
	var got []string
	var counts []int
	Wrap(f, 20, "AAA BBB CCC", WrapWordChar, func(line string, glyphs int) bool {
		got = append(got, line)
		counts = append(counts, glyphs)
		return true
	})
	if !slices.Equal(got, []string{"AAA", "BBB", "CCC"}) {
		t.Errorf("Wrap lines = %q", got)
	}
	if !slices.Equal(counts, []int{3, 3, 3}) {
		t.Errorf("Wrap glyph counts = %v", counts)
	}

	calls := 0
	Wrap(f, 20, "AAA BBB CCC", WrapWordChar, func(string, int) bool {
		calls++
		return false
	})
	if calls != 1 {
		t.Errorf("Wrap after stop: %d calls, want 1", calls)
	}
}
