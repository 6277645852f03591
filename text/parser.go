package text

import "sync"

// FontParser is an interface for font metrics backends.
// This abstraction allows swapping the library that reads advances and
// vertical metrics while glyph coverage keeps coming from
// golang.org/x/image/font/opentype.
//
// The default implementation uses golang.org/x/image/font/sfnt.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// This interface abstracts the underlying font representation.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// HasGlyph reports whether the font maps r to a glyph other than .notdef.
	HasGlyph(r rune) bool

	// GlyphAdvance returns the advance width of r in pixels at ppem.
	// Missing runes report the advance of the .notdef glyph.
	GlyphAdvance(r rune, ppem float64, h Hinting) float64

	// Metrics returns the font metrics at ppem.
	Metrics(ppem float64, h Hinting) FontMetrics
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

var (
	parserMu sync.RWMutex

	// parserRegistry holds registered font parsers.
	parserRegistry = map[string]FontParser{
		"ximage": &ximageParser{},
		"gotext": &gotextParser{},
	}
)

// RegisterParser registers a custom font parser.
// This allows users to provide their own metrics implementation.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser registered under name.
func getParser(name string) (FontParser, bool) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	return p, ok
}
