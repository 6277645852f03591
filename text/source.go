package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple faces at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// font feeds glyph coverage, parsed feeds metrics.
	font   *opentype.Font
	parsed ParsedFont

	name   string
	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
//
// Options can be used to configure caching and the metrics backend.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, ok := getParser(config.parserName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, config.parserName)
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, &ParserError{Parser: config.parserName, Err: err}
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		font:   f,
		parsed: parsed,
		config: config,
	}
	s.addr = s // Self-reference for copy detection
	s.name = extractFontName(parsed, f)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// defaultSource parses the embedded Go Regular font once.
var defaultSource = sync.OnceValues(func() (*FontSource, error) {
	return NewFontSource(goregular.TTF)
})

// DefaultSource returns the built-in proportional font (Go Regular).
// It is parsed on first use and shared afterwards.
func DefaultSource() (*FontSource, error) {
	return defaultSource()
}

// Face creates a Font at size pixels per em.
// Multiple faces can be created from the same FontSource.
//
// When the source has a cache limit, the face is wrapped in a CachedFont.
// Panics if s is nil (e.g. when the NewFontSource error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) (Font, error) {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSource?")
	}
	s.copyCheck()

	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: config.hinting.ximage(),
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	ff := newSourceFaceFont(face, s.parsed, size, config.hinting)
	if s.config.cacheLimit == 0 {
		return ff, nil
	}
	cf, err := NewCachedFont(ff, s.config.cacheLimit)
	if err != nil {
		return nil, err
	}
	return cf, nil
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parser returns the name of the metrics backend in use.
func (s *FontSource) Parser() string {
	s.copyCheck()
	return s.config.parserName
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name, falling back to the sfnt
// name table when the metrics backend does not expose one.
func extractFontName(parsed ParsedFont, f *opentype.Font) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if name := (&ximageParsedFont{font: f}).Name(); name != "" {
		return name
	}
	return "Unknown Font"
}
