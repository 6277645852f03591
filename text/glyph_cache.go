package text

import (
	"fmt"
	"iter"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gogpu/bootgfx/core"
)

// CachedFont memoizes the spans of a Font's glyphs.
//
// Glyphs are rasterized once at the origin and translated on every later
// request, which turns a boot screen full of repeated letters into a
// handful of mask renders. Metrics and advances pass through untouched.
//
// CachedFont is safe for concurrent use.
type CachedFont struct {
	Font
	glyphs *lru.Cache[rune, []core.Span]
}

// NewCachedFont wraps f with an LRU cache holding up to size glyphs.
func NewCachedFont(f Font, size int) (*CachedFont, error) {
	c, err := lru.New[rune, []core.Span](size)
	if err != nil {
		return nil, fmt.Errorf("text: glyph cache: %w", err)
	}
	return &CachedFont{Font: f, glyphs: c}, nil
}

// Rasterize implements Font.Rasterize.
func (f *CachedFont) Rasterize(r rune, x, y int) iter.Seq[core.Span] {
	return func(yield func(core.Span) bool) {
		spans, ok := f.glyphs.Get(r)
		if !ok {
			spans = slices.Collect(f.Font.Rasterize(r, 0, 0))
			f.glyphs.Add(r, spans)
		}
		for _, s := range spans {
			if !yield(s.Translate(x, y)) {
				return
			}
		}
	}
}

// HasGlyph implements GlyphChecker.HasGlyph.
func (f *CachedFont) HasGlyph(r rune) bool {
	return HasGlyph(f.Font, r)
}

// Len returns the number of cached glyphs.
func (f *CachedFont) Len() int {
	return f.glyphs.Len()
}

// Purge drops every cached glyph.
func (f *CachedFont) Purge() {
	f.glyphs.Purge()
}
