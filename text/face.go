package text

import (
	"image"
	"iter"
	"slices"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/bootgfx/core"
)

// FaceFont adapts a golang.org/x/image font.Face to the Font interface.
//
// Glyph masks come from font.Face.Glyph and are run-length encoded into
// spans. Faces from golang.org/x/image/font/opentype reuse one mask buffer
// between calls, so FaceFont serializes rasterization and copies the spans
// out before yielding them.
//
// FaceFont is safe for concurrent use.
type FaceFont struct {
	mu      sync.Mutex
	face    font.Face
	metrics Metrics

	// advance and hasGlyph override the face when a metrics backend
	// is in use.
	advance  func(r rune) int
	hasGlyph func(r rune) bool
}

// NewFaceFont wraps face. Metrics are taken from face.Metrics(), rounded up
// to whole pixels.
func NewFaceFont(face font.Face) *FaceFont {
	m := face.Metrics()
	fm := FontMetrics{
		Ascent:  fixedToFloat64(m.Ascent),
		Descent: fixedToFloat64(m.Descent),
		LineGap: max(fixedToFloat64(m.Height-m.Ascent-m.Descent), 0),
	}
	return &FaceFont{
		face:    face,
		metrics: fm.pixels(),
	}
}

// newSourceFaceFont builds a FaceFont whose metrics come from parsed.
func newSourceFaceFont(face font.Face, parsed ParsedFont, ppem float64, h Hinting) *FaceFont {
	f := &FaceFont{
		face:    face,
		metrics: parsed.Metrics(ppem, h).pixels(),
	}
	f.advance = func(r rune) int {
		return int(parsed.GlyphAdvance(r, ppem, h) + 0.5)
	}
	f.hasGlyph = parsed.HasGlyph
	return f
}

// FixedFont returns the 7x13 bitmap font from golang.org/x/image/font/basicfont.
// It needs no parsing and is always available, which makes it the fallback
// when no font file can be read at boot.
func FixedFont() *FaceFont {
	return NewFaceFont(basicfont.Face7x13)
}

// Metrics implements Font.Metrics.
func (f *FaceFont) Metrics() Metrics {
	return f.metrics
}

// Advance implements Font.Advance.
func (f *FaceFont) Advance(r rune) int {
	if f.advance != nil {
		return f.advance(r)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// Missing runes still report the advance of the fallback glyph.
	adv, _ := f.face.GlyphAdvance(r)
	return adv.Round()
}

// HasGlyph implements GlyphChecker.HasGlyph.
func (f *FaceFont) HasGlyph(r rune) bool {
	if f.hasGlyph != nil {
		return f.hasGlyph(r)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.face.GlyphAdvance(r)
	return ok
}

// Rasterize implements Font.Rasterize.
func (f *FaceFont) Rasterize(r rune, x, y int) iter.Seq[core.Span] {
	return func(yield func(core.Span) bool) {
		for _, s := range f.glyphSpans(r, x, y) {
			if !yield(s) {
				return
			}
		}
	}
}

// glyphSpans renders r and returns a private copy of its spans.
func (f *FaceFont) glyphSpans(r rune, x, y int) []core.Span {
	f.mu.Lock()
	defer f.mu.Unlock()

	dot := fixed.P(x, y+f.metrics.Baseline)
	dr, mask, maskp, _, ok := f.face.Glyph(dot, r)
	if !ok || mask == nil || dr.Empty() {
		return nil
	}

	src := image.Rectangle{Min: maskp, Max: maskp.Add(dr.Size())}
	return slices.Collect(core.ImageSpans(mask, src, dr.Min.Sub(maskp)))
}
