package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
//
// Advances come straight from the hmtx table and vertical metrics from
// hhea/OS2, scaled linearly to the face size. No hinting is applied, so
// widths are stable across sizes, which keeps wrapped layouts from shifting
// when the boot scale changes.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	upem := float64(face.Upem())
	if upem == 0 {
		upem = 1000
	}
	return &gotextParsedFont{face: face, upem: upem}, nil
}

// gotextParsedFont implements ParsedFont over a go-text font.Face.
type gotextParsedFont struct {
	// mu guards face: font.Face keeps glyph caches and is NOT safe for
	// concurrent use.
	mu   sync.Mutex
	face *font.Face
	upem float64
}

// Name implements ParsedFont.Name. The family name is read from the sfnt
// name table by FontSource, go-text is only used for metrics.
func (f *gotextParsedFont) Name() string {
	return ""
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.upem)
}

// HasGlyph implements ParsedFont.HasGlyph.
func (f *gotextParsedFont) HasGlyph(r rune) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.face.NominalGlyph(r)
	return ok
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *gotextParsedFont) GlyphAdvance(r rune, ppem float64, _ Hinting) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		gid = 0
	}
	return float64(f.face.HorizontalAdvance(gid)) * ppem / f.upem
}

// Metrics implements ParsedFont.Metrics.
func (f *gotextParsedFont) Metrics(ppem float64, _ Hinting) FontMetrics {
	f.mu.Lock()
	defer f.mu.Unlock()

	ext, ok := f.face.FontHExtents()
	if !ok {
		return FontMetrics{}
	}

	scale := ppem / f.upem
	return FontMetrics{
		Ascent:  float64(ext.Ascender) * scale,
		Descent: -float64(ext.Descender) * scale,
		LineGap: max(float64(ext.LineGap)*scale, 0),
	}
}
