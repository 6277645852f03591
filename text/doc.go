// Package text provides the font and layout half of the boot text pipeline.
//
// The pipeline is split into small, lazy stages so each one can be tested
// on its own:
//
//   - Font: capability interface (metrics, advances, glyph spans)
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF files)
//   - ScaledFont / CachedFont: decorators over any Font
//   - MultiFont / FilteredFont: per-rune fallback between fonts
//   - Lines / Layout: greedy word wrapping and vertical placement
//   - Place / RenderLine: per-line alignment and justification
//
// # Example usage
//
//	source, err := text.DefaultSource()
//	if err != nil {
//	    return err
//	}
//	face, err := source.Face(16)
//	if err != nil {
//	    return err
//	}
//	font := text.Resolve(face, 3)
//
//	n := text.CountLines(font, 1190, msg, text.WrapWordChar)
//	for pl := range text.Layout(font, 1190, msg, 2, text.WrapWordChar) {
//	    for span := range text.RenderLine(font, 5, pl.Y, style, pl.Line) {
//	        // blend span into a buffer sized from n
//	    }
//	}
//
// # Pluggable Metrics Backend
//
// Glyph coverage always comes from golang.org/x/image/font/opentype.
// Advances and vertical metrics go through the FontParser interface:
// "ximage" (hinted, default) or "gotext" (github.com/go-text/typesetting,
// design-unit hmtx/hhea values scaled to the face size).
//
//	source, err := text.NewFontSource(data, text.WithParser("gotext"))
package text
