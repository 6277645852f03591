// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bootgfx

import (
	"fmt"
	"image"

	"github.com/gogpu/bootgfx/text"
)

// Renderer draws text blocks into one framebuffer.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	fb   *Framebuffer
	opts rendererOptions
}

// NewRenderer creates a Renderer writing to fb.
// Panics if fb is nil.
func NewRenderer(fb *Framebuffer, opts ...RendererOption) *Renderer {
	if fb == nil {
		panic("bootgfx: NewRenderer called with a nil Framebuffer")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{fb: fb, opts: o}
}

// Framebuffer returns the framebuffer the renderer writes to.
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.fb
}

// Render lays out s in a block width pixels wide, rasterizes it with f
// magnified by scale and blits the result at the renderer's origin.
// It returns the framebuffer region that was written.
func (r *Renderer) Render(s string, width int, style Style, f text.Font, scale int) (image.Rectangle, error) {
	buf, err := r.Rasterize(s, width, style, f, scale)
	if err != nil {
		return image.Rectangle{}, err
	}

	o := r.opts.origin
	if err := Blit(buf, r.fb, o.X, o.Y, r.opts.blitScale); err != nil {
		return image.Rectangle{}, err
	}
	region := BlitRegion(buf, o.X, o.Y, r.opts.blitScale)
	Logger().Debug("bootgfx: blit", "region", region, "format", r.fb.format)
	return region, nil
}

// RenderBytes is Render for text in the renderer's single-byte charset.
func (r *Renderer) RenderBytes(b []byte, width int, style Style, f text.Font, scale int) (image.Rectangle, error) {
	s, err := r.opts.charset.Decode(b)
	if err != nil {
		return image.Rectangle{}, err
	}
	return r.Render(s, width, style, f, scale)
}

// Rasterize runs both layout passes and returns the filled text buffer
// without touching the framebuffer.
//
// The sizing pass counts the wrapped lines of s and fixes the buffer
// height at lines × line height + Padding before anything is allocated.
// The rendering pass wraps s again, places line i at
// TopOffset + i × line height and blends every glyph span into the buffer.
// Lines are wrapped to width - 2×Margin and start at x = Margin.
func (r *Renderer) Rasterize(s string, width int, style Style, f text.Font, scale int) (*TextBuffer, error) {
	if f == nil {
		return nil, ErrMissingFont
	}
	if style.Margin < 0 {
		return nil, &DimensionError{Width: width, Reason: fmt.Sprintf("negative margin %d", style.Margin)}
	}
	if width <= 0 || style.avail(width) <= 0 {
		return nil, &DimensionError{Width: width, Reason: fmt.Sprintf("no room for text with margin %d", style.Margin)}
	}

	font := text.Resolve(f, scale)
	avail := style.avail(width)
	m := font.Metrics()

	// Pass 1: size.
	lines := text.CountLines(font, avail, s, r.opts.wrap)
	height, ok := bufferHeight(lines, m.LineHeight)
	if !ok {
		return nil, fmt.Errorf("%w: %d lines of %dpx", ErrAllocation, lines, m.LineHeight)
	}
	buf, err := allocTextBuffer(width, height, r.opts.maxBufferBytes, r.opts.background)
	if err != nil {
		return nil, err
	}

	// Pass 2: place and blend.
	ls := style.lineStyle(width)
	placed, written, discarded := 0, 0, 0
	for pl := range text.Layout(font, avail, s, TopOffset, r.opts.wrap) {
		placed++
		for span := range text.RenderLine(font, style.Margin, pl.Y, ls, pl.Line) {
			if buf.Composite(span, style.Polarity, r.opts.blend) {
				written++
			} else {
				discarded++
			}
		}
	}

	log := Logger()
	if placed != lines {
		log.Warn("bootgfx: layout mismatch", "counted", lines, "placed", placed)
		return nil, fmt.Errorf("%w: counted %d lines, placed %d", ErrLayoutMismatch, lines, placed)
	}
	if discarded > 0 {
		log.Warn("bootgfx: spans discarded at buffer edges", "discarded", discarded, "written", written)
	}
	log.Debug("bootgfx: text rasterized",
		"lines", lines,
		"lineHeight", m.LineHeight,
		"size", image.Pt(width, height),
		"spans", written)
	return buf, nil
}
