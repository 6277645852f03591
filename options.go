package bootgfx

import (
	"image"

	"github.com/gogpu/bootgfx/text"
)

// DefaultMaxBufferBytes is the default upper bound for one text buffer.
const DefaultMaxBufferBytes = 16 << 20

// RendererOption configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Defaults: blit at (10, 10), legacy blending
//	r := bootgfx.NewRenderer(fb)
//
//	// Centered splash with saturating blend
//	r := bootgfx.NewRenderer(fb,
//	    bootgfx.WithOrigin(40, 300),
//	    bootgfx.WithBlendPolicy(bootgfx.BlendClamp))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	origin         image.Point
	blitScale      int
	blend          BlendPolicy
	wrap           text.WrapMode
	maxBufferBytes int
	background     uint8
	charset        Charset
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		origin:         image.Pt(10, 10),
		blitScale:      1,
		blend:          BlendLegacy,
		wrap:           text.WrapWordChar,
		maxBufferBytes: DefaultMaxBufferBytes,
		charset:        CharsetLatin1,
	}
}

// WithOrigin sets the framebuffer position the text buffer is blitted to.
func WithOrigin(x, y int) RendererOption {
	return func(o *rendererOptions) {
		o.origin = image.Pt(x, y)
	}
}

// WithBlitScale replicates every buffer sample into an n×n block when
// blitting. Values below 1 are rejected by Blit.
func WithBlitScale(n int) RendererOption {
	return func(o *rendererOptions) {
		o.blitScale = n
	}
}

// WithBlendPolicy selects the coverage overflow behavior.
func WithBlendPolicy(b BlendPolicy) RendererOption {
	return func(o *rendererOptions) {
		o.blend = b
	}
}

// WithWrapMode selects how lines are broken.
func WithWrapMode(m text.WrapMode) RendererOption {
	return func(o *rendererOptions) {
		o.wrap = m
	}
}

// WithMaxBufferBytes limits the size of a single text buffer.
// Non-positive values restore DefaultMaxBufferBytes.
func WithMaxBufferBytes(n int) RendererOption {
	return func(o *rendererOptions) {
		if n <= 0 {
			n = DefaultMaxBufferBytes
		}
		o.maxBufferBytes = n
	}
}

// WithBackground sets the value new text buffers are filled with.
func WithBackground(v uint8) RendererOption {
	return func(o *rendererOptions) {
		o.background = v
	}
}

// WithCharset selects the single-byte character set RenderBytes decodes.
func WithCharset(c Charset) RendererOption {
	return func(o *rendererOptions) {
		o.charset = c
	}
}
