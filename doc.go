// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package bootgfx renders proportional text for boot-time displays.
//
// # Overview
//
// A boot splash has no window system and often no heap to spare, so text
// is laid out in two passes. The first pass wraps the text to count its
// lines, which fixes the exact height of an 8-bit luminance buffer before
// any pixel memory is allocated. The second pass wraps it again, places
// every line (left, centered, right or justified) and blends glyph
// coverage into the buffer. The finished buffer is then copied into a
// linear framebuffer at a fixed origin.
//
// # Quick Start
//
//	fb, _ := bootgfx.NewFramebuffer(1280, 720, bootgfx.FormatXRGB8888)
//	r := bootgfx.NewRenderer(fb)
//
//	src, _ := text.DefaultSource()
//	face, _ := src.Face(16)
//
//	region, err := r.Render("Hello from the bootloader", 1200,
//	    bootgfx.Style{Margin: 5}, face, 3)
//
// # Architecture
//
// The module is organized into:
//   - core: coverage spans and their run-length encoding
//   - text: fonts, word wrap, line layout and line rendering
//   - bootgfx: text buffers, blending, framebuffers and the Renderer
//
// Every stage of the pipeline is an iter.Seq (lines, placements, spans),
// so each one can be inspected and tested on its own.
//
// # Blending
//
// Coverage is added to the buffer (PolarityLight) or subtracted from it
// (PolarityDark) with 8-bit arithmetic. Under the default BlendLegacy
// policy a sum above 255 becomes 0 and a difference wraps around, which is
// how existing boot screens have always looked. BlendClamp saturates
// instead.
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive debug
// records about line counts, buffer sizes and blit regions.
package bootgfx
