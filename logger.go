package bootgfx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record; Enabled is false so Renderer never builds
// the attributes of a debug event nobody asked for.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var (
	silent = slog.New(discard{})
	active atomic.Pointer[slog.Logger]
)

// SetLogger routes the renderer's diagnostics to l. A nil l silences them
// again, which is also the state a process starts in.
//
// Events:
//   - debug "bootgfx: text rasterized": line count, line height, buffer size
//   - debug "bootgfx: blit": framebuffer region and pixel format
//   - warn "bootgfx: spans discarded at buffer edges": discarded/written counts
//   - warn "bootgfx: layout mismatch": the two layout passes disagreed
//
// A splash binary usually wants only the warnings:
//
//	bootgfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelWarn,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	if l := active.Load(); l != nil {
		return l
	}
	return silent
}
