package polydraw

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the package-wide default logger, used by any
// Rasterizer that hasn't had SetLogger called on it directly. Accessed
// atomically so SetLogger can be called concurrently with rendering on
// any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the package-wide default logger. By default
// polydraw produces no log output. Pass nil to restore silence.
//
// Log levels used by polydraw:
//   - [slog.LevelDebug]: per-scanline sweep diagnostics (active-set sizes,
//     stripe fast-path hits)
//   - [slog.LevelWarn]: recovered debug-check failures when built without
//     the release tag
//
// Example:
//
//	// Enable debug-level logging to stderr:
//	polydraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// SetLogger overrides the logger used by r alone, leaving the package-wide
// default untouched. Pass nil to fall back to the package-wide default.
func (r *Rasterizer) SetLogger(l *slog.Logger) {
	r.logger = l
}

// log returns r's effective logger: its own if set via SetLogger,
// otherwise the package-wide default.
func (r *Rasterizer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return loggerPtr.Load()
}
