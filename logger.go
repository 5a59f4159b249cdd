package sunshade

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a host callback is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for sunshade and its sub-packages.
// By default sunshade produces no log output. Pass nil to restore the
// silent default. The logger is also handed to gg, so rendering
// diagnostics from preview and panel go to the same place.
//
// Log levels used by sunshade:
//   - [slog.LevelDebug]: shadow geometry of every recomputation
//   - [slog.LevelInfo]: lifecycle events (light created, target tracked, plugin closed)
//   - [slog.LevelWarn]: non-fatal issues (light already removed, tracked target gone)
//
// Example:
//
//	sunshade.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger used by sunshade.
// Sub-packages such as preview/ call this to share the same
// configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
