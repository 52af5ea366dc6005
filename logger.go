package vglite

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. It reports every level as disabled, so
// log calls return before building attributes.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func silentLogger() *slog.Logger { return slog.New(discardHandler{}) }

// pkgLogger backs Logger. Buffers, decoders and renderers log through it;
// a Context built WithLogger logs its own lifecycle elsewhere.
var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(silentLogger())
}

// SetLogger routes vglite diagnostics to l. A nil l discards them again,
// which is also the state before the first call.
//
// Records emitted:
//   - [slog.LevelDebug]: buffer allocations, ramp widths, skipped or truncated
//     path opcodes, renderer syncs
//   - [slog.LevelInfo]: Context creation and close
//   - [slog.LevelWarn]: undecodable pixel formats, rejected color ramps
//
// For example, to trace a frame:
//
//	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	vglite.SetLogger(slog.New(h))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	pkgLogger.Store(l)
}

// Logger returns the logger installed by SetLogger. It may be called from
// any goroutine.
func Logger() *slog.Logger {
	return pkgLogger.Load()
}
