package searchfield

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/go-drift/searchfield/pkg/icons"
	"github.com/go-drift/searchfield/pkg/task"
)

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for searchfield and the task and icons
// packages it drives. By default nothing is logged. Pass nil to restore
// the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: ignored presses, stale completions, phase changes
//   - [slog.LevelWarn]: dropped completion signals
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	task.SetLogger(l)
	icons.SetLogger(l)
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
