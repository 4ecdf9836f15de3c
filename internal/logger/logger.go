package logger

import (
	"io"
	"log/slog"
)

// InitJSONLogger configures and sets the default slog logger to write JSON to w.
// Debug output is enabled when debug is true.
func InitJSONLogger(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
