package rom

import (
	"context"
	"log/slog"
)

// LevelTrace is the slog level of per-message traces.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace logs at LevelTrace on the default logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
