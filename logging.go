package jsondoc

import (
	"context"
	"log/slog"
)

func defaultLogger() *slog.Logger {
	return slog.Default().With("component", "jsondoc")
}

// sanitizePath shortens long addresses before they reach log output
func sanitizePath(path string) string {
	if len(path) > 100 {
		return path[:100] + "...[truncated]"
	}
	return path
}

// logError logs a failed operation with structured attributes
func logError(logger *slog.Logger, operation, path string, err error) {
	if logger == nil || err == nil {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelWarn, "JSON document operation failed",
		slog.String("operation", operation),
		slog.String("path", sanitizePath(path)),
		slog.String("error", err.Error()),
		slog.String("error_type", errorType(err)),
	)
}

// logDebug logs a completed operation at debug level
func logDebug(logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
