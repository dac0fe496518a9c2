// Package logger exposes the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
)

// Log is safe to use before Init; it just logs at the default level.
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Init installs the JSON handler used for the life of the process.
func Init() {
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
