package config

import (
	"io"
	"log/slog"
)

// SetupLogger returns a text logger at debug level for local and dev, a JSON logger at info level otherwise.
func SetupLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case EnvLocal, EnvDev:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}
