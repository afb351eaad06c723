package userdata

import (
	"log/slog"
	"os"
)

// NewLogger returns a configured slog.Logger for the requested format.
func NewLogger(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
