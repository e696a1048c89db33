package logger

import (
	"io"
	"log/slog"
	"os"
)

// NewConsoleLogger returns a text logger on stderr; stdout carries command results.
func NewConsoleLogger(level string) Logger {
	return newConsoleLogger(os.Stderr, level)
}

func newConsoleLogger(w io.Writer, level string) Logger {
	return newSlogLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}
