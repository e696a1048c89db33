package logger

import (
	"log/slog"

	"github.com/MGTheTrain/textvault/internal/pkg/config"

	"github.com/natefinch/lumberjack"
)

// NewFileLogger returns a JSON logger writing to a file rotated by lumberjack.
// settings must already be validated.
func NewFileLogger(settings *config.LoggerSettings) Logger {
	writer := &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   true,
	}
	return newSlogLogger(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(settings.LogLevel)}))
}
