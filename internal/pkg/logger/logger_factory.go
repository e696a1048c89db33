package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/MGTheTrain/textvault/internal/pkg/config"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// InitLogger builds the process-wide logger on the first call.
// Later calls return the first call's result and ignore settings.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = fromSettings(settings)
	})
	return loggerErr
}

// GetLogger returns the logger built by InitLogger.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, errors.New("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

func fromSettings(settings *config.LoggerSettings) (Logger, error) {
	if settings == nil {
		return nil, errors.New("logger settings cannot be nil")
	}
	// Validate rejects unknown types and incomplete file settings
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	if settings.LogType == config.LogTypeFile {
		return NewFileLogger(settings), nil
	}
	return NewConsoleLogger(settings.LogLevel), nil
}

// parseLevel maps a configured level onto slog; critical has no slog counterpart and logs as error.
func parseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError, config.LogLevelCritical:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
