// Package logging attaches a zerolog logger to the context so every
// layer logs through the same rotating file.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dse/emacs-custom-faces-file/internal/storage"
)

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 30
)

// Log levels - aliases for zerolog levels
const (
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
	TraceLevel = zerolog.TraceLevel
)

// Config defines the configuration for logger creation
type Config struct {
	Writer     io.Writer
	Path       string
	Level      zerolog.Level
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

// New creates a new context with a logger attached.
// For production: provide fs, leave Writer nil for file logging.
// For tests: provide a custom Writer (like strings.Builder) for in-memory logging.
func New(ctx context.Context, fs afero.Fs, config Config) (context.Context, error) {
	var writer io.Writer

	if config.Writer != nil {
		writer = config.Writer
	} else {
		if fs == nil {
			return nil, errors.New("filesystem required when no writer provided")
		}

		logFile := config.Path
		if logFile == "" {
			storageManager := storage.New(fs)
			path, err := storageManager.GetLogPath()
			if err != nil {
				return nil, fmt.Errorf("failed to get log path: %w", err)
			}
			logFile = path
		}

		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    orDefault(config.MaxSize, defaultMaxSizeMB),
			MaxBackups: orDefault(config.MaxBackups, defaultMaxBackups),
			MaxAge:     orDefault(config.MaxAge, defaultMaxAgeDays),
		}
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Logger().
		Level(config.Level)

	return logger.WithContext(ctx), nil
}

// ParseLevel converts a config level name to a zerolog level,
// defaulting to info for unknown or empty names.
func ParseLevel(name string) zerolog.Level {
	if name == "" {
		return InfoLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return InfoLevel
	}
	return level
}

// Get retrieves the logger from the provided context
// Returns the logger associated with the context, or a disabled logger if none exists
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

func orDefault(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
