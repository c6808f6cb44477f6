package logger

import (
	"io"
	"matchsim/internal/config"
	"os"

	"github.com/rs/zerolog"
)

// New writes to stderr so the match transcript on stdout stays readable.
func New(cfg *config.Config) zerolog.Logger {
	return NewWithWriter(os.Stderr, ParseLevel(cfg.LogLevel))
}

func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger.Level(level)
}

// ParseLevel falls back to warn for empty or unknown levels.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.WarnLevel
	}
	return lvl
}
