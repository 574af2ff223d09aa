package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a zerolog logger writing to w at the given level.
// An unparsable level falls back to info.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
