// cmd/archstage/log.go
package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// LogConfig captures options for the CLI logger.
type LogConfig struct {
	Level   zerolog.Level
	Output  io.Writer // defaults to os.Stderr
	NoColor bool
}

// NewLogger returns a human-readable logger for terminal use.
func NewLogger(cfg LogConfig) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: cfg.NoColor}
	return zerolog.New(writer).Level(cfg.Level).With().
		Timestamp().
		Str("app", AppName).
		Logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(base zerolog.Logger, component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}
