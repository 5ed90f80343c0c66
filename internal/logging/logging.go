// Package logging constructs the application logger. Console output is the
// default; set LOG_FORMAT=json for structured output suitable for collection.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func New(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = os.Stderr
	if format != "json" {
		w = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
