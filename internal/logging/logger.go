// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const service = "hilom"

// Init builds the logger for level, installs it as log.Logger and returns it.
// With console set the output is human readable; otherwise it is JSON with
// timestamp and caller.
func Init(console bool, level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if console {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}).With().
			Timestamp().
			Str("service", service).
			Logger()
	} else {
		log.Logger = zerolog.New(w).
			With().
			Timestamp().
			Caller().
			Str("service", service).
			Logger()
	}

	return log.Logger
}

// Component returns a child of the global logger tagged with name.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
