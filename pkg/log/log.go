package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger for interactive tooling around expression graphs.
// Output is human-readable on stdout; setting EXPRS_LOG_JSON switches to
// raw JSON on stderr for piping into log collectors.
func New() *zerolog.Logger {
	var output io.Writer
	if os.Getenv("EXPRS_LOG_JSON") != "" {
		output = os.Stderr
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02T15:04:05.999Z07:00"}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.New(output).With().Timestamp().Logger()
	return &logger
}
