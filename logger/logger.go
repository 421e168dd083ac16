// Package logger holds one process-wide zerolog.Logger that the horizon
// driver and bound controller both pull from instead of building
// their own. Callers that need something other than the timestamped
// console writer set at init time can swap it with Set, SetOutput, or
// Disable.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	log = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		log = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	log = log.Output(w)
}

// Set lets a caller override the global logger entirely.
func Set(l zerolog.Logger) {
	log = l
}

// Disable silences all logging.
func Disable() {
	log = zerolog.Nop()
}

// Logger returns the shared logger.
func Logger() zerolog.Logger {
	return log
}
