package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New — в development человекочитаемый вывод, иначе JSON.
func New(env string) zerolog.Logger {
	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
