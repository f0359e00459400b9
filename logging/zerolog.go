package logging

import (
	"encoding/json"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a console logger with timestamps and caller info. Unknown levels fall back to error.
func NewLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).Level(lvl).With().Timestamp().Caller().Logger()
}

// NewZerologResultsLogger creates a results logger that creates log messages like the ones written to the reject log file, but just outputs them to Zerolog.
func NewZerologResultsLogger(logger zerolog.Logger) ResultsLogger {
	return &zerologResultsLogger{logger: logger}
}

type zerologResultsLogger struct {
	logger zerolog.Logger
}

func (l *zerologResultsLogger) DecodeRejected(r Rejection) {
	e := newRejectionLogEntry(r)

	bb, err := json.Marshal(e)
	if err != nil {
		l.logger.Error().Err(err).Msg("Error while marshaling JSON results log")
		return
	}

	l.logger.Warn().
		Str("requestId", r.RequestID).
		Str("operation", r.Operation).
		Int("position", e.Details.Position).
		RawJSON("entry", bb).
		Msg("Rejected malformed input")
}
