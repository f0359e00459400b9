package logging

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// FileResultsLogger writes one JSON line per rejected input to a log file.
type FileResultsLogger struct {
	file         LogFile
	logger       zerolog.Logger
	writelogline chan []byte
	writeDone    chan bool
	now          func() time.Time
}

// NewFileResultsLogger opens (or creates) the log file at path and starts the writer goroutine.
func NewFileResultsLogger(fileSystem LogFileSystem, path string, logger zerolog.Logger) (*FileResultsLogger, error) {
	r := &FileResultsLogger{logger: logger, now: time.Now}

	err := fileSystem.MkDir(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to create the directory while initializing")
		return nil, err
	}

	r.file, err = fileSystem.Open(path)
	if err != nil {
		logger.Error().Err(err).Str("file", path).Msg("Failed to open the file at initiation")
		return nil, err
	}

	r.writelogline = make(chan []byte)
	r.writeDone = make(chan bool)
	go func() {
		for v := range r.writelogline {
			if err := r.file.Append(append(v, '\n')); err != nil {
				r.logger.Error().Err(err).Str("file", path).Msg("Failed to append to the results log")
			}
			r.writeDone <- true
		}
	}()

	return r, nil
}

// DecodeRejected appends the rejection to the log file. It returns once the line was written.
func (l *FileResultsLogger) DecodeRejected(r Rejection) {
	e := newRejectionLogEntry(r)
	e.Time = l.now().UTC().Format(time.RFC3339)

	bb, err := json.Marshal(e)
	if err != nil {
		l.logger.Error().Err(err).Msg("Error while marshaling JSON results log")
		return
	}

	l.writelogline <- bb
	<-l.writeDone
}

// Close stops the writer goroutine and closes the file. The logger must not be used afterwards.
func (l *FileResultsLogger) Close() error {
	close(l.writelogline)
	return l.file.Close()
}

type multiResultsLogger []ResultsLogger

// NewMultiResultsLogger sends every rejection to all of the given loggers.
func NewMultiResultsLogger(loggers ...ResultsLogger) ResultsLogger {
	return multiResultsLogger(loggers)
}

func (m multiResultsLogger) DecodeRejected(r Rejection) {
	for _, l := range m {
		l.DecodeRejected(r)
	}
}
