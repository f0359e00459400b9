package logging

import (
	"errors"

	"urlencoder/encoding"
)

// ResultsLogger records inputs the codec refused to decode, for whoever operates the service.
type ResultsLogger interface {
	DecodeRejected(r Rejection)
}

// Rejection describes a single refused decode request.
type Rejection struct {
	RequestID string
	Transport string
	Operation string
	Err       error
}

type rejectionLogEntry struct {
	Time      string                   `json:"time,omitempty"`
	RequestID string                   `json:"requestId"`
	Transport string                   `json:"transport"`
	Operation string                   `json:"operation"`
	Message   string                   `json:"message"`
	Details   rejectionLogDetailsEntry `json:"details"`
}

type rejectionLogDetailsEntry struct {
	Position int    `json:"position"`
	Segment  string `json:"segment"`
	Reason   string `json:"reason"`
}

func newRejectionLogEntry(r Rejection) *rejectionLogEntry {
	e := &rejectionLogEntry{
		RequestID: r.RequestID,
		Transport: r.Transport,
		Operation: r.Operation,
		Message:   "Malformed encoding",
		Details:   rejectionLogDetailsEntry{Position: -1},
	}

	if r.Err == nil {
		return e
	}

	e.Details.Reason = r.Err.Error()
	var merr *encoding.MalformedEncodingError
	if errors.As(r.Err, &merr) {
		e.Details.Position = merr.Pos
		e.Details.Segment = merr.Segment
		e.Details.Reason = merr.Reason.Error()
	}

	return e
}
