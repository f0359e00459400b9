package encoding

import (
	"errors"
	"fmt"
)

// ErrTruncatedEscape is the reason for a '%' not followed by two more characters.
var ErrTruncatedEscape = errors.New("truncated escape sequence")

// ErrInvalidEscape is the reason for a '%' followed by something other than two hex digits.
var ErrInvalidEscape = errors.New("invalid characters in escape sequence")

// ErrInvalidUTF8 is the reason for decoded bytes that do not form valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("decoded bytes are not valid UTF-8")

// maxSegmentLen is how many bytes of the input are quoted in a MalformedEncodingError.
const maxSegmentLen = 12

// MalformedEncodingError is returned when a string cannot be decoded.
type MalformedEncodingError struct {
	// Pos is the byte offset in the encoded input where the malformed segment starts.
	Pos int

	// Segment is the input starting at Pos, cut short for long inputs.
	Segment string

	// Reason is one of ErrTruncatedEscape, ErrInvalidEscape or ErrInvalidUTF8.
	Reason error
}

func newMalformed(s string, pos int, reason error) *MalformedEncodingError {
	end := pos + maxSegmentLen
	if end > len(s) {
		end = len(s)
	}
	return &MalformedEncodingError{Pos: pos, Segment: s[pos:end], Reason: reason}
}

func (e *MalformedEncodingError) Error() string {
	return fmt.Sprintf("malformed encoding at position %d (%q): %v", e.Pos, e.Segment, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidUTF8) and friends.
func (e *MalformedEncodingError) Unwrap() error {
	return e.Reason
}
