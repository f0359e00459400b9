package encoding

import (
	"strings"
)

type escapeState int

const (
	_ escapeState = iota
	notInEscape
	char1InEscape // This means we've have so far seen something like %
	char2InEscape // This means we've have so far seen something like %2
)

// IsValidURLEncoding checks whether the given string contains all valid URL-encoded escapes.
// It does not check that the escaped bytes form valid UTF-8.
func IsValidURLEncoding(content string) bool {
	state := notInEscape

	for i := 0; i < len(content); i++ {
		c := content[i]
		switch state {
		case notInEscape:
			if c == '%' {
				state = char1InEscape
			}
		case char1InEscape:
			if !isHexChar(c) {
				return false
			}
			state = char2InEscape
		case char2InEscape:
			if !isHexChar(c) {
				return false
			}
			state = notInEscape
		}
	}

	return state == notInEscape
}

// DecodeLenient attempts to URL-unescape, but escapes that could not be decoded are left as is and invalid UTF-8 is passed through. It never fails.
// This matches how ModSecurity unescapes request data.
func (c *Codec) DecodeLenient(s string) string {
	if !strings.ContainsRune(s, '%') && !(c.opts.PlusToSpace && strings.ContainsRune(s, '+')) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))

	state := notInEscape
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch state {
		case notInEscape:
			if b == '%' {
				state = char1InEscape
			} else if b == '+' && c.opts.PlusToSpace {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte(b)
			}
		case char1InEscape:
			if isHexChar(b) {
				state = char2InEscape
			} else {
				// Not an escape, so keep the bytes. The current byte may itself start a new escape.
				sb.WriteByte('%')
				state = notInEscape
				i--
			}
		case char2InEscape:
			if isHexChar(b) {
				sb.WriteByte(unhex(s[i-1])<<4 | unhex(b))
			} else {
				sb.WriteByte('%')
				sb.WriteByte(s[i-1])
				i--
			}
			state = notInEscape
		}
	}

	// Did the string end with an unfinished escape sequence?
	switch state {
	case char1InEscape:
		sb.WriteByte('%')
	case char2InEscape:
		sb.WriteByte('%')
		sb.WriteByte(s[len(s)-1])
	}

	return sb.String()
}
