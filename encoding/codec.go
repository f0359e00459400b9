package encoding

import (
	"strings"
	"unicode/utf8"
)

const upperHex = "0123456789ABCDEF"

// Options controls how a Codec classifies characters.
type Options struct {
	// Allow lists additional ASCII characters that Encode leaves intact. Non-ASCII characters in Allow are ignored.
	Allow string

	// SpaceToPlus makes Encode write a space as '+' instead of "%20".
	SpaceToPlus bool

	// PlusToSpace makes Decode turn '+' into a space. Without it '+' is kept literally.
	PlusToSpace bool

	// EscapeTilde removes '~' from the unreserved set, so it is written as "%7E".
	EscapeTilde bool
}

// Codec percent-encodes and decodes URL components. A Codec is immutable and safe for concurrent use.
type Codec struct {
	opts       Options
	unreserved [256]bool
}

// Query is the codec used for query components and form values: space and '+' map to each other and '~' is unreserved.
var Query = NewCodec(Options{SpaceToPlus: true, PlusToSpace: true})

// Component escapes everything outside ALPHA, DIGIT and "-._", including space ("%20") and '~' ("%7E"). '+' is not special when decoding.
var Component = NewCodec(Options{EscapeTilde: true})

// NewCodec creates a codec with a precomputed character table.
func NewCodec(opts Options) *Codec {
	c := &Codec{opts: opts}
	for b := 'a'; b <= 'z'; b++ {
		c.unreserved[b] = true
	}
	for b := 'A'; b <= 'Z'; b++ {
		c.unreserved[b] = true
	}
	for b := '0'; b <= '9'; b++ {
		c.unreserved[b] = true
	}
	c.unreserved['-'] = true
	c.unreserved['_'] = true
	c.unreserved['.'] = true
	if !opts.EscapeTilde {
		c.unreserved['~'] = true
	}
	for i := 0; i < len(opts.Allow); i++ {
		if opts.Allow[i] < utf8.RuneSelf {
			c.unreserved[opts.Allow[i]] = true
		}
	}
	return c
}

// Options returns the options the codec was created with.
func (c *Codec) Options() Options {
	return c.opts
}

// Encode percent-encodes the given string using the Query codec.
func Encode(s string) string {
	return Query.Encode(s)
}

// Decode decodes the given string using the Query codec.
func Decode(s string) (string, error) {
	return Query.Decode(s)
}

func (c *Codec) shouldEscape(b byte) bool {
	if c.unreserved[b] {
		return false
	}
	if b == ' ' && c.opts.SpaceToPlus {
		return false
	}
	return true
}

// Encode converts s into a string containing only unreserved characters, allowed characters, '+' (if SpaceToPlus is set) and %XX escapes of its UTF-8 bytes.
// If nothing needs escaping, s itself is returned.
func (c *Codec) Encode(s string) string {
	// Find the first byte that needs to change, so the common case doesn't allocate.
	start := -1
	escapes := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if c.unreserved[b] {
			continue
		}
		if start < 0 {
			start = i
		}
		if c.shouldEscape(b) {
			escapes++
		}
	}
	if start < 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2*escapes)
	sb.WriteString(s[:start])
	for i := start; i < len(s); i++ {
		b := s[i]
		switch {
		case c.unreserved[b]:
			sb.WriteByte(b)
		case b == ' ' && c.opts.SpaceToPlus:
			sb.WriteByte('+')
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperHex[b>>4])
			sb.WriteByte(upperHex[b&0x0F])
		}
	}
	return sb.String()
}

// Decode reverses Encode. Escapes may use upper or lower case hex digits.
// On malformed input no partial result is returned, and the error is a *MalformedEncodingError.
func (c *Codec) Decode(s string) (string, error) {
	if !strings.ContainsRune(s, '%') && !(c.opts.PlusToSpace && strings.ContainsRune(s, '+')) {
		if !utf8.ValidString(s) {
			return "", newMalformed(s, invalidUTF8Offset([]byte(s)), ErrInvalidUTF8)
		}
		return s, nil
	}

	// The decoded string is never longer than the encoded one.
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == '%':
			if i+2 >= len(s) {
				return "", newMalformed(s, i, ErrTruncatedEscape)
			}
			if !isHexChar(s[i+1]) || !isHexChar(s[i+2]) {
				return "", newMalformed(s, i, ErrInvalidEscape)
			}
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		case b == '+' && c.opts.PlusToSpace:
			buf = append(buf, ' ')
		default:
			buf = append(buf, b)
		}
	}

	if !utf8.Valid(buf) {
		return "", newMalformed(s, sourceOffset(s, invalidUTF8Offset(buf)), ErrInvalidUTF8)
	}
	return string(buf), nil
}

// invalidUTF8Offset returns the index of the first byte in b that does not start a valid UTF-8 sequence.
func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(b)
}

// sourceOffset maps an index into the decoded bytes of a well-formed encoded string s back to an index into s.
func sourceOffset(s string, decodedIdx int) int {
	i := 0
	for n := 0; n < decodedIdx && i < len(s); n++ {
		if s[i] == '%' {
			i += 3
		} else {
			i++
		}
	}
	return i
}

func isHexChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Copied from Go's standard library net/url/url.go.
func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
