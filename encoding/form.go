package encoding

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrFieldTooLong is returned by FormDecoder.Next when a key-val pair is longer than MaxFieldLength.
var ErrFieldTooLong = errors.New("form field length limit exceeded")

// DefaultMaxFieldLength is the MaxFieldLength of decoders created by NewFormDecoder.
const DefaultMaxFieldLength = 1024 * 1024 // 1 MiB

// readChunkSize is how much FormDecoder reads from the underlying reader at a time.
const readChunkSize = 1000

// Pair is a single key-val pair of a form.
type Pair struct {
	Key string
	Val string
}

// EncodePairs encodes the pairs as "key=val&key=val" using the given codec. Pairs with an empty Val are still written with an '=' sign.
func EncodePairs(c *Codec, pairs []Pair) string {
	var sb strings.Builder
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(c.Encode(p.Key))
		sb.WriteByte('=')
		sb.WriteString(c.Encode(p.Val))
	}
	return sb.String()
}

// FieldError is returned by FormDecoder.Next when the key or val of a pair could not be decoded.
type FieldError struct {
	// Index is the zero based index of the pair within the form.
	Index int

	// InKey is true if the key was malformed, and false if the val was.
	InKey bool

	Err *MalformedEncodingError
}

func (e *FieldError) Error() string {
	part := "val"
	if e.InKey {
		part = "key"
	}
	return fmt.Sprintf("form pair %d: %s: %v", e.Index, part, e.Err)
}

// Unwrap returns the underlying *MalformedEncodingError.
func (e *FieldError) Unwrap() error {
	return e.Err
}

type formDecoderState int

const (
	_ formDecoderState = iota
	lookingForEq
	foundEq
	endOfStream
)

// FormDecoder reads key-val pairs from an application/x-www-form-urlencoded stream without buffering the whole stream.
type FormDecoder struct {
	// MaxFieldLength is the max number of raw bytes in a single key-val pair. Zero or less means no limit.
	MaxFieldLength int

	r            io.Reader
	codec        *Codec
	buf          bytes.Buffer
	state        formDecoderState
	scannedUntil int
	eqPos        int
	index        int
}

// NewFormDecoder creates a FormDecoder that decodes keys and vals with the given codec. Form bodies normally want the Query codec.
func NewFormDecoder(r io.Reader, c *Codec) *FormDecoder {
	return &FormDecoder{
		MaxFieldLength: DefaultMaxFieldLength,
		r:              r,
		codec:          c,
		state:          lookingForEq,
	}
}

// Next returns the next decoded key-val pair. It returns io.EOF after the last pair.
// A pair whose key or val is malformed is consumed, and a *FieldError is returned for it, so the caller may continue with the next pair.
func (d *FormDecoder) Next() (key string, val string, err error) {
	rawKey, rawVal, err := d.nextRaw()
	if err != nil {
		return
	}

	index := d.index
	d.index++

	key, kerr := d.codec.Decode(rawKey)
	if kerr != nil {
		err = &FieldError{Index: index, InKey: true, Err: kerr.(*MalformedEncodingError)}
		return "", "", err
	}

	val, verr := d.codec.Decode(rawVal)
	if verr != nil {
		err = &FieldError{Index: index, Err: verr.(*MalformedEncodingError)}
		return "", "", err
	}

	return
}

func (d *FormDecoder) nextRaw() (key string, val string, err error) {
	if d.state == endOfStream {
		err = io.EOF
		return
	}

	for {
		bb := d.buf.Bytes()

		for i := d.scannedUntil; i < len(bb); i++ {
			c := bb[i]
			if c != '&' {
				if c == '=' && d.state == lookingForEq {
					d.eqPos = i
					d.state = foundEq
				}
				continue
			}

			if d.MaxFieldLength > 0 && i > d.MaxFieldLength {
				d.state = endOfStream
				err = ErrFieldTooLong
				return
			}

			if d.state == foundEq {
				key = string(bb[:d.eqPos])
				val = string(bb[d.eqPos+1 : i])
			} else {
				// There was no equal-sign in this pair
				key = string(bb[:i])
			}

			// Consume number of bytes equivalent to this key-val pair from the buffer.
			d.buf.Next(i + 1)
			d.state = lookingForEq
			d.scannedUntil = 0
			d.eqPos = 0
			return
		}

		d.scannedUntil = len(bb)

		if d.MaxFieldLength > 0 && len(bb) > d.MaxFieldLength {
			d.state = endOfStream
			err = ErrFieldTooLong
			return
		}

		// We didn't find a key-val pair in the currently buffered bytes yet, so read some more into our buffer.
		var n int64
		n, err = d.buf.ReadFrom(io.LimitReader(d.r, readChunkSize))
		if err != nil {
			return
		}

		// Was this the end of the stream?
		if n == 0 {
			bb := d.buf.Bytes()

			// If there was no outstanding bytes in the buffer just return EOF.
			if len(bb) == 0 {
				d.state = endOfStream
				err = io.EOF
				return
			}

			if d.MaxFieldLength > 0 && len(bb) > d.MaxFieldLength {
				d.state = endOfStream
				err = ErrFieldTooLong
				return
			}

			if d.state == foundEq {
				key = string(bb[:d.eqPos])
				val = string(bb[d.eqPos+1:])
			} else {
				key = string(bb)
			}

			d.buf.Next(len(bb))
			d.state = endOfStream
			return
		}
	}
}
