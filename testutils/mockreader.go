package testutils

import (
	"io"
)

// MockReader is an io.Reader that yields whole copies of Content until reading another copy would go past Length.
// It lets tests feed large streams without allocating them.
type MockReader struct {
	Pos     int
	Length  int
	Content []byte
	next    []byte
}

// Read fills p with copies of Content. Content defaults to a run of 'a' characters.
func (m *MockReader) Read(p []byte) (n int, err error) {
	if len(m.Content) == 0 {
		m.Content = []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	}

	for n < len(p) {
		if len(m.next) == 0 {
			if m.Pos+len(m.Content) > m.Length {
				return n, io.EOF
			}
			m.next = m.Content
		}

		c := copy(p[n:], m.next)
		n += c
		m.Pos += c
		m.next = m.next[c:]
	}

	return
}
