package textio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/cip999/cplib"
)

// Cursor is a single-byte view over an input stream with one slot of
// pushback. It owns no parsing policy; the Reader layers token semantics on
// top of it.
//
// A Cursor built with Open owns the underlying file and Close releases it.
// A Cursor built over a borrowed io.Reader leaves the stream untouched on
// Close.
type Cursor struct {
	src     *bufio.Reader
	closer  io.Closer
	pending int16 // -1 when the unget slot is empty
}

// openCursor opens the file at path for reading. The returned cursor owns
// the file.
func openCursor(path string) (*Cursor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cplib.NewOpenFailure(path)
	}
	c := NewCursor(f)
	c.closer = f
	return c, nil
}

// NewCursor wraps a borrowed stream. Close is a no-op for it.
func NewCursor(r io.Reader) *Cursor {
	return &Cursor{src: bufio.NewReader(r), pending: -1}
}

// NewCursorString reads from an in-memory string.
func NewCursorString(s string) *Cursor {
	return NewCursor(strings.NewReader(s))
}

// NewCursorBytes reads from an in-memory byte slice.
func NewCursorBytes(b []byte) *Cursor {
	return NewCursor(bytes.NewReader(b))
}

// Next consumes and returns one byte, or cplib.ErrEOF when the stream is
// exhausted.
func (c *Cursor) Next() (byte, error) {
	if c.pending >= 0 {
		b := byte(c.pending)
		c.pending = -1
		return b, nil
	}
	b, err := c.src.ReadByte()
	if err != nil {
		return 0, cplib.ErrEOF
	}
	return b, nil
}

// Unread pushes b back so the next call to Next returns it. Only one byte of
// pushback is available; a second Unread before a Next is a caller bug and
// overwrites the slot.
func (c *Cursor) Unread(b byte) {
	c.pending = int16(b)
}

// AtEOF reports whether the stream is exhausted. It never consumes: a byte
// read while peeking is stashed in the unget slot.
func (c *Cursor) AtEOF() bool {
	if c.pending >= 0 {
		return false
	}
	b, err := c.src.ReadByte()
	if err != nil {
		return true
	}
	c.pending = int16(b)
	return false
}

// Close releases the underlying file if the cursor owns one.
func (c *Cursor) Close() error {
	if c.closer == nil {
		return nil
	}
	err := c.closer.Close()
	c.closer = nil
	return err
}
