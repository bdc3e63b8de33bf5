// Package textio reads and writes whitespace-delimited ASCII text with an
// exact, byte-for-byte grammar. The Reader runs in one of two modes: strict,
// where every separator must be consumed explicitly by the caller, or
// lenient, where whitespace and other noise is skipped automatically before
// each token. Strict mode is what lets a validator prove a file's grammar
// (single spaces, no trailing whitespace) rather than merely extract values.
package textio

import (
	"io"

	"github.com/cip999/cplib"
)

// Reader parses tokens from a byte stream. Every read is a pure function of
// the cursor position and the three mode flags; there is no other state and
// no backtracking beyond the cursor's single-byte pushback.
//
// A Reader must not be used from more than one goroutine at a time.
type Reader struct {
	cur          *Cursor
	strict       bool
	leadingZeros bool
	decimalSep   byte
}

// Open builds a Reader over the file at path. The Reader owns the file and
// Close releases it. Fails with an OpenFailure error if the file cannot be
// opened.
func Open(path string) (*Reader, error) {
	cur, err := openCursor(path)
	if err != nil {
		return nil, err
	}
	return &Reader{cur: cur, decimalSep: '.'}, nil
}

// NewReader builds a Reader over a borrowed stream. Close leaves the stream
// untouched.
func NewReader(r io.Reader) *Reader {
	return &Reader{cur: NewCursor(r), decimalSep: '.'}
}

// NewReaderString builds a Reader over an in-memory string.
func NewReaderString(s string) *Reader {
	return &Reader{cur: NewCursorString(s), decimalSep: '.'}
}

// Close releases the underlying source if the Reader owns it.
func (r *Reader) Close() error { return r.cur.Close() }

// MakeStrict disables all automatic whitespace and noise skipping, starting
// with the next read.
func (r *Reader) MakeStrict() *Reader {
	r.strict = true
	return r
}

// MakeNonStrict re-enables automatic skipping, starting with the next read.
func (r *Reader) MakeNonStrict() *Reader {
	r.strict = false
	return r
}

// WithLeadingZeros permits multi-digit numerals starting with '0'.
func (r *Reader) WithLeadingZeros() *Reader {
	r.leadingZeros = true
	return r
}

// WithoutLeadingZeros restores the default leading-zero policy.
func (r *Reader) WithoutLeadingZeros() *Reader {
	r.leadingZeros = false
	return r
}

// WithCommaAsDecimalSeparator makes ',' the decimal separator for
// floating-point tokens.
func (r *Reader) WithCommaAsDecimalSeparator() *Reader {
	r.decimalSep = ','
	return r
}

// WithDotAsDecimalSeparator restores '.' as the decimal separator.
func (r *Reader) WithDotAsDecimalSeparator() *Reader {
	r.decimalSep = '.'
	return r
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isNumeric(c byte) bool { return '0' <= c && c <= '9' }

// ReadChar consumes and returns exactly one byte.
func (r *Reader) ReadChar() (byte, error) {
	return r.cur.Next()
}

// MustBeSpace consumes one byte and requires it to be a single ASCII space.
func (r *Reader) MustBeSpace() error {
	c, err := r.cur.Next()
	if err != nil {
		return err
	}
	if c != ' ' {
		return cplib.NewExpected("space")
	}
	return nil
}

// MustBeNewline consumes one newline token, accepting "\n" and "\r\n".
func (r *Reader) MustBeNewline() error {
	c, err := r.cur.Next()
	if err != nil {
		return err
	}
	if c == '\r' {
		c, err = r.cur.Next()
		if err != nil {
			return err
		}
	}
	if c != '\n' {
		return cplib.NewExpected("newline")
	}
	return nil
}

// MustBeEOF requires the stream to be exhausted. It peeks without consuming.
func (r *Reader) MustBeEOF() error {
	if r.cur.AtEOF() {
		return nil
	}
	return cplib.NewExpected("EOF")
}

// AtEOF reports whether the stream is exhausted, without consuming.
func (r *Reader) AtEOF() bool { return r.cur.AtEOF() }

// SkipSpaces consumes a run of separator bytes, leaving the first
// non-separator byte unconsumed. Reaching end of input is not an error.
func (r *Reader) SkipSpaces() {
	for {
		c, err := r.cur.Next()
		if err != nil {
			return
		}
		if !isSpace(c) {
			r.cur.Unread(c)
			return
		}
	}
}

// SkipNonNumeric consumes bytes until the next digit or '-', leaving that
// byte unconsumed. Reaching end of input is not an error.
func (r *Reader) SkipNonNumeric() {
	for {
		c, err := r.cur.Next()
		if err != nil {
			return
		}
		if isNumeric(c) || c == '-' {
			r.cur.Unread(c)
			return
		}
	}
}

// ReadConstant reads exactly len(token) bytes and requires them to match
// token. An empty token is caller misuse; a short read reports EOF.
func (r *Reader) ReadConstant(token string) (string, error) {
	if token == "" {
		return "", cplib.NewInvalidArgument("Argument 'token' must not be the empty string")
	}
	buf := make([]byte, 0, len(token))
	for i := 0; i < len(token); i++ {
		c, err := r.cur.Next()
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}
	if string(buf) != token {
		return "", cplib.NewExpected("'" + token + "'")
	}
	return token, nil
}
