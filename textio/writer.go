package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cip999/cplib"
)

// Writer formats whitespace-delimited output. It is a pure formatter: no
// validation, no mode state beyond the decimal-separator choice.
type Writer struct {
	dst        *bufio.Writer
	closer     io.Closer
	decimalSep byte
}

// Create opens (truncating) the file at path for writing. The Writer owns
// the file; Close flushes and releases it.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, cplib.NewOpenFailure(path)
	}
	w := NewWriter(f)
	w.closer = f
	return w, nil
}

// NewWriter writes to a borrowed sink. Close flushes but leaves the sink
// open.
func NewWriter(w io.Writer) *Writer {
	return &Writer{dst: bufio.NewWriter(w), decimalSep: '.'}
}

// WithCommaAsDecimalSeparator makes ',' the decimal separator for
// floating-point output.
func (w *Writer) WithCommaAsDecimalSeparator() *Writer {
	w.decimalSep = ','
	return w
}

// WithDotAsDecimalSeparator restores '.' as the decimal separator.
func (w *Writer) WithDotAsDecimalSeparator() *Writer {
	w.decimalSep = '.'
	return w
}

// WriteSpace writes one ASCII space.
func (w *Writer) WriteSpace() error { return w.dst.WriteByte(' ') }

// WriteNewline writes "\n".
func (w *Writer) WriteNewline() error { return w.dst.WriteByte('\n') }

// WriteNewlineCRLF writes "\r\n".
func (w *Writer) WriteNewlineCRLF() error {
	if err := w.dst.WriteByte('\r'); err != nil {
		return err
	}
	return w.dst.WriteByte('\n')
}

// WriteByte writes one raw byte.
func (w *Writer) WriteByte(c byte) error { return w.dst.WriteByte(c) }

// WriteString writes s verbatim.
func (w *Writer) WriteString(s string) error {
	_, err := w.dst.WriteString(s)
	return err
}

// WriteInt writes x in decimal.
func (w *Writer) WriteInt(x int64) error {
	return w.WriteString(strconv.FormatInt(x, 10))
}

// WriteUint writes x in decimal.
func (w *Writer) WriteUint(x uint64) error {
	return w.WriteString(strconv.FormatUint(x, 10))
}

// WriteFloat writes x with fixedDecimals digits after the separator, or in
// the shortest round-tripping form when fixedDecimals is negative. The
// configured decimal separator is substituted for '.'.
func (w *Writer) WriteFloat(x float64, fixedDecimals int) error {
	var s string
	if fixedDecimals >= 0 {
		s = strconv.FormatFloat(x, 'f', fixedDecimals, 64)
	} else {
		s = strconv.FormatFloat(x, 'g', -1, 64)
	}
	if w.decimalSep != '.' {
		s = strings.Replace(s, ".", string(w.decimalSep), 1)
	}
	return w.WriteString(s)
}

// WriteSequence writes the elements of v joined by sep.
func WriteSequence[T any](w *Writer, v []T, sep string) error {
	for i, x := range v {
		if i > 0 {
			if err := w.WriteString(sep); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w.dst, "%v", x); err != nil {
			return err
		}
	}
	return nil
}

// WriteMatrix writes rows joined by newlines, elements by single spaces.
func WriteMatrix[T any](w *Writer, rows [][]T) error {
	for i, row := range rows {
		if i > 0 {
			if err := w.WriteNewline(); err != nil {
				return err
			}
		}
		if err := WriteSequence(w, row, " "); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered output to the sink.
func (w *Writer) Flush() error { return w.dst.Flush() }

// Close flushes and, if the Writer owns its file, releases it.
func (w *Writer) Close() error {
	err := w.dst.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
		w.closer = nil
	}
	return err
}
