package textio

import (
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/cip999/cplib"
)

// integerBounds reports whether T is signed and the largest magnitude a
// non-negative value of T can hold. For signed T the magnitude of the
// minimum value is maxMag+1 (two's complement).
func integerBounds[T constraints.Integer]() (signed bool, maxMag uint64) {
	var zero T
	if zero-1 > zero {
		return false, uint64(^T(0))
	}
	bits := 8 * uint(unsafe.Sizeof(zero))
	return true, uint64(1)<<(bits-1) - 1
}

// readMagnitude parses a maximal digit run into an unsigned accumulator,
// raising IntegerOverflow as soon as the next digit would push the value
// past limit. A non-digit terminator is unread; end of input after at least
// one digit is a successful termination, before any digit it propagates EOF.
func (r *Reader) readMagnitude(limit uint64) (uint64, error) {
	var n uint64
	start := true
	for {
		c, err := r.cur.Next()
		if err != nil {
			if start {
				return 0, err
			}
			return n, nil
		}
		if !isNumeric(c) {
			if start {
				return 0, cplib.NewUnexpectedByte(c)
			}
			r.cur.Unread(c)
			return n, nil
		}
		if n == 0 && !start && !r.leadingZeros {
			return 0, cplib.NewUnexpectedByte('0')
		}
		start = false
		d := uint64(c - '0')
		if n > (limit-d)/10 {
			return 0, cplib.NewOverflow(limit)
		}
		n = 10*n + d
	}
}

func readIntegerStrict[T constraints.Integer](r *Reader) (T, error) {
	signed, maxMag := integerBounds[T]()
	if !signed {
		n, err := r.readMagnitude(maxMag)
		if err != nil {
			return 0, err
		}
		return T(n), nil
	}
	negative := false
	c, err := r.cur.Next()
	if err != nil {
		return 0, err
	}
	switch {
	case c == '-':
		negative = true
	case isNumeric(c):
		r.cur.Unread(c)
	default:
		return 0, cplib.NewUnexpectedByte(c)
	}
	limit := maxMag
	if negative {
		limit = maxMag + 1
	}
	n, err := r.readMagnitude(limit)
	if err != nil {
		return 0, err
	}
	if negative {
		// Two's complement: uint64 negation truncated to T yields the
		// correct value, including the type's minimum.
		return T(-n), nil
	}
	return T(n), nil
}

// ReadInteger parses one integer of the exact target type. In lenient mode
// any non-numeric noise before the token is skipped first. Overflow is
// detected digit by digit against T's representable bound, never by
// wrapping; the sign-dependent bound makes the type's minimum value
// parseable. A multi-digit run starting with '0' is rejected unless the
// leading-zeros flag is set. '-' is legal only as the first byte.
func ReadInteger[T constraints.Integer](r *Reader) (T, error) {
	if !r.strict {
		r.SkipNonNumeric()
	}
	return readIntegerStrict[T](r)
}

// ReadIntegerInRange parses an integer and additionally requires it to lie
// in [minValue, maxValue], failing with an interval-constraint
// FailedValidation error otherwise. That failure kind is distinct from the
// malformed-syntax errors raised by ReadInteger.
func ReadIntegerInRange[T constraints.Integer](r *Reader, minValue, maxValue T) (T, error) {
	n, err := ReadInteger[T](r)
	if err != nil {
		return 0, err
	}
	if n < minValue || n > maxValue {
		return 0, cplib.NewIntervalConstraint("n", minValue, maxValue)
	}
	return n, nil
}

// ReadInt parses one int.
func (r *Reader) ReadInt() (int, error) { return ReadInteger[int](r) }

// ReadInt32 parses one int32.
func (r *Reader) ReadInt32() (int32, error) { return ReadInteger[int32](r) }

// ReadInt64 parses one int64.
func (r *Reader) ReadInt64() (int64, error) { return ReadInteger[int64](r) }

// ReadUint32 parses one uint32.
func (r *Reader) ReadUint32() (uint32, error) { return ReadInteger[uint32](r) }

// ReadUint64 parses one uint64.
func (r *Reader) ReadUint64() (uint64, error) { return ReadInteger[uint64](r) }

func readFloatStrict[T constraints.Float](r *Reader) (T, error) {
	var buf []byte
	isZero := true
	afterSep := false
	for {
		c, err := r.cur.Next()
		if err != nil {
			// End of input terminates the token successfully only if the
			// last consumed byte was a digit.
			if len(buf) == 0 || !isNumeric(buf[len(buf)-1]) {
				return 0, err
			}
			break
		}
		if !isNumeric(c) && c != '-' && c != r.decimalSep {
			if len(buf) == 0 {
				return 0, cplib.NewUnexpectedByte(c)
			}
			r.cur.Unread(c)
			break
		}
		if c == '-' && len(buf) > 0 {
			return 0, cplib.NewUnexpectedByte('-')
		}
		if c == r.decimalSep {
			if len(buf) == 0 || (len(buf) == 1 && buf[0] == '-') || afterSep {
				return 0, cplib.NewUnexpectedByte(r.decimalSep)
			}
			afterSep = true
			buf = append(buf, '.')
			continue
		}
		if isZero && !r.leadingZeros && !afterSep && len(buf) > 0 && !(len(buf) == 1 && buf[0] == '-') {
			return 0, cplib.NewUnexpectedByte('0')
		}
		if c != '0' {
			isZero = false
		}
		buf = append(buf, c)
	}
	bitSize := 64
	if unsafe.Sizeof(T(0)) == 4 {
		bitSize = 32
	}
	x, err := strconv.ParseFloat(string(buf), bitSize)
	if err != nil {
		return 0, cplib.NewExpected("floating-point value")
	}
	return T(x), nil
}

// ReadFloat parses one floating-point number of the exact target type,
// shaped -?digits(<sep>digits)? with the configured decimal separator. The
// same sign and leading-zero rules as ReadInteger apply; at most one
// separator is allowed, and it may not start the token. The accumulated
// text is converted at the end and the conversion does not re-validate the
// shape.
func ReadFloat[T constraints.Float](r *Reader) (T, error) {
	if !r.strict {
		r.SkipNonNumeric()
	}
	return readFloatStrict[T](r)
}

// ReadFloat64 parses one float64.
func (r *Reader) ReadFloat64() (float64, error) { return ReadFloat[float64](r) }

// ReadFloat32 parses one float32.
func (r *Reader) ReadFloat32() (float32, error) { return ReadFloat[float32](r) }
