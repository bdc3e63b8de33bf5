package textio

import (
	"fmt"
	"math"
	"strings"

	"github.com/cip999/cplib"
)

// NoLimit marks an unbounded maximum length in the string-reading calls.
const NoLimit = -1

func lengthBound(maxLen int) any {
	if maxLen < 0 {
		return uint64(math.MaxUint64)
	}
	return maxLen
}

// readStringStrict consumes bytes until the first separator, end of input,
// or length bound. The bound is checked before consuming byte i, so exactly
// maxLen valid bytes are accepted.
func (r *Reader) readStringStrict(check func(i int, c byte) bool, minLen, maxLen int) (string, error) {
	var s []byte
	for i := 0; ; i++ {
		c, err := r.cur.Next()
		if err != nil {
			if len(s) == 0 {
				return "", cplib.ErrEOF
			}
			break
		}
		if isSpace(c) {
			if i == 0 {
				return "", cplib.NewExpected("non-space character")
			}
			r.cur.Unread(c)
			break
		}
		if maxLen >= 0 && i >= maxLen {
			return "", cplib.NewIntervalConstraint("len(string)", minLen, lengthBound(maxLen))
		}
		if !check(i, c) {
			return "", cplib.NewFailedValidation(fmt.Sprintf("Invalid character '%c' at position %d", c, i))
		}
		s = append(s, c)
	}
	if len(s) < minLen {
		return "", cplib.NewIntervalConstraint("len(string)", minLen, lengthBound(maxLen))
	}
	return string(s), nil
}

// ReadStringFunc reads a token whose byte at each index must satisfy check.
// The token ends at the first separator or at end of input; maxLen may be
// NoLimit. A token shorter than minLen or longer than maxLen fails with an
// interval-constraint error on its length; a byte rejected by check fails
// naming the offending position. A separator as the very first byte is an
// UnexpectedToken; end of input before any byte is an EOF.
func (r *Reader) ReadStringFunc(check func(i int, c byte) bool, minLen, maxLen int) (string, error) {
	if !r.strict {
		r.SkipSpaces()
	}
	return r.readStringStrict(check, minLen, maxLen)
}

// ReadString reads a token of length in [minLen, maxLen] with no character
// constraint.
func (r *Reader) ReadString(minLen, maxLen int) (string, error) {
	return r.ReadStringFunc(func(int, byte) bool { return true }, minLen, maxLen)
}

// ReadStringExact reads a token of exactly n bytes.
func (r *Reader) ReadStringExact(n int) (string, error) {
	if n <= 0 {
		return "", cplib.NewInvalidArgument("Argument 'n' must be strictly positive")
	}
	return r.ReadString(n, n)
}

// ReadToken reads a token of any positive length.
func (r *Reader) ReadToken() (string, error) {
	return r.ReadString(0, NoLimit)
}

// ReadStringOf reads a token of length in [minLen, maxLen] whose bytes all
// belong to allowed.
func (r *Reader) ReadStringOf(allowed string, minLen, maxLen int) (string, error) {
	return r.ReadStringFunc(func(_ int, c byte) bool {
		return strings.IndexByte(allowed, c) >= 0
	}, minLen, maxLen)
}

// ReadStringOfExact reads a token of exactly n bytes drawn from allowed.
func (r *Reader) ReadStringOfExact(allowed string, n int) (string, error) {
	if n <= 0 {
		return "", cplib.NewInvalidArgument("Argument 'n' must be strictly positive")
	}
	return r.ReadStringOf(allowed, n, n)
}

// ReadAnyOf reads a token bounded by the candidates' length range and
// requires it to be one of them. An empty candidate list or an empty
// candidate is caller misuse.
func (r *Reader) ReadAnyOf(tokens []string) (string, error) {
	if len(tokens) == 0 {
		return "", cplib.NewInvalidArgument("Argument 'tokens' must not be empty")
	}
	minLen, maxLen := len(tokens[0]), len(tokens[0])
	for _, t := range tokens[1:] {
		minLen = min(minLen, len(t))
		maxLen = max(maxLen, len(t))
	}
	if minLen == 0 {
		return "", cplib.NewInvalidArgument("Elements of 'tokens' must not be the empty string")
	}
	s, err := r.ReadString(minLen, maxLen)
	if err != nil {
		return "", err
	}
	for _, t := range tokens {
		if s == t {
			return s, nil
		}
	}
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = "'" + t + "'"
	}
	return "", cplib.NewExpected("one of " + strings.Join(quoted, ", "))
}
