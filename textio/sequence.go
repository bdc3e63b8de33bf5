package textio

import (
	"golang.org/x/exp/constraints"

	"github.com/cip999/cplib"
)

// ReadSequence reads n elements with the supplied read function. In lenient
// mode leading whitespace is skipped once, before the first element. A
// non-empty sep is required verbatim between consecutive elements; with an
// empty sep the elements' own skipping (if any) separates them. n must be
// strictly positive.
func ReadSequence[T any](r *Reader, n int, read func() (T, error), sep string) ([]T, error) {
	if n <= 0 {
		return nil, cplib.NewInvalidArgument("n must be strictly positive")
	}
	if !r.strict {
		r.SkipSpaces()
	}
	v := make([]T, n)
	for i := 0; i < n; i++ {
		x, err := read()
		if err != nil {
			return nil, err
		}
		v[i] = x
		if sep != "" && i+1 < n {
			if _, err := r.ReadConstant(sep); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

// ReadIntegers reads n integers. With a non-empty sep the elements are read
// strictly (no skipping), so sep accounts for every byte between them.
func ReadIntegers[T constraints.Integer](r *Reader, n int, sep string) ([]T, error) {
	if sep == "" {
		return ReadSequence(r, n, func() (T, error) { return ReadInteger[T](r) }, sep)
	}
	return ReadSequence(r, n, func() (T, error) { return readIntegerStrict[T](r) }, sep)
}

// ReadIntegersInRange reads n integers, each required to lie in
// [minValue, maxValue].
func ReadIntegersInRange[T constraints.Integer](r *Reader, n int, minValue, maxValue T, sep string) ([]T, error) {
	read := func() (T, error) { return ReadIntegerInRange(r, minValue, maxValue) }
	if sep != "" {
		read = func() (T, error) {
			x, err := readIntegerStrict[T](r)
			if err != nil {
				return 0, err
			}
			if x < minValue || x > maxValue {
				return 0, cplib.NewIntervalConstraint("x", minValue, maxValue)
			}
			return x, nil
		}
	}
	return ReadSequence(r, n, read, sep)
}

// ReadFloats reads n floating-point numbers.
func ReadFloats[T constraints.Float](r *Reader, n int, sep string) ([]T, error) {
	if sep == "" {
		return ReadSequence(r, n, func() (T, error) { return ReadFloat[T](r) }, sep)
	}
	return ReadSequence(r, n, func() (T, error) { return readFloatStrict[T](r) }, sep)
}

// ReadStrings reads n tokens, each of exactly exactLen bytes, or of any
// length when exactLen <= 0.
func ReadStrings(r *Reader, n int, exactLen int, sep string) ([]string, error) {
	minLen, maxLen := 0, NoLimit
	if exactLen > 0 {
		minLen, maxLen = exactLen, exactLen
	}
	anyChar := func(int, byte) bool { return true }
	if sep == "" {
		return ReadSequence(r, n, func() (string, error) {
			return r.ReadStringFunc(anyChar, minLen, maxLen)
		}, sep)
	}
	return ReadSequence(r, n, func() (string, error) {
		return r.readStringStrict(anyChar, minLen, maxLen)
	}, sep)
}

// ReadIntegerMatrix reads n rows of m integers. Rows are separated by a
// newline byte; within a row the elements are single-space separated in
// strict mode and whitespace separated otherwise.
func ReadIntegerMatrix[T constraints.Integer](r *Reader, n, m int) ([][]T, error) {
	rowSep := ""
	if r.strict {
		rowSep = " "
	}
	return ReadSequence(r, n, func() ([]T, error) {
		return ReadIntegers[T](r, m, rowSep)
	}, "\n")
}
