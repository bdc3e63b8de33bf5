// Package cplib holds the error taxonomy shared by the textio reader/writer
// and the validate engine.
package cplib

import (
	"errors"
	"fmt"
)

// ErrorKind identifies one of the six failure kinds raised by this module.
type ErrorKind int

const (
	// OpenFailure means a file-backed source or destination could not be
	// opened. Raised at construction time only.
	OpenFailure ErrorKind = iota + 1

	// EOF means the stream was exhausted before a syntactically complete
	// token. A token that terminates exactly at end-of-input is a success,
	// not an EOF.
	EOF

	// UnexpectedToken means a byte or byte sequence violated the expected
	// lexical shape: wrong separator, disallowed character, leading zero,
	// double sign, or a mismatch against a required constant.
	UnexpectedToken

	// IntegerOverflow means a parsed integer's magnitude exceeds the target
	// type's representable range. The message carries the exceeded limit.
	IntegerOverflow

	// InvalidArgument flags caller misuse (empty token, empty candidate set,
	// zero-length read). It indicates a bug in the validator, not bad input.
	InvalidArgument

	// FailedValidation means a semantic constraint (interval, predicate,
	// length bound) failed on an otherwise lexically valid token.
	FailedValidation
)

func (k ErrorKind) prefix() string {
	switch k {
	case OpenFailure, EOF:
		return "I/O ERROR"
	case UnexpectedToken:
		return "UNEXPECTED READ"
	case IntegerOverflow:
		return "INTEGER OVERFLOW"
	case InvalidArgument:
		return "INVALID ARGUMENT"
	case FailedValidation:
		return "FAILED VALIDATION"
	}
	return "GENERIC"
}

// Error is the single error type raised by every package in this module.
// There is no hierarchy: the Kind discriminates, the message carries the
// payload. Errors are fatal to the operation that raised them and are never
// retried.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.prefix() + ": " + e.Msg
}

// Message returns the message without the kind prefix.
func (e *Error) Message() string { return e.Msg }

// Is matches any *Error of the same kind, so errors.Is(err, cplib.ErrEOF)
// holds for every EOF-kinded error regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// ErrEOF is the end-of-input error. It carries no payload, so the one value
// serves both as the raised error and as the errors.Is target.
var ErrEOF = &Error{Kind: EOF, Msg: "Reached EOF"}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// NewOpenFailure reports that name could not be opened.
func NewOpenFailure(name string) *Error {
	return &Error{Kind: OpenFailure, Msg: "Couldn't open " + name}
}

// NewUnexpectedByte reports a byte that violated the expected lexical shape.
func NewUnexpectedByte(c byte) *Error {
	return &Error{Kind: UnexpectedToken, Msg: fmt.Sprintf("Encountered character '%c'", c)}
}

// NewExpected reports that the input did not supply what desc describes,
// e.g. "space", "newline", "EOF", "'yes'", "one of 'a', 'b'".
func NewExpected(desc string) *Error {
	return &Error{Kind: UnexpectedToken, Msg: "Expected " + desc}
}

// NewOverflow reports that an integer's magnitude exceeded limit.
func NewOverflow(limit uint64) *Error {
	return &Error{Kind: IntegerOverflow, Msg: fmt.Sprintf("Exceeded limit %d", limit)}
}

// NewInvalidArgument flags caller misuse.
func NewInvalidArgument(msg string) *Error {
	return &Error{Kind: InvalidArgument, Msg: msg}
}

// NewFailedValidation reports a failed semantic constraint.
func NewFailedValidation(msg string) *Error {
	return &Error{Kind: FailedValidation, Msg: msg}
}

// NewIntervalConstraint reports that the named quantity fell outside
// [low, high].
func NewIntervalConstraint(name string, low, high any) *Error {
	return &Error{
		Kind: FailedValidation,
		Msg:  fmt.Sprintf("Expected %v <= %s <= %v", low, name, high),
	}
}
