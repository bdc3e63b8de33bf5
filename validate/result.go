// Package validate is a small propositional algebra over pass/fail results.
// Primitive predicates produce a Result carrying a human-readable
// explanation; And, Or and Not compose them into nested, printable
// proof/failure trees.
package validate

import (
	"fmt"
	"strings"

	"github.com/cip999/cplib"
)

// Result is an immutable success-or-failure verdict with a printable
// message. Exactly one of the two tags holds. Composite results carry the
// indented concatenation of their operands' messages regardless of which
// branch decided the outcome, so a failing conjunction still shows what
// succeeded.
type Result struct {
	ok  bool
	msg string
}

// Success builds a passing result.
func Success(msg string) Result { return Result{ok: true, msg: msg} }

// Successf builds a passing result with a formatted message.
func Successf(format string, args ...any) Result {
	return Success(fmt.Sprintf(format, args...))
}

// Failure builds a failing result.
func Failure(msg string) Result { return Result{msg: msg} }

// Failuref builds a failing result with a formatted message.
func Failuref(format string, args ...any) Result {
	return Failure(fmt.Sprintf(format, args...))
}

// Ok reports whether the result passed.
func (r Result) Ok() bool { return r.ok }

// Failed reports whether the result failed.
func (r Result) Failed() bool { return !r.ok }

// Message returns the explanation tree.
func (r Result) Message() string { return r.msg }

// Err returns nil for a passing result and a FailedValidation error carrying
// the explanation tree otherwise.
func (r Result) Err() error {
	if r.ok {
		return nil
	}
	return cplib.NewFailedValidation(r.msg)
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}

// Not flips the tag and wraps the message under a NOT node.
func Not(r Result) Result {
	msg := "NOT\n" + indent(r.msg)
	if r.ok {
		return Failure(msg)
	}
	return Success(msg)
}

// And passes iff both operands pass.
func And(a, b Result) Result {
	msg := indent(a.msg) + "\nAND\n" + indent(b.msg)
	if a.ok && b.ok {
		return Success(msg)
	}
	return Failure(msg)
}

// Or passes iff at least one operand passes.
func Or(a, b Result) Result {
	msg := indent(a.msg) + "\nOR\n" + indent(b.msg)
	if a.ok || b.ok {
		return Success(msg)
	}
	return Failure(msg)
}
