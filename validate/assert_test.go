package validate

import (
	"strings"
	"testing"

	"github.com/cip999/cplib"
)

func TestAssertSuccessIsInert(t *testing.T) {
	if err := Assert(Between(5, 0, 10)); err != nil {
		t.Errorf("Assert on success = %v, want nil", err)
	}
}

func TestAssertFailureCarriesLocation(t *testing.T) {
	err := Assert(Between(11, 0, 10))
	if !cplib.IsKind(err, cplib.FailedValidation) {
		t.Fatalf("Assert on failure = %v, want FailedValidation", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "assert_test.go::") {
		t.Errorf("message %q lacks the caller location", msg)
	}
	if !strings.Contains(msg, "Value does not lie in [0, 10]: 11 > 10") {
		t.Errorf("message %q lacks the explanation tree", msg)
	}
	if !strings.Contains(msg, "\n---\n") {
		t.Errorf("message %q lacks the framing", msg)
	}
}
