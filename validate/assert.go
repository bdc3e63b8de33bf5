package validate

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/cip999/cplib"
)

// Assert is inert for a passing result. For a failing one it returns a
// FailedValidation error whose message frames the explanation tree with the
// caller's source location, aborting the enclosing validation routine when
// propagated.
func Assert(r Result) error {
	if r.Ok() {
		return nil
	}
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return r.Err()
	}
	return cplib.NewFailedValidation(fmt.Sprintf(
		"AT %s::%d\n---\n%s\n---", filepath.Base(file), line, r.Message()))
}
