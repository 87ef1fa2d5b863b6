// Package checks implements the pre-commit stages: filename validation,
// whitespace, formatting, and linting. Each check prints its own
// diagnostics to stderr and returns a Failure carrying the exit code the
// hook must terminate with.
package checks

import "errors"

// Failure marks a failed check. The diagnostics have already been printed
// when it is returned; Error() is the one-line summary.
type Failure struct {
	Code int
	Msg  string
}

func (f *Failure) Error() string { return f.Msg }

// failf builds a Failure for the given exit code.
func failf(code int, msg string) *Failure {
	return &Failure{Code: code, Msg: msg}
}

// ExitCode extracts the exit code from a check error. Non-check errors
// map to -1.
func ExitCode(err error) int {
	var f *Failure
	if errors.As(err, &f) {
		return f.Code
	}
	return -1
}
