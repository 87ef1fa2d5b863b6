// Package exitcode defines the hook's exit code contract, which some
// commit wrappers inspect to distinguish failure classes.
package exitcode

// Exit codes for the prehook CLI.
const (
	Success     = 0
	CheckFailed = 1 // non-ASCII filename, whitespace error, or formatting violation
	LintFailed  = 2 // linter reported problems
	UsageError  = 3 // bad invocation or unreadable configuration
)

// String returns a human-readable description of the exit code.
func String(code int) string {
	switch code {
	case Success:
		return "Success"
	case CheckFailed:
		return "Check failed"
	case LintFailed:
		return "Lint failed"
	case UsageError:
		return "Usage error"
	default:
		return "Unknown error"
	}
}
