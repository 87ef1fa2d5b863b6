package checks

import (
	"github.com/prehook/prehook/internal/exitcode"
	"github.com/prehook/prehook/internal/git"
	"github.com/prehook/prehook/internal/ui"
)

// Whitespace runs git's built-in whitespace validation over the staged
// index (trailing whitespace, space-before-tab, and friends per the
// repository's core.whitespace setting).
func Whitespace(against string) error {
	report, ok := git.DiffCheckCached(against)
	if ok {
		return nil
	}
	ui.Raw(report)
	ui.Error("whitespace errors in staged changes")
	return failf(exitcode.CheckFailed, "whitespace check failed")
}
