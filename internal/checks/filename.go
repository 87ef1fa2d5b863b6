package checks

import (
	"fmt"

	"github.com/prehook/prehook/internal/exitcode"
	"github.com/prehook/prehook/internal/git"
	"github.com/prehook/prehook/internal/ui"
)

// Filenames rejects newly added paths containing bytes outside the
// printable ASCII range. Such names render differently across platforms
// and filesystems, so they are blocked unless explicitly allowed.
func Filenames(against string, allowNonASCII bool) error {
	if allowNonASCII {
		return nil
	}

	added, err := git.StagedNames(against, "A")
	if err != nil {
		return fmt.Errorf("listing added files: %w", err)
	}

	for _, path := range added {
		if IsPrintableASCII(path) {
			continue
		}
		ui.Error("attempt to add a non-ASCII file name: %q", path)
		ui.Info("")
		ui.Info("Non-ASCII names can cause problems for collaborators on")
		ui.Info("other platforms. To be portable, rename the file.")
		ui.Info("")
		ui.Info("If you know what you are doing, disable this check with:")
		ui.Info("")
		ui.Info("  git config hooks.allownonascii true")
		return failf(exitcode.CheckFailed, "non-ASCII file name")
	}
	return nil
}

// IsPrintableASCII reports whether every byte of s lies in the printable
// ASCII range, space through tilde.
func IsPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
