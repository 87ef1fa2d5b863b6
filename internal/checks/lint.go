package checks

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/prehook/prehook/internal/config"
	"github.com/prehook/prehook/internal/exitcode"
	"github.com/prehook/prehook/internal/git"
	"github.com/prehook/prehook/internal/tool"
	"github.com/prehook/prehook/internal/ui"
)

// Lint runs the configured linter over staged Python files. With no
// matching staged files the linter is not invoked at all.
func Lint(against string, cfg config.LintConfig) error {
	files, err := git.StagedNames(against, "ACM")
	if err != nil {
		return fmt.Errorf("listing staged files: %w", err)
	}

	targets := FilterByExtension(files, cfg.Extensions)
	if len(targets) == 0 {
		return nil
	}

	bin, err := tool.Resolve(cfg.Binary)
	if err != nil {
		ui.Error("%v", err)
		ui.Info("install %s or set lint.binary in .prehook.toml", cfg.Binary)
		return failf(exitcode.LintFailed, "linter unavailable")
	}

	cmd := exec.Command(bin, targets...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		ui.Error("%s reported problems", cfg.Binary)
		return failf(exitcode.LintFailed, "lint check failed")
	}
	return nil
}

// FilterByExtension returns the paths whose extension is in exts.
func FilterByExtension(files, exts []string) []string {
	var matched []string
	for _, f := range files {
		if slices.Contains(exts, filepath.Ext(f)) {
			matched = append(matched, f)
		}
	}
	return matched
}
