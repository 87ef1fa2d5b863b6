package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/prehook/prehook/internal/checks"
	"github.com/prehook/prehook/internal/config"
	"github.com/prehook/prehook/internal/exitcode"
	"github.com/prehook/prehook/internal/git"
	"github.com/prehook/prehook/internal/stash"
	"github.com/prehook/prehook/internal/ui"
)

var (
	runNoStash bool
	runNoColor bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run all pre-commit checks against the staged index",
	Long: `Run the full check chain against the staged index:

  1. Stash unstaged changes (restored when the checks finish)
  2. Reject added filenames with non-ASCII bytes
  3. Check staged changes for whitespace errors
  4. Verify staged sources match the formatter's output
  5. Lint staged Python files

Exit codes: 0 all checks passed; 1 filename, whitespace, or formatting
failure; 2 lint failure.

The installed hook invokes this command, but it can be run by hand at
any time to check the index before committing.`,
	Args: cobra.NoArgs,
	RunE: runChecks,
}

func init() {
	runCmd.Flags().BoolVar(&runNoStash, "no-stash", false, "check the index without stashing unstaged changes")
	runCmd.Flags().BoolVar(&runNoColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(runCmd)
}

func runChecks(cmd *cobra.Command, args []string) error {
	if runNoColor {
		color.NoColor = true
	}

	if !git.IsInsideWorkTree() {
		return fmt.Errorf("not inside a git repository")
	}

	top, err := git.TopLevel()
	if err != nil {
		return err
	}

	// git hands hooks repo-root-relative paths; run from the root so
	// manual invocations from a subdirectory resolve them the same way.
	if err := os.Chdir(top); err != nil {
		return err
	}

	cfg, err := config.Load(top)
	if err != nil {
		ui.Error("%v", err)
		return &checks.Failure{Code: exitcode.UsageError, Msg: "configuration error"}
	}

	against := git.Against()

	if cfg.EffectiveStashEnabled() && !runNoStash {
		guard, err := stash.Acquire("prehook: pre-commit checks")
		if err != nil {
			return err
		}
		defer guard.Release()
	}

	allowNonASCII := cfg.EffectiveAllowNonASCII() || git.ConfigBool("hooks.allownonascii", false)
	if err := checks.Filenames(against, allowNonASCII); err != nil {
		return err
	}

	if err := checks.Whitespace(against); err != nil {
		return err
	}

	if err := checks.NewVerifier(cfg.Format).Check(against); err != nil {
		return err
	}

	if err := checks.Lint(against, cfg.Lint); err != nil {
		return err
	}

	ui.Success("pre-commit checks passed")
	return nil
}
