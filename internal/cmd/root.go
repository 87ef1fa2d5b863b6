package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prehook/prehook/internal/checks"
	"github.com/prehook/prehook/internal/exitcode"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "prehook",
	Short: "Git pre-commit checks",
	Long: `prehook - Git Pre-Commit Checks

Validates the staged index before every commit: added filenames must be
printable ASCII, staged changes must be free of whitespace errors, staged
sources must match the formatter's output, and staged Python files must
pass the linter. Unstaged changes are stashed for the duration of the
checks and restored afterwards, so only what will actually be committed
is examined.

Typical setup:
  prehook install       Install as .git/hooks/pre-commit
  ...commit as usual...

Configuration:
  Add .prehook.toml to your repo root to customize behavior (formatter
  binary and extensions, skip patterns, linter, stashing). See 'prehook
  help run' for details.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
}

// Execute runs the root command. Check failures carry their own exit
// code and have already printed diagnostics; anything else (bad
// invocation, not a repository) prints and exits with the usage band.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if code := checks.ExitCode(err); code >= 0 {
			os.Exit(code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.UsageError)
	}
}

func init() {
	rootCmd.SetVersionTemplate("prehook version {{.Version}}\n")
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}
