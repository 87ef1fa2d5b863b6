package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prehook/prehook/internal/git"
	"github.com/prehook/prehook/internal/ui"
	"github.com/prehook/prehook/internal/update"
)

var installForce bool

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install prehook as this repository's pre-commit hook",
	Long: `Write a pre-commit hook shim into .git/hooks that execs the prehook
binary. An existing hook that was not written by prehook is left alone
unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the prehook pre-commit hook from this repository",
	Args:  cobra.NoArgs,
	RunE:  runUninstall,
}

func init() {
	installCmd.Flags().BoolVar(&installForce, "force", false, "overwrite an existing pre-commit hook")
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}

// shimMarker identifies hooks written by prehook, so uninstall never
// deletes a hook it doesn't own.
const shimMarker = "# installed by prehook"

// hookShim builds the pre-commit shim script. It execs the binary that
// performed the install; PATH lookup is the fallback when that binary is
// gone (e.g. reinstalled elsewhere).
func hookShim(binary string) string {
	return fmt.Sprintf(`#!/bin/sh
%s
if [ -x %q ]; then
	exec %q run
fi
exec prehook run
`, shimMarker, binary, binary)
}

func hookPath() (string, error) {
	gitDir, err := git.GitDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, "hooks", "pre-commit"), nil
}

func runInstall(cmd *cobra.Command, args []string) error {
	if !git.IsInsideWorkTree() {
		return fmt.Errorf("not inside a git repository")
	}

	path, err := hookPath()
	if err != nil {
		return err
	}

	if git.FileExists(path) && !installForce {
		existing, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !strings.Contains(string(existing), shimMarker) {
			ui.Error("a pre-commit hook already exists at %s", path)
			ui.Info("re-run with --force to overwrite it")
			return fmt.Errorf("hook already installed")
		}
	}

	binary, err := os.Executable()
	if err != nil {
		binary = "prehook"
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(hookShim(binary)), 0755); err != nil {
		return err
	}

	ui.Success("installed %s", path)

	update.Notify(Version)
	return nil
}

func runUninstall(cmd *cobra.Command, args []string) error {
	if !git.IsInsideWorkTree() {
		return fmt.Errorf("not inside a git repository")
	}

	path, err := hookPath()
	if err != nil {
		return err
	}

	if !git.FileExists(path) {
		ui.Info("no pre-commit hook installed")
		return nil
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !strings.Contains(string(existing), shimMarker) {
		ui.Error("the pre-commit hook at %s was not installed by prehook", path)
		return fmt.Errorf("refusing to remove foreign hook")
	}

	if !ui.Confirm(fmt.Sprintf("Remove %s?", path), true) {
		return nil
	}

	if err := os.Remove(path); err != nil {
		return err
	}
	ui.Success("removed %s", path)
	return nil
}
