package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// gitCmd creates a git command with LC_ALL=C to ensure English output for parsing.
func gitCmd(args ...string) *exec.Cmd {
	cmd := exec.Command("git", args...)
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	return cmd
}

// Run executes a git command and returns its trimmed stdout.
// If the command fails, the error includes stderr.
func Run(args ...string) (string, error) {
	out, err := Output(args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Output executes a git command and returns its raw stdout, untrimmed.
// Used where byte positions matter (NUL-separated lists, diffs).
func Output(args ...string) ([]byte, error) {
	cmd := gitCmd(args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return nil, fmt.Errorf("git %s: %s", strings.Join(args, " "), errMsg)
	}

	return stdout.Bytes(), nil
}

// ListZ executes a git command that produces NUL-separated output (a -z
// flag) and returns the entries. NUL separation is the only safe way to
// handle paths containing newlines or arbitrary bytes.
func ListZ(args ...string) ([]string, error) {
	out, err := Output(args...)
	if err != nil {
		return nil, err
	}
	return SplitZ(out), nil
}

// SplitZ splits NUL-separated git output into entries, dropping the
// empty entry after the final NUL.
func SplitZ(out []byte) []string {
	trimmed := strings.TrimSuffix(string(out), "\x00")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\x00")
}

// RunSilent executes a git command and discards all output.
// Returns only whether it succeeded.
func RunSilent(args ...string) error {
	cmd := gitCmd(args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run()
}
