// Package tool verifies that the external commands the hook delegates to
// are present and at a supported version before any files are touched.
package tool

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var (
	// ErrNotFound indicates the command is not on PATH or not executable.
	ErrNotFound = errors.New("tool not found")

	// ErrVersionMismatch indicates the command's version output does not
	// contain the required version string.
	ErrVersionMismatch = errors.New("tool version mismatch")
)

// Resolve locates a command on PATH and returns its absolute path.
func Resolve(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return path, nil
}

// CheckVersion runs `<path> --version` and verifies the output contains
// required. An empty required string disables the check.
func CheckVersion(path, required string) error {
	if required == "" {
		return nil
	}
	out, err := exec.Command(path, "--version").CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s --version: %v", ErrNotFound, path, err)
	}
	if !VersionMatches(string(out), required) {
		return fmt.Errorf("%w: %s reports %q, need %q",
			ErrVersionMismatch, path, strings.TrimSpace(string(out)), required)
	}
	return nil
}

// VersionMatches reports whether a tool's version output satisfies the
// required substring.
func VersionMatches(output, required string) bool {
	return strings.Contains(output, required)
}
