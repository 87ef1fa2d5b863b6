package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Color shortcuts used throughout the hook output.
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Dim    = color.New(color.FgHiBlack).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
)

// Glyphs used throughout the UI.
const (
	Pass    = "✓"
	Fail    = "✗"
	Warning = "⚠"
)

// All hook output goes to stderr: git owns stdout during a commit, and
// some hosts capture it.

// Error prints an error message with ✗ prefix to stderr.
func Error(format string, args ...any) {
	fmt.Fprintf(os.Stderr, Red(Fail)+" "+format+"\n", args...)
}

// Success prints a success message with ✓ prefix to stderr.
func Success(format string, args ...any) {
	fmt.Fprintf(os.Stderr, Green(Pass)+" "+format+"\n", args...)
}

// Warn prints a warning message to stderr.
func Warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, Yellow(Warning)+"  "+format+"\n", args...)
}

// Info prints a regular message to stderr.
func Info(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Raw writes preformatted text (diff output, linter reports) to stderr
// without any decoration.
func Raw(text string) {
	fmt.Fprint(os.Stderr, text)
}

// Confirm prompts the user with a y/n question on stderr.
// defaultYes: if true, pressing Enter means yes (Y/n); if false, means no (y/N).
func Confirm(message string, defaultYes bool) bool {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}

	fmt.Fprintf(os.Stderr, "%s [%s] ", message, hint)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return defaultYes
	}
	input = strings.TrimSpace(strings.ToLower(input))

	if input == "" {
		return defaultYes
	}
	return input == "y" || input == "yes"
}

// IsTTY reports whether stderr is connected to a terminal.
func IsTTY() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}
