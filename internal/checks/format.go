package checks

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/prehook/prehook/internal/config"
	"github.com/prehook/prehook/internal/exitcode"
	"github.com/prehook/prehook/internal/git"
	"github.com/prehook/prehook/internal/tool"
	"github.com/prehook/prehook/internal/ui"
)

// Verifier checks staged files against the output of an external
// formatter, accumulating a git-applyable patch of the differences.
type Verifier struct {
	cfg   config.FormatConfig
	patch bytes.Buffer
	// noEOL collects staged files lacking a final newline. A line-based
	// patch cannot express that difference (no "\ No newline at end of
	// file" markers), so they are reported directly instead.
	noEOL []string
}

// NewVerifier builds a format verifier from configuration.
func NewVerifier(cfg config.FormatConfig) *Verifier {
	return &Verifier{cfg: cfg}
}

// Check runs the verifier over every staged file. When formatting
// differences exist it writes the accumulated patch to a temp file,
// prints it with apply instructions, and fails the hook.
func (v *Verifier) Check(against string) error {
	bin, err := tool.Resolve(v.cfg.Binary)
	if err != nil {
		ui.Error("%v", err)
		ui.Info("install %s or set format.binary in .prehook.toml", v.cfg.Binary)
		return failf(exitcode.CheckFailed, "formatter unavailable")
	}
	if err := tool.CheckVersion(bin, v.cfg.RequiredVersion); err != nil {
		ui.Error("%v", err)
		return failf(exitcode.CheckFailed, "formatter version mismatch")
	}

	files, err := git.StagedNames(against, "ACMR")
	if err != nil {
		return fmt.Errorf("listing staged files: %w", err)
	}

	sp := ui.NewSpinner("checking format")
	for _, file := range files {
		if v.skip(file) {
			continue
		}
		if err := v.checkFile(bin, file); err != nil {
			sp.Stop()
			return err
		}
	}
	sp.Stop()

	patchFile := PatchPath()
	if v.patch.Len() == 0 && len(v.noEOL) == 0 {
		// Remove a stale patch from an earlier failed run.
		_ = os.Remove(patchFile)
		return nil
	}

	for _, file := range v.noEOL {
		ui.Error("missing final newline: %s", file)
	}

	if v.patch.Len() > 0 {
		if err := os.WriteFile(patchFile, v.patch.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing patch: %w", err)
		}

		ui.Raw(v.patch.String())
		ui.Error("staged files differ from %s output", v.cfg.Binary)
		ui.Info("")
		ui.Info("A patch with the required changes was written to")
		ui.Info("  %s", patchFile)
		ui.Info("Apply it, restage, and commit again:")
		ui.Info("")
		ui.Info("  git apply %s", patchFile)
	}
	return failf(exitcode.CheckFailed, "format check failed")
}

// skip reports whether a staged path is excluded from format checking,
// either by the extension allow-list or a skip pattern.
func (v *Verifier) skip(file string) bool {
	if v.cfg.EffectiveFilterExtensions() && len(v.cfg.Extensions) > 0 {
		if !slices.Contains(v.cfg.Extensions, filepath.Ext(file)) {
			return true
		}
	}
	for _, pattern := range v.cfg.SkipPatterns {
		if ok, _ := doublestar.Match(pattern, file); ok {
			return true
		}
	}
	return false
}

// checkFile formats one file and appends any difference to the patch
// buffer. The formatter writes the canonical form to stdout; the file on
// disk is never touched.
func (v *Verifier) checkFile(bin, file string) error {
	current, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}

	if len(current) > 0 && !bytes.HasSuffix(current, []byte("\n")) {
		v.noEOL = append(v.noEOL, file)
		return nil
	}

	cmd := exec.Command(bin, "-style="+v.cfg.Style, file)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	formatted, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("%s %s: %s", v.cfg.Binary, file, msg)
	}

	diff, err := UnifiedDiff(file, current, formatted)
	if err != nil {
		return fmt.Errorf("diffing %s: %w", file, err)
	}
	v.patch.WriteString(diff)
	return nil
}

// UnifiedDiff renders the difference between a file's current content and
// its formatted form as a unified diff with a/<file> b/<file> headers,
// the shape git apply expects. Identical content yields the empty string.
// Inputs must end with a final newline: the diff is line-based and carries
// no "\ No newline at end of file" markers, so checkFile screens out
// staged files without one.
func UnifiedDiff(file string, current, formatted []byte) (string, error) {
	if bytes.Equal(current, formatted) {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(formatted)),
		FromFile: "a/" + file,
		ToFile:   "b/" + file,
		Context:  3,
	})
}

// PatchPath is the per-user location of the accumulated format patch.
func PatchPath() string {
	user := os.Getenv("USER")
	if user == "" {
		user = "unknown"
	}
	return filepath.Join(os.TempDir(), "prehook-"+user+".patch")
}
