package git

import "strings"

// FileChange represents a single file change from git status --porcelain.
type FileChange struct {
	Status string // Two-character status (e.g., "M ", " M", "??", "R ")
	Path   string
	// For renames: original path
	OldPath string
}

// Unstaged reports whether the change includes working-tree modifications
// not captured in the index: a non-space worktree column, or an untracked
// file.
func (f FileChange) Unstaged() bool {
	if f.Status == "??" {
		return true
	}
	return len(f.Status) == 2 && f.Status[1] != ' '
}

// HasUnstagedChanges reports whether the working tree differs from the
// staged index, counting untracked files.
func HasUnstagedChanges() (bool, error) {
	out, err := Run("status", "--porcelain")
	if err != nil {
		return false, err
	}
	for _, fc := range ParsePorcelain(out) {
		if fc.Unstaged() {
			return true, nil
		}
	}
	return false, nil
}

// ParsePorcelain parses git status --porcelain output into file changes.
func ParsePorcelain(out string) []FileChange {
	if strings.TrimSpace(out) == "" {
		return nil
	}

	var changes []FileChange
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 3 {
			continue
		}
		status := line[:2]
		path := line[3:]

		fc := FileChange{Status: status}

		// Handle renames: "R  old -> new"
		if strings.HasPrefix(status, "R") && strings.Contains(path, " -> ") {
			parts := strings.SplitN(path, " -> ", 2)
			fc.OldPath = parts[0]
			fc.Path = parts[1]
		} else {
			fc.Path = path
		}

		changes = append(changes, fc)
	}

	return changes
}
