package git

import "strings"

// SkipWorktreePaths returns the paths currently flagged skip-worktree.
// A stash pop clears the flag, so callers capture the set beforehand and
// re-apply it afterwards.
func SkipWorktreePaths() ([]string, error) {
	out, err := Run("ls-files", "-v")
	if err != nil {
		return nil, err
	}
	return ParseSkipWorktree(out), nil
}

// ParseSkipWorktree extracts skip-worktree paths from `git ls-files -v`
// output. Flagged entries carry an "S" tag ("s" when combined with
// assume-unchanged).
func ParseSkipWorktree(out string) []string {
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 3 {
			continue
		}
		if line[0] != 'S' && line[0] != 's' {
			continue
		}
		paths = append(paths, line[2:])
	}
	return paths
}

// SetSkipWorktree re-applies the skip-worktree flag to a path.
func SetSkipWorktree(path string) error {
	return RunSilent("update-index", "--skip-worktree", "--", path)
}
