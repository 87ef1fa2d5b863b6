package git

import "os"

// TopLevel returns the absolute path to the repository root.
func TopLevel() (string, error) {
	return Run("rev-parse", "--show-toplevel")
}

// GitDir returns the .git directory path (handles worktrees where .git is a file).
func GitDir() (string, error) {
	return Run("rev-parse", "--git-dir")
}

// IsInsideWorkTree returns true if the current directory is inside a git repo.
func IsInsideWorkTree() bool {
	err := RunSilent("rev-parse", "--is-inside-work-tree")
	return err == nil
}

// ConfigBool reads a boolean git config value. Missing or unparsable keys
// return the default.
func ConfigBool(key string, def bool) bool {
	out, err := Run("config", "--bool", key)
	if err != nil {
		return def
	}
	return out == "true"
}

// FileExists returns true if the path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
