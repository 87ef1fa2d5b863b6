package git

// StashPushKeepIndex stashes working-tree changes, untracked files
// included, while leaving the staged index in place, so checks see
// exactly what will be committed.
func StashPushKeepIndex(message string) error {
	_, err := Run("stash", "push", "--quiet", "--keep-index", "--include-untracked", "-m", message)
	return err
}

// StashPopIndex restores the most recent stash, including its index state.
func StashPopIndex() error {
	_, err := Run("stash", "pop", "--quiet", "--index")
	return err
}

// StashRef returns the commit hash at the top of the stash stack, or ""
// when the stack is empty. Callers use it to confirm a push actually
// created an entry and that a pop would consume that same entry.
func StashRef() string {
	out, err := Run("rev-parse", "--quiet", "--verify", "refs/stash")
	if err != nil {
		return ""
	}
	return out
}

// ResetHard discards all working-tree changes, returning the tree to the
// staged index.
func ResetHard() error {
	_, err := Run("reset", "--hard", "--quiet")
	return err
}
