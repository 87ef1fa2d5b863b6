package git

import "bytes"

// EmptyTree is the hash of git's empty tree object. It serves as the
// comparison target when the repository has no commits yet, so the very
// first commit diffs against an empty repository.
const EmptyTree = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// Against returns the ref staged changes are diffed against: HEAD when it
// exists, the empty-tree sentinel for an initial commit.
func Against() string {
	if RunSilent("rev-parse", "--verify", "HEAD") == nil {
		return "HEAD"
	}
	return EmptyTree
}

// StagedNames returns the paths staged for commit against the given ref,
// restricted to the given diff filter (e.g. "A", "ACM", "ACMR").
func StagedNames(against, filter string) ([]string, error) {
	return ListZ("diff", "--cached", "--name-only", "--diff-filter="+filter, "-z", against)
}

// DiffCheckCached runs git's built-in whitespace validation against the
// staged index. Returns the violation report and false when the check
// fails; the report is empty on success.
func DiffCheckCached(against string) (string, bool) {
	cmd := gitCmd("diff-index", "--check", "--cached", against, "--")

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	return out.String(), err == nil
}
