// Package stash wraps git's stash in a scoped guard so unstaged changes
// are restored after the hook finishes, whichever check failed.
package stash

import (
	"fmt"

	"github.com/prehook/prehook/internal/git"
	"github.com/prehook/prehook/internal/ui"
)

// Guard represents working-tree state stashed at hook entry. Release
// restores it. A guard acquired over a clean tree releases as a no-op.
type Guard struct {
	active   bool
	released bool
	// stash is the refs/stash commit created at acquire time. Release
	// only ever pops this exact entry, never a pre-existing one.
	stash string
}

// Acquire stashes unstaged working-tree changes (untracked files
// included), keeping the staged index in place, and returns a guard that
// restores them. The guard is active only when git actually created a
// stash entry: popping anything else could consume a stash the user made
// themselves.
func Acquire(message string) (*Guard, error) {
	dirty, err := git.HasUnstagedChanges()
	if err != nil {
		return nil, fmt.Errorf("checking working tree: %w", err)
	}
	if !dirty {
		return &Guard{}, nil
	}

	before := git.StashRef()
	if err := git.StashPushKeepIndex(message); err != nil {
		return nil, fmt.Errorf("stashing unstaged changes: %w", err)
	}
	created := git.StashRef()
	if created == "" || created == before {
		// git found nothing to save; there is no entry of ours to pop.
		return &Guard{}, nil
	}
	return &Guard{active: true, stash: created}, nil
}

// Active reports whether the guard actually stashed anything.
func (g *Guard) Active() bool {
	return g.active
}

// Release restores the stashed changes: hard-reset the tree, capture any
// skip-worktree paths, pop the stash with its index state, then re-flag
// the captured paths (a pop clears the flag). Only the first call acts,
// and only on the entry Acquire created.
//
// A failed pop leaves the changes in the stash rather than half-applied;
// the user is told how to recover instead of the failure being swallowed.
func (g *Guard) Release() {
	if !g.active || g.released {
		return
	}
	g.released = true

	if git.StashRef() != g.stash {
		ui.Error("the stash stack changed while the checks ran; leaving it untouched")
		ui.Warn("restore your unstaged changes with 'git stash pop --index'")
		return
	}

	if err := git.ResetHard(); err != nil {
		ui.Error("resetting working tree: %v", err)
	}

	skipped, err := git.SkipWorktreePaths()
	if err != nil {
		skipped = nil
	}

	if err := git.StashPopIndex(); err != nil {
		ui.Error("restoring stashed changes: %v", err)
		ui.Warn("your unstaged changes are still stashed; resolve and run 'git stash pop --index'")
		return
	}

	for _, path := range skipped {
		if err := git.SetSkipWorktree(path); err != nil {
			ui.Warn("could not restore skip-worktree flag on %s", path)
		}
	}
}
