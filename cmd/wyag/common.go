package main

import (
	"errors"

	"github.com/spindlymist/wyag-go"
	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/plumbing/object"
	"github.com/spindlymist/wyag-go/worktree"
)

// ErrDirtyWorktree is returned by operations that would otherwise
// silently discard staged or unstaged changes (switch, restore at
// root), per the reference implementation's documented irreversible
// root-restore behavior.
var ErrDirtyWorktree = errors.New("refusing to proceed: you have unstaged or staged changes")

func requireClean(repo *wyag.Repository) error {
	idx, err := repo.Index()
	if err != nil {
		return err
	}
	st, err := repo.ComputeStatus(idx, worktree.Root)
	if err != nil {
		return err
	}
	if len(st.Staged) > 0 || len(st.Unstaged) > 0 {
		return ErrDirtyWorktree
	}
	return nil
}

func mustCommitTree(repo *wyag.Repository, commitHash plumbing.ObjectHash) plumbing.ObjectHash {
	obj, err := repo.Objects.ReadAs(commitHash, plumbing.CommitObject)
	if err != nil {
		return plumbing.ObjectHash{}
	}
	return obj.(*object.Commit).Tree()
}
