package wyag

import (
	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/worktree"
)

// Status is the unstaged and staged change lists for a path, as
// reported by the `status` CLI verb.
type Status struct {
	Unstaged []Change
	Staged   []Change
}

// HeadTip resolves the current branch's tip, or nil for an unborn
// branch.
func (r *Repository) HeadTip() (*plumbing.ObjectHash, error) {
	cur, err := r.Branches.Current()
	if err != nil {
		return nil, err
	}
	tip, ok := r.Branches.Tip(cur)
	if !ok {
		return nil, nil
	}
	return &tip, nil
}

// ComputeStatus reports unstaged and staged changes within path's
// cone, without writing any new blob objects.
func (r *Repository) ComputeStatus(idx *Index, path worktree.WorkPath) (Status, error) {
	unstaged, err := idx.ListUnstaged(path, false)
	if err != nil {
		return Status{}, err
	}

	tip, err := r.HeadTip()
	if err != nil {
		return Status{}, err
	}

	staged, err := idx.ListStaged(path, tip)
	if err != nil {
		return Status{}, err
	}

	return Status{Unstaged: unstaged, Staged: staged}, nil
}
