package wyag

import (
	"errors"
	"fmt"
	"time"

	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/plumbing/object"
)

// ErrEmptyCommit is returned by CreateCommit on an index with no
// staged entries.
var ErrEmptyCommit = errors.New("commit: index is empty")

// CommitMeta carries the identity line and message for a new commit.
type CommitMeta struct {
	AuthorName    string
	AuthorEmail   string
	CommitterName string
	CommitterEmail string
	Message       string
	When          time.Time
}

func identityLine(name, email string, when time.Time) string {
	return fmt.Sprintf("%s <%s> %d %s", name, email, when.Unix(), when.Format("-0700"))
}

// CreateCommit builds a tree from idx, gathers the current branch's
// tip (if any) as the sole parent, writes the resulting commit object,
// and advances the current branch (or detached HEAD) to it.
func (r *Repository) CreateCommit(idx *Index, meta CommitMeta) (plumbing.ObjectHash, error) {
	if idx.Len() == 0 {
		return plumbing.ObjectHash{}, ErrEmptyCommit
	}

	treeHash, err := idx.BuildTree()
	if err != nil {
		return plumbing.ObjectHash{}, err
	}

	cur, err := r.Branches.Current()
	if err != nil {
		return plumbing.ObjectHash{}, err
	}

	var parents []plumbing.ObjectHash
	if tip, ok := r.Branches.Tip(cur); ok {
		parents = append(parents, tip)
	}

	author := identityLine(meta.AuthorName, meta.AuthorEmail, meta.When)
	committer := identityLine(meta.CommitterName, meta.CommitterEmail, meta.When)

	commit := object.NewCommit(treeHash, parents, author, committer, meta.Message)

	hash, err := r.Objects.Write(commit)
	if err != nil {
		return plumbing.ObjectHash{}, err
	}

	if err := r.Branches.UpdateCurrent(hash); err != nil {
		return plumbing.ObjectHash{}, err
	}

	return hash, nil
}

// LogEntry is one node visited by Log.
type LogEntry struct {
	Hash   plumbing.ObjectHash
	Commit *object.Commit
}

// Log walks the ancestry of start (following every parent link
// breadth-first, matching IsMerged's own walk) and returns every
// commit reached.
func (r *Repository) Log(start plumbing.ObjectHash) ([]LogEntry, error) {
	var out []LogEntry
	seen := map[plumbing.ObjectHash]bool{}
	queue := []plumbing.ObjectHash{start}

	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		if seen[h] || h.IsZero() {
			continue
		}
		seen[h] = true

		obj, err := r.Objects.ReadAs(h, plumbing.CommitObject)
		if err != nil {
			return nil, err
		}
		commit := obj.(*object.Commit)
		out = append(out, LogEntry{Hash: h, Commit: commit})
		queue = append(queue, commit.Parents()...)
	}

	return out, nil
}
