// Package branch implements Named/Headless HEAD semantics, branch tip
// lookup and mutation, and the ancestry walk used to decide
// branch-delete safety.
package branch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/plumbing/object"
	"github.com/spindlymist/wyag-go/plumbing/refs"
)

const headsCategory = "heads"
const namedPrefix = "ref: refs/heads/"

// ErrUnrecognizedHeadRef is returned when HEAD's contents are neither
// a local-branch redirect nor a bare hash (including remote-tracking
// redirects, which are not recognized here).
var ErrUnrecognizedHeadRef = errors.New("branch: unrecognized HEAD contents")

// ErrAlreadyExists is returned by Create when the branch ref exists.
var ErrAlreadyExists = errors.New("branch: already exists")

// ErrNonexistent is returned when a named branch has no tip.
var ErrNonexistent = errors.New("branch: does not exist")

// ErrCheckedOut is returned by Delete when name is the current named
// branch.
var ErrCheckedOut = errors.New("branch: checked out")

// ErrPossiblyUnmerged is returned by Delete when the branch might not
// be fully merged -- including, by design, whenever HEAD is detached;
// see the Delete doc comment.
var ErrPossiblyUnmerged = errors.New("branch: possibly unmerged")

// ErrBrokenCommitGraph is returned when IsMerged follows a parent link
// to a non-commit object.
var ErrBrokenCommitGraph = errors.New("branch: broken commit graph")

// Branch is either Named (a local branch name) or Headless (a
// detached HEAD carrying a hash directly).
type Branch struct {
	Name   string // empty when Headless
	Hash   plumbing.ObjectHash
	Detach bool
}

// IsNamed reports whether b refers to a local branch by name.
func (b Branch) IsNamed() bool { return !b.Detach }

// Store exposes branch and HEAD operations over a ref store and
// object database.
type Store struct {
	refs *refs.Store
	objs *object.Database
}

// NewStore returns a branch Store.
func NewStore(r *refs.Store, o *object.Database) *Store {
	return &Store{refs: r, objs: o}
}

// Current parses HEAD.
func (s *Store) Current() (Branch, error) {
	raw, err := s.refs.RawHead()
	if err != nil {
		return Branch{}, err
	}

	if strings.HasPrefix(raw, namedPrefix) {
		return Branch{Name: strings.TrimPrefix(raw, namedPrefix)}, nil
	}

	if h, err := plumbing.HashFromHex(raw); err == nil {
		return Branch{Hash: h, Detach: true}, nil
	}

	return Branch{}, ErrUnrecognizedHeadRef
}

// Tip returns b's current tip hash, or ok=false for an unborn named
// branch.
func (s *Store) Tip(b Branch) (hash plumbing.ObjectHash, ok bool) {
	if b.Detach {
		return b.Hash, true
	}
	h, err := s.refs.Resolve(headsCategory, b.Name)
	if err != nil {
		var ne *refs.NonexistentError
		if errors.As(err, &ne) {
			return plumbing.ObjectHash{}, false
		}
		return plumbing.ObjectHash{}, false
	}
	return h, true
}

// Create writes a new branch ref, failing ErrAlreadyExists if name is
// already taken.
func (s *Store) Create(name string, hash plumbing.ObjectHash) error {
	if s.refs.Exists(headsCategory, name) {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	}
	return s.refs.Create(headsCategory, name, hash)
}

// Update overwrites name's tip.
func (s *Store) Update(name string, hash plumbing.ObjectHash) error {
	return s.refs.Create(headsCategory, name, hash)
}

// UpdateCurrent advances the current branch (or, if detached, HEAD
// itself) to hash.
func (s *Store) UpdateCurrent(hash plumbing.ObjectHash) error {
	cur, err := s.Current()
	if err != nil {
		return err
	}
	if cur.IsNamed() {
		return s.Update(cur.Name, hash)
	}
	return s.refs.WriteRawHead(hash.String() + "\n")
}

// Delete removes branch name. It fails ErrCheckedOut if name is the
// current named branch, and ErrPossiblyUnmerged if either HEAD is
// detached or name is not fully merged into the current branch.
//
// A detached HEAD always yields ErrPossiblyUnmerged here, regardless
// of whether name actually is merged -- this mirrors the reference
// behavior exactly and is not an oversight.
func (s *Store) Delete(name string) error {
	cur, err := s.Current()
	if err != nil {
		return err
	}

	if !cur.IsNamed() {
		return ErrPossiblyUnmerged
	}
	if cur.Name == name {
		return ErrCheckedOut
	}

	merged, err := s.IsMerged(name, cur.Name)
	if err != nil {
		return err
	}
	if !merged {
		return ErrPossiblyUnmerged
	}

	return s.refs.Delete(headsCategory, name)
}

// IsMerged reports whether name's tip is reachable from into's tip via
// a breadth-first walk of the commit graph.
func (s *Store) IsMerged(name, into string) (bool, error) {
	targetTip, ok := s.Tip(Branch{Name: name})
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNonexistent, name)
	}
	intoTip, ok := s.Tip(Branch{Name: into})
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNonexistent, into)
	}

	if targetTip == intoTip {
		return true, nil
	}

	seen := map[plumbing.ObjectHash]bool{}
	queue := []plumbing.ObjectHash{intoTip}

	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		if seen[h] {
			continue
		}
		seen[h] = true

		if h == targetTip {
			return true, nil
		}

		obj, err := s.objs.Read(h)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrBrokenCommitGraph, err)
		}
		commit, ok := obj.(*object.Commit)
		if !ok {
			return false, fmt.Errorf("%w: %s is not a commit", ErrBrokenCommitGraph, h)
		}
		queue = append(queue, commit.Parents()...)
	}

	return false, nil
}

// Switch points HEAD at b.
func (s *Store) Switch(b Branch) error {
	if b.IsNamed() {
		return s.refs.WriteRawHead(namedPrefix + b.Name + "\n")
	}
	return s.refs.WriteRawHead(b.Hash.String() + "\n")
}
