package wyag

import (
	"errors"
	"sort"

	"github.com/spindlymist/wyag-go/internal/trace"
	idxfmt "github.com/spindlymist/wyag-go/plumbing/format/index"
	"github.com/spindlymist/wyag-go/worktree"
)

// ErrEmptyIndex is returned by Write on an index with no entries.
var ErrEmptyIndex = errors.New("index: empty")

// ErrUncommittedChanges is returned by Remove when the target path has
// pending unstaged or staged changes.
var ErrUncommittedChanges = errors.New("index: uncommitted changes")

// Index is the business-logic wrapper around the binary staging file:
// an ordered map from WorkPath to entry, backed by a repository.
type Index struct {
	repo    *Repository
	version uint32
	byPath  map[worktree.WorkPath]*idxfmt.Entry
	extData []byte
}

// newIndex wraps raw into an Index bound to repo.
func newIndex(repo *Repository, raw *idxfmt.Index) (*Index, error) {
	idx := &Index{
		repo:    repo,
		version: raw.Version,
		byPath:  map[worktree.WorkPath]*idxfmt.Entry{},
		extData: raw.ExtData,
	}
	for _, e := range raw.Entries {
		p, err := worktree.NewWorkPath(e.Path)
		if err != nil {
			return nil, err
		}
		idx.byPath[p] = e
	}
	return idx, nil
}

// emptyIndex returns a fresh, empty Index at the highest supported
// version.
func emptyIndex(repo *Repository) *Index {
	return &Index{
		repo:    repo,
		version: idxfmt.MaxSupportedVersion,
		byPath:  map[worktree.WorkPath]*idxfmt.Entry{},
	}
}

// Index parses the repository's existing index file, or returns a
// fresh empty index if HEAD is unborn, or fails ErrIndexMissing if
// HEAD has a tip but the index file is gone.
func (r *Repository) Index() (*Index, error) {
	f, err := r.WD.OpenGitFile("index")
	if err == nil {
		defer f.Close()
		raw, err := idxfmt.Decode(f)
		if err != nil {
			return nil, err
		}
		return newIndex(r, raw)
	}
	if !worktree.IsNotExist(err) {
		return nil, err
	}

	cur, err := r.Branches.Current()
	if err != nil {
		return nil, err
	}
	if _, ok := r.Branches.Tip(cur); ok {
		return nil, ErrIndexMissing
	}
	return emptyIndex(r), nil
}

// Len returns the number of staged entries.
func (idx *Index) Len() int {
	return len(idx.byPath)
}

// Paths returns every staged WorkPath in sorted order.
func (idx *Index) Paths() []worktree.WorkPath {
	out := make([]worktree.WorkPath, 0, len(idx.byPath))
	for p := range idx.byPath {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasExtData reports whether idx carries a trailing extension block
// that this implementation round-trips but does not interpret.
func (idx *Index) HasExtData() bool {
	return len(idx.extData) > 0
}

// Get returns the entry staged at p, if any.
func (idx *Index) Get(p worktree.WorkPath) (*idxfmt.Entry, bool) {
	e, ok := idx.byPath[p]
	return e, ok
}

// ReplaceEntry overwrites (or inserts) the entry staged at p.
func (idx *Index) ReplaceEntry(p worktree.WorkPath, e *idxfmt.Entry) {
	idx.byPath[p] = e
}

// entriesInCone returns every staged entry lying within dir's cone,
// in sorted order.
func (idx *Index) entriesInCone(dir worktree.WorkPath) []worktree.WorkPath {
	var out []worktree.WorkPath
	for p := range idx.byPath {
		if p.InCone(dir) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Write serializes idx back to the repository's index file. It
// refuses on an empty index: an empty write is almost always an
// accidental `add`/`commit` against an unpopulated worktree rather
// than a deliberate one. Remove legitimately empties the index (the
// last tracked file was `rm`'d) and must go through WriteAllowEmpty
// instead.
func (idx *Index) Write() error {
	if len(idx.byPath) == 0 {
		return ErrEmptyIndex
	}
	return idx.write()
}

// WriteAllowEmpty serializes idx back to the repository's index file,
// persisting a 0-entry DIRC index when the last tracked path has been
// removed.
func (idx *Index) WriteAllowEmpty() error {
	return idx.write()
}

func (idx *Index) write() error {
	// extData is carried through rather than dropped: this module never
	// produces one on its own writes, so the only way idx.extData is
	// non-empty is an index decoded from a real git repository, and
	// re-emitting its tail unmodified is harmless as long as the entry
	// table above it is unchanged. Once entries are added/removed the
	// checksum a real git wrote over (entries + extData) is already
	// stale regardless, so this only matters for byte-for-byte no-op
	// round trips.
	raw := &idxfmt.Index{Version: idx.version, ExtData: idx.extData}
	for _, p := range idx.Paths() {
		raw.Entries = append(raw.Entries, idx.byPath[p])
	}

	f, err := idx.repo.WD.CreateGitFile("index")
	if err != nil {
		return err
	}
	defer f.Close()

	if err := idxfmt.Encode(f, raw); err != nil {
		return err
	}

	trace.Index.Printf("wrote index with %d entries", len(raw.Entries))
	return nil
}
