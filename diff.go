package wyag

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/go-git/go-billy/v5/util"

	"github.com/spindlymist/wyag-go/plumbing"
	idxfmt "github.com/spindlymist/wyag-go/plumbing/format/index"
	"github.com/spindlymist/wyag-go/plumbing/format/objfile"
	"github.com/spindlymist/wyag-go/plumbing/object"
	"github.com/spindlymist/wyag-go/worktree"
)

// ChangeKind names one of the three unstaged/staged change shapes.
type ChangeKind int

const (
	Created ChangeKind = iota
	Modified
	Deleted
)

func (k ChangeKind) String() string {
	switch k {
	case Created:
		return "created"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Change is one entry in an unstaged or staged change list.
type Change struct {
	Kind ChangeKind
	Path worktree.WorkPath
}

// ListUnstaged computes the difference between the index and the
// working tree within p's cone. When write is true, newly seen or
// modified file contents are written as blob objects as they're
// discovered.
func (idx *Index) ListUnstaged(p worktree.WorkPath, write bool) ([]Change, error) {
	expected := map[worktree.WorkPath]bool{}
	for _, ep := range idx.entriesInCone(p) {
		expected[ep] = true
	}

	var changes []Change

	fsys := idx.repo.WD.FS()
	start := idx.repo.WD.Join(p)

	err := util.Walk(fsys, start, func(rel string, info os.FileInfo, err error) error {
		if err != nil {
			if worktree.IsNotExist(err) && rel == start {
				return nil
			}
			return err
		}
		if info.IsDir() {
			if info.Name() == worktree.MetaDirName {
				return filepath.SkipDir
			}
			return nil
		}

		wp, err := worktree.NewWorkPath(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		delete(expected, wp)

		entry, ok := idx.Get(wp)
		if !ok {
			if _, err := idx.hashWorkingFile(wp, write); err != nil {
				return err
			}
			changes = append(changes, Change{Kind: Created, Path: wp})
			return nil
		}

		if entry.AssumeValid || statMatches(entry, info) {
			return nil
		}

		hash, err := idx.hashWorkingFile(wp, write)
		if err != nil {
			return err
		}
		if hash == entry.Hash {
			return nil
		}
		changes = append(changes, Change{Kind: Modified, Path: wp})
		return nil
	})
	if err != nil && !worktree.IsNotExist(err) {
		return nil, err
	}

	remaining := make([]worktree.WorkPath, 0, len(expected))
	for wp := range expected {
		remaining = append(remaining, wp)
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i] < remaining[j] })
	for _, wp := range remaining {
		changes = append(changes, Change{Kind: Deleted, Path: wp})
	}

	return changes, nil
}

func (idx *Index) hashWorkingFile(p worktree.WorkPath, write bool) (plumbing.ObjectHash, error) {
	f, err := idx.repo.WD.FS().Open(idx.repo.WD.Join(p))
	if err != nil {
		return plumbing.ObjectHash{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return plumbing.ObjectHash{}, err
	}
	blob := &object.Blob{Data: data}
	if write {
		return idx.repo.Objects.Write(blob)
	}
	framed := objfile.Frame(blob.Type(), blob.Serialize())
	return plumbing.ComputeHash(framed), nil
}

// ListStaged computes the difference between the index and tip's
// commit tree within p's cone. A nil tip (unborn branch) is treated as
// an empty tree.
func (idx *Index) ListStaged(p worktree.WorkPath, tip *plumbing.ObjectHash) ([]Change, error) {
	expected := map[worktree.WorkPath]bool{}
	for _, ep := range idx.entriesInCone(p) {
		expected[ep] = true
	}

	var changes []Change

	if tip == nil {
		remaining := make([]worktree.WorkPath, 0, len(expected))
		for wp := range expected {
			remaining = append(remaining, wp)
		}
		sort.Slice(remaining, func(i, j int) bool { return remaining[i] < remaining[j] })
		for _, wp := range remaining {
			changes = append(changes, Change{Kind: Created, Path: wp})
		}
		return changes, nil
	}

	commitObj, err := idx.repo.Objects.ReadAs(*tip, plumbing.CommitObject)
	if err != nil {
		return nil, err
	}
	commit := commitObj.(*object.Commit)

	rootTreeObj, err := idx.repo.Objects.ReadAs(commit.Tree(), plumbing.TreeObject)
	if err != nil {
		return nil, err
	}

	if err := idx.walkStaged(rootTreeObj.(*object.Tree), p, p, expected, &changes); err != nil {
		return nil, err
	}

	remaining := make([]worktree.WorkPath, 0, len(expected))
	for wp := range expected {
		remaining = append(remaining, wp)
	}
	sort.Slice(remaining, func(i, j int) bool { return remaining[i] < remaining[j] })
	for _, wp := range remaining {
		changes = append(changes, Change{Kind: Created, Path: wp})
	}

	return changes, nil
}

// walkStaged descends to the subtree rooted at prefix (a WorkPath
// possibly naming a leaf), matching it against the index. remaining is
// prefix's yet-unconsumed suffix relative to tree; prefix itself is
// always the full path from the repository root, used as the index
// key and in emitted Changes.
func (idx *Index) walkStaged(tree *object.Tree, remaining, prefix worktree.WorkPath, expected map[worktree.WorkPath]bool, changes *[]Change) error {
	if remaining.IsRoot() {
		return idx.walkStagedSubtree(tree, prefix, expected, changes)
	}

	head, rest, ok := remaining.Partition()
	if !ok {
		return idx.walkStagedSubtree(tree, prefix, expected, changes)
	}

	entry, found := tree.Find(head)
	if !found {
		return nil
	}

	if entry.Mode.IsDir() {
		sub, err := idx.repo.Objects.ReadAs(entry.Hash, plumbing.TreeObject)
		if err != nil {
			return err
		}
		return idx.walkStaged(sub.(*object.Tree), rest, prefix, expected, changes)
	}

	delete(expected, prefix)
	if e, ok := idx.Get(prefix); ok {
		if e.Hash != entry.Hash {
			*changes = append(*changes, Change{Kind: Modified, Path: prefix})
		}
	} else {
		*changes = append(*changes, Change{Kind: Deleted, Path: prefix})
	}
	return nil
}

func (idx *Index) walkStagedSubtree(tree *object.Tree, dir worktree.WorkPath, expected map[worktree.WorkPath]bool, changes *[]Change) error {
	for _, entry := range tree.Entries {
		childPath, err := dir.Join(entry.Name)
		if err != nil {
			return err
		}

		if entry.Mode.IsDir() {
			sub, err := idx.repo.Objects.ReadAs(entry.Hash, plumbing.TreeObject)
			if err != nil {
				return err
			}
			if err := idx.walkStagedSubtree(sub.(*object.Tree), childPath, expected, changes); err != nil {
				return err
			}
			continue
		}

		delete(expected, childPath)
		if e, ok := idx.Get(childPath); ok {
			if e.Hash != entry.Hash {
				*changes = append(*changes, Change{Kind: Modified, Path: childPath})
			}
		} else {
			*changes = append(*changes, Change{Kind: Deleted, Path: childPath})
		}
	}
	return nil
}

// statMatches reports whether info matches entry's recorded stat
// fields closely enough to skip a content re-hash.
func statMatches(entry *idxfmt.Entry, info fs.FileInfo) bool {
	if uint32(info.Size()) != entry.Size {
		return false
	}
	mtime := info.ModTime()
	if uint32(mtime.Unix()) != entry.MtimeSeconds {
		return false
	}
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		if uint32(stat.Ino) != entry.Ino || uint32(stat.Dev) != entry.Dev {
			return false
		}
	}
	return true
}
