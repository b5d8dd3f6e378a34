package wyag

import (
	"io/fs"
	"path/filepath"

	"github.com/go-git/go-billy/v5/util"

	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/plumbing/object"
	"github.com/spindlymist/wyag-go/worktree"
)

// RestoreFromCommit restores target (root, a subtree entry, or a
// blob entry named within the commit's tree) into the working
// directory.
//
// Restoring the root is irreversible: it deletes the working
// directory's entire contents outside .git before rebuilding them from
// the tree. This is preserved exactly; callers that want a safety
// check (staged/unstaged changes present) must perform it themselves
// before calling this function -- see cmd/wyag's switch/restore
// commands.
func (r *Repository) RestoreFromCommit(commitHash plumbing.ObjectHash, target worktree.WorkPath) error {
	commitObj, err := r.Objects.ReadAs(commitHash, plumbing.CommitObject)
	if err != nil {
		return err
	}
	commit := commitObj.(*object.Commit)

	if target.IsRoot() {
		return r.restoreRoot(commit.Tree())
	}

	entry, err := r.findTreeEntry(commit.Tree(), target)
	if err != nil {
		return err
	}

	rel := r.WD.Join(target)
	fsys := r.WD.FS()

	if entry.Mode.IsDir() {
		if err := util.RemoveAll(fsys, rel); err != nil && !worktree.IsNotExist(err) {
			return err
		}
		if err := fsys.MkdirAll(rel, 0o755); err != nil {
			return err
		}
		return r.restoreSubtree(entry.Hash, rel)
	}

	if err := fsys.Remove(rel); err != nil && !worktree.IsNotExist(err) {
		return err
	}
	if dir := filepath.Dir(rel); dir != "." {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return r.writeBlobFile(entry.Hash, rel)
}

func (r *Repository) restoreRoot(treeHash plumbing.ObjectHash) error {
	fsys := r.WD.FS()

	entries, err := fsys.ReadDir(".")
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Name() == worktree.MetaDirName {
			continue
		}
		if err := util.RemoveAll(fsys, e.Name()); err != nil {
			return err
		}
	}
	return r.restoreSubtree(treeHash, ".")
}

// restoreSubtree recursively materializes the tree at hash beneath
// dir (a path relative to the working directory's billy.Filesystem),
// which must already exist (or be the repository root).
func (r *Repository) restoreSubtree(hash plumbing.ObjectHash, dir string) error {
	obj, err := r.Objects.ReadAs(hash, plumbing.TreeObject)
	if err != nil {
		return err
	}
	tree := obj.(*object.Tree)
	fsys := r.WD.FS()

	for _, entry := range tree.Entries {
		childPath := filepath.Join(dir, entry.Name)
		if entry.Mode.IsDir() {
			if err := fsys.MkdirAll(childPath, 0o755); err != nil {
				return err
			}
			if err := r.restoreSubtree(entry.Hash, childPath); err != nil {
				return err
			}
			continue
		}
		if err := r.writeBlobFile(entry.Hash, childPath); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) writeBlobFile(hash plumbing.ObjectHash, path string) error {
	obj, err := r.Objects.ReadAs(hash, plumbing.BlobObject)
	if err != nil {
		return err
	}
	blob := obj.(*object.Blob)
	return util.WriteFile(r.WD.FS(), path, blob.Data, 0o644)
}

// findTreeEntry resolves target within the tree rooted at treeHash,
// returning the leaf (or subtree) entry it names.
func (r *Repository) findTreeEntry(treeHash plumbing.ObjectHash, target worktree.WorkPath) (object.TreeEntry, error) {
	obj, err := r.Objects.ReadAs(treeHash, plumbing.TreeObject)
	if err != nil {
		return object.TreeEntry{}, err
	}
	tree := obj.(*object.Tree)

	head, rest, ok := target.Partition()
	if !ok {
		return object.TreeEntry{}, worktree.ErrOutsideWorkingDir
	}

	entry, found := tree.Find(head)
	if !found {
		return object.TreeEntry{}, fs.ErrNotExist
	}

	if rest.IsRoot() {
		return entry, nil
	}

	return r.findTreeEntry(entry.Hash, rest)
}
