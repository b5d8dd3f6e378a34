package wyag

import (
	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/plumbing/filemode"
	idxfmt "github.com/spindlymist/wyag-go/plumbing/format/index"
	"github.com/spindlymist/wyag-go/plumbing/object"
	"github.com/spindlymist/wyag-go/worktree"
)

// BuildTree builds a tree object (and all of its subtrees) from the
// index's full contents and returns the root tree's hash.
func (idx *Index) BuildTree() (plumbing.ObjectHash, error) {
	return idx.buildSubtree(worktree.Root)
}

// buildSubtree enumerates index entries in prefix's cone, grouping
// them by their first remaining path component: a component with no
// further suffix is a leaf, one with a suffix names a subtree that is
// recursed into exactly once (guarded by seen).
func (idx *Index) buildSubtree(prefix worktree.WorkPath) (plumbing.ObjectHash, error) {
	seen := map[string]bool{}
	tree := &object.Tree{}

	for _, p := range idx.entriesInCone(prefix) {
		rel, ok := p.StripPrefix(prefix)
		if !ok || rel.IsRoot() {
			continue
		}

		head, rest, ok := rel.Partition()
		if !ok {
			continue
		}

		if !rest.IsRoot() {
			if seen[head] {
				continue
			}
			seen[head] = true

			childPrefix, err := prefix.Join(head)
			if err != nil {
				return plumbing.ObjectHash{}, err
			}
			hash, err := idx.buildSubtree(childPrefix)
			if err != nil {
				return plumbing.ObjectHash{}, err
			}
			tree.Entries = append(tree.Entries, object.TreeEntry{
				Name: head,
				Mode: filemode.Dir,
				Hash: hash,
			})
			continue
		}

		entry, _ := idx.Get(p)
		tree.Entries = append(tree.Entries, object.TreeEntry{
			Name: head,
			Mode: filemode.FileMode(entry.Mode),
			Hash: entry.Hash,
		})
	}

	return idx.repo.Objects.Write(tree)
}

// TreeToIndex walks the tree rooted at hash and returns an Index whose
// entries carry the tree's blob hashes and modes. Stat fields other
// than size and mode are synthesized as zero; a caller that needs
// accurate stats refreshes them with Add afterward.
func (r *Repository) TreeToIndex(hash plumbing.ObjectHash) (*Index, error) {
	idx := emptyIndex(r)
	if err := r.populateIndexFromTree(idx, hash, worktree.Root); err != nil {
		return nil, err
	}
	return idx, nil
}

func (r *Repository) populateIndexFromTree(idx *Index, hash plumbing.ObjectHash, prefix worktree.WorkPath) error {
	obj, err := r.Objects.ReadAs(hash, plumbing.TreeObject)
	if err != nil {
		return err
	}
	tree := obj.(*object.Tree)

	for _, entry := range tree.Entries {
		childPath, err := prefix.Join(entry.Name)
		if err != nil {
			return err
		}

		if entry.Mode.IsDir() {
			if err := r.populateIndexFromTree(idx, entry.Hash, childPath); err != nil {
				return err
			}
			continue
		}

		blobObj, err := r.Objects.ReadAs(entry.Hash, plumbing.BlobObject)
		if err != nil {
			return err
		}
		blob := blobObj.(*object.Blob)

		idx.byPath[childPath] = indexEntryFromTree(entry, len(blob.Data), childPath)
	}

	return nil
}

// indexEntryFromTree synthesizes an index entry for a tree leaf: only
// Mode, Size, Hash and Path are populated; every other stat field is
// zero.
func indexEntryFromTree(entry object.TreeEntry, size int, path worktree.WorkPath) *idxfmt.Entry {
	return &idxfmt.Entry{
		Mode: uint32(entry.Mode),
		Size: uint32(size),
		Hash: entry.Hash,
		Path: string(path),
	}
}
