package wyag

import (
	"os"
	"syscall"

	"github.com/go-git/go-billy/v5/util"

	"github.com/spindlymist/wyag-go/plumbing"
	idxfmt "github.com/spindlymist/wyag-go/plumbing/format/index"
	"github.com/spindlymist/wyag-go/worktree"
)

// Add computes an unstaged change list rooted at path with writes
// enabled, then applies it to the index: created/modified files are
// (re)staged with a fresh stat and hash, deleted files are unstaged.
// Add(".") therefore both ingests edits and prunes deletions in one
// pass.
func (idx *Index) Add(path worktree.WorkPath) error {
	changes, err := idx.ListUnstaged(path, true)
	if err != nil {
		return err
	}

	for _, c := range changes {
		switch c.Kind {
		case Deleted:
			delete(idx.byPath, c.Path)
		case Created, Modified:
			entry, err := idx.statEntry(c.Path)
			if err != nil {
				return err
			}
			idx.byPath[c.Path] = entry
		}
	}

	return nil
}

func (idx *Index) statEntry(path worktree.WorkPath) (*idxfmt.Entry, error) {
	info, err := idx.repo.WD.FS().Stat(idx.repo.WD.Join(path))
	if err != nil {
		return nil, err
	}

	hash, err := idx.hashWorkingFile(path, true)
	if err != nil {
		return nil, err
	}

	entry := &idxfmt.Entry{
		MtimeSeconds:     uint32(info.ModTime().Unix()),
		MtimeNanoseconds: uint32(info.ModTime().Nanosecond()),
		Size:             uint32(info.Size()),
		Hash:             hash,
		Path:             string(path),
	}
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		entry.CtimeSeconds = uint32(stat.Ctim.Sec)
		entry.CtimeNanoseconds = uint32(stat.Ctim.Nsec)
		entry.Dev = uint32(stat.Dev)
		entry.Ino = uint32(stat.Ino)
		entry.UID = stat.Uid
		entry.GID = stat.Gid
	}
	entry.Mode = uint32(modeForStat(info))

	return entry, nil
}

func modeForStat(info os.FileInfo) uint32 {
	if info.Mode()&0o111 != 0 {
		return 0o100755
	}
	return 0o100644
}

// Remove deletes path from the working tree and index. It refuses
// with ErrUncommittedChanges if path has any pending unstaged or
// staged change.
func (idx *Index) Remove(path worktree.WorkPath, tip *plumbing.ObjectHash) error {
	unstaged, err := idx.ListUnstaged(path, false)
	if err != nil {
		return err
	}
	if len(unstaged) > 0 {
		return ErrUncommittedChanges
	}

	staged, err := idx.ListStaged(path, tip)
	if err != nil {
		return err
	}
	if len(staged) > 0 {
		return ErrUncommittedChanges
	}

	rel := idx.repo.WD.Join(path)
	if err := util.RemoveAll(idx.repo.WD.FS(), rel); err != nil && !worktree.IsNotExist(err) {
		return err
	}

	if _, ok := idx.Get(path); ok {
		delete(idx.byPath, path)
		return nil
	}

	lo, hi := path.DirRange()
	for p := range idx.byPath {
		s := string(p)
		if s >= lo && s < hi {
			delete(idx.byPath, p)
		}
	}

	return nil
}
