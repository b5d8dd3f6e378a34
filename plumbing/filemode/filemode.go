// Package filemode translates between the stat-derived Unix mode bits
// an IndexEntry carries and the canonical textual mode a tree entry
// stores on disk.
package filemode

import (
	"fmt"
	"io/fs"
	"strconv"
)

// FileMode is a Git tree entry mode.
type FileMode uint32

const (
	Empty      FileMode = 0
	Dir        FileMode = 0o040000
	Regular    FileMode = 0o100644
	Deprecated FileMode = 0o100664
	Executable FileMode = 0o100755
	Symlink    FileMode = 0o120000
	Submodule  FileMode = 0o160000
)

// String renders m the way it is stored in a tree entry: subtrees
// (and only subtrees) drop the leading zero.
func (m FileMode) String() string {
	if m == Dir {
		return "40000"
	}
	return fmt.Sprintf("%06o", uint32(m))
}

// Parse reads a tree-entry mode token back into a FileMode.
func Parse(s string) (FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("filemode: invalid mode %q: %w", s, err)
	}
	if len(s) == 5 {
		// "40000" form: already correct as an octal value (040000).
		return FileMode(v), nil
	}
	return FileMode(v), nil
}

// IsDir reports whether m denotes a subtree.
func (m FileMode) IsDir() bool {
	return m == Dir
}

// FromFileInfo derives the canonical mode for a working-tree entry
// from its os.FileInfo: Dir for a directory, otherwise Regular or
// Executable. Symlinks and submodules are never returned.
func FromFileInfo(info fs.FileInfo) FileMode {
	if info.IsDir() {
		return Dir
	}
	if info.Mode()&0o111 != 0 {
		return Executable
	}
	return Regular
}
