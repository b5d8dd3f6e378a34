package worktree

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// MetaDirName is the name of the repository metadata directory.
const MetaDirName = ".git"

// ErrOutsideWorkingDir is returned when a filesystem path cannot be
// canonicalized because it lies outside the repository root.
var ErrOutsideWorkingDir = errors.New("worktree: path is outside the working directory")

// WorkDir is the absolute root of a repository's working tree. It
// hands out two billy.Filesystem views rooted respectively at the
// worktree and at its metadata directory, so every other component
// reaches disk through the same abstraction the rest of this module
// uses instead of raw *os* calls.
type WorkDir struct {
	root string
	fs   billy.Filesystem
	meta billy.Filesystem
}

// NewWorkDir roots a WorkDir at root, which must already be an
// absolute, existing directory.
func NewWorkDir(root string) (*WorkDir, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	fsRoot := osfs.New(abs)
	meta, err := fsRoot.Chroot(MetaDirName)
	if err != nil {
		return nil, err
	}
	return &WorkDir{root: abs, fs: fsRoot, meta: meta}, nil
}

// Root returns the absolute working directory path.
func (w *WorkDir) Root() string {
	return w.root
}

// MetaDir returns the absolute path of the metadata directory.
func (w *WorkDir) MetaDir() string {
	return filepath.Join(w.root, MetaDirName)
}

// FS returns the billy.Filesystem rooted at the working tree.
func (w *WorkDir) FS() billy.Filesystem {
	return w.fs
}

// MetaFS returns the billy.Filesystem rooted at the metadata directory.
func (w *WorkDir) MetaFS() billy.Filesystem {
	return w.meta
}

// Join resolves p against the worktree root, returning a path usable
// with FS().
func (w *WorkDir) Join(p WorkPath) string {
	if p.IsRoot() {
		return "."
	}
	return string(p)
}

// GitJoin resolves p against the metadata directory, returning a path
// usable with MetaFS().
func (w *WorkDir) GitJoin(p string) string {
	return filepath.ToSlash(p)
}

// OpenGitFile opens relPath beneath the metadata directory for
// reading.
func (w *WorkDir) OpenGitFile(relPath string) (billy.File, error) {
	return w.meta.Open(w.GitJoin(relPath))
}

// CreateGitFile creates (or truncates) relPath beneath the metadata
// directory, creating parent directories as needed.
func (w *WorkDir) CreateGitFile(relPath string) (billy.File, error) {
	rel := w.GitJoin(relPath)
	if dir := filepath.ToSlash(filepath.Dir(rel)); dir != "." {
		if err := w.meta.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return w.meta.Create(rel)
}

// MakeGitDir creates relPath (and any missing parents) beneath the
// metadata directory.
func (w *WorkDir) MakeGitDir(relPath string) error {
	return w.meta.MkdirAll(w.GitJoin(relPath), 0o755)
}

// Canonicalize maps an absolute or relative filesystem path to a
// WorkPath rooted at w, failing with ErrOutsideWorkingDir if abs does
// not lie within the working directory.
func (w *WorkDir) Canonicalize(path string) (WorkPath, error) {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(w.root, path)
	}
	abs, err := filepath.Abs(abs)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(w.root, abs)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return Root, nil
	}
	if strings.HasPrefix(rel, "..") {
		return "", ErrOutsideWorkingDir
	}
	return NewWorkPath(filepath.ToSlash(rel))
}

// Stat is a thin wrapper so callers needn't import os/billy directly.
func (w *WorkDir) Stat(p WorkPath) (fs.FileInfo, error) {
	return w.fs.Stat(w.Join(p))
}

// IsNotExist reports whether err indicates a missing file, matching
// both os and billy error values.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, fs.ErrNotExist)
}
