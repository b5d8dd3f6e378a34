// Package refs implements the file-backed name to hash table: plain
// hash refs and symbolic "ref: <path>" redirections.
package refs

import (
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/worktree"
)

const redirectPrefix = "ref: "

// NonexistentError is returned when a named ref has no backing file.
type NonexistentError struct {
	Path string
}

func (e *NonexistentError) Error() string {
	return fmt.Sprintf("refs: %s does not exist", e.Path)
}

// CorruptError is returned when a ref's contents are neither a
// redirect nor a valid hash.
type CorruptError struct {
	Path     string
	Contents string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("refs: %s is corrupt: %q", e.Path, e.Contents)
}

// BadChainError wraps the failure of a followed redirect, keeping a
// diagnostic path.
type BadChainError struct {
	Path string
	Next string
	Err  error
}

func (e *BadChainError) Error() string {
	return fmt.Sprintf("refs: %s -> %s: %v", e.Path, e.Next, e.Err)
}

func (e *BadChainError) Unwrap() error { return e.Err }

// Store reads and writes refs beneath a repository's metadata
// directory.
type Store struct {
	wd *worktree.WorkDir
}

// NewStore returns a Store backed by wd's metadata filesystem.
func NewStore(wd *worktree.WorkDir) *Store {
	return &Store{wd: wd}
}

// refPath joins category ("heads", "tags", "remotes") and name into
// the relative path of its backing file, or returns name verbatim for
// a top-level ref such as "HEAD".
func refPath(category, name string) string {
	if category == "" {
		return name
	}
	return path.Join("refs", category, name)
}

// Create writes a new plain-hash ref, overwriting any existing file.
func (s *Store) Create(category, name string, hash plumbing.ObjectHash) error {
	return s.writeRaw(refPath(category, name), hash.String()+"\n")
}

// CreateRedirect writes a ref whose contents point at another ref
// path, relative to the metadata directory (e.g. "refs/heads/master").
func (s *Store) CreateRedirect(category, name, target string) error {
	return s.writeRaw(refPath(category, name), redirectPrefix+target+"\n")
}

func (s *Store) writeRaw(relPath, contents string) error {
	f, err := s.wd.CreateGitFile(relPath)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.WriteString(f, contents)
	return err
}

func (s *Store) readRaw(relPath string) (string, error) {
	f, err := s.wd.OpenGitFile(relPath)
	if err != nil {
		if worktree.IsNotExist(err) {
			return "", &NonexistentError{Path: relPath}
		}
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Resolve reads category/name, following a chain of "ref: " redirects
// until it lands on a plain hash.
func (s *Store) Resolve(category, name string) (plumbing.ObjectHash, error) {
	return s.resolvePath(refPath(category, name))
}

// ResolveHead resolves the top-level HEAD file.
func (s *Store) ResolveHead() (plumbing.ObjectHash, error) {
	return s.resolvePath("HEAD")
}

func (s *Store) resolvePath(relPath string) (plumbing.ObjectHash, error) {
	contents, err := s.readRaw(relPath)
	if err != nil {
		return plumbing.ObjectHash{}, err
	}

	if strings.HasPrefix(contents, redirectPrefix) {
		next := strings.TrimPrefix(contents, redirectPrefix)
		h, err := s.resolvePath(next)
		if err != nil {
			return plumbing.ObjectHash{}, &BadChainError{Path: relPath, Next: next, Err: err}
		}
		return h, nil
	}

	h, err := plumbing.HashFromHex(contents)
	if err != nil {
		return plumbing.ObjectHash{}, &CorruptError{Path: relPath, Contents: contents}
	}
	return h, nil
}

// RawHead returns HEAD's raw trimmed contents, without following any
// redirect, so callers can distinguish Named from Headless.
func (s *Store) RawHead() (string, error) {
	return s.readRaw("HEAD")
}

// WriteRawHead overwrites HEAD's raw contents.
func (s *Store) WriteRawHead(contents string) error {
	return s.writeRaw("HEAD", contents)
}

// Entry is one (name, hash) pair produced by List.
type Entry struct {
	Name string
	Hash plumbing.ObjectHash
}

// List walks the refs/ subtree and returns every ref paired with the
// hash it (transitively) resolves to, using forward-slash names
// relative to refs/.
func (s *Store) List() ([]Entry, error) {
	var out []Entry
	var walk func(dir string) error
	walk = func(dir string) error {
		entries, err := s.wd.MetaFS().ReadDir(dir)
		if err != nil {
			if worktree.IsNotExist(err) {
				return nil
			}
			return err
		}
		for _, e := range entries {
			full := path.Join(dir, e.Name())
			if e.IsDir() {
				if err := walk(full); err != nil {
					return err
				}
				continue
			}
			h, err := s.resolvePath(full)
			if err != nil {
				continue
			}
			name := strings.TrimPrefix(full, "refs/")
			out = append(out, Entry{Name: name, Hash: h})
		}
		return nil
	}
	if err := walk("refs"); err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes category/name's backing file if present. It never
// follows redirects.
func (s *Store) Delete(category, name string) error {
	rel := refPath(category, name)
	err := s.wd.MetaFS().Remove(rel)
	if err != nil && worktree.IsNotExist(err) {
		return nil
	}
	return err
}

// Exists reports whether category/name has a backing file.
func (s *Store) Exists(category, name string) bool {
	_, err := s.wd.MetaFS().Stat(refPath(category, name))
	return err == nil
}
