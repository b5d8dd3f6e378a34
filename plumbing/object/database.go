package object

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spindlymist/wyag-go/internal/trace"
	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/plumbing/format/objfile"
	"github.com/spindlymist/wyag-go/plumbing/refs"
	"github.com/spindlymist/wyag-go/worktree"
)

// ErrInvalidID is returned when Find's identifier union is empty.
var ErrInvalidID = errors.New("object: invalid identifier")

// AmbiguousIDError is returned when Find's identifier union has more
// than one element.
type AmbiguousIDError struct {
	Matches []plumbing.ObjectHash
}

func (e *AmbiguousIDError) Error() string {
	return fmt.Sprintf("object: ambiguous identifier, %d matches", len(e.Matches))
}

// Database is the content-addressed object store rooted at a
// repository's metadata directory.
type Database struct {
	wd   *worktree.WorkDir
	refs *refs.Store
}

// NewDatabase returns a Database backed by wd's metadata filesystem.
func NewDatabase(wd *worktree.WorkDir) *Database {
	return &Database{wd: wd, refs: refs.NewStore(wd)}
}

func objectPath(h plumbing.ObjectHash) string {
	dir, file := h.ShardPath()
	return "objects/" + dir + "/" + file
}

// Read loads and decodes the object stored under hash.
func (db *Database) Read(hash plumbing.ObjectHash) (Object, error) {
	f, err := db.wd.MetaFS().Open(objectPath(hash))
	if err != nil {
		return nil, fmt.Errorf("object: read %s: %w", hash, err)
	}
	defer f.Close()

	t, payload, err := objfile.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("object: read %s: %w", hash, err)
	}

	obj, err := Decode(t, payload)
	if err != nil {
		return nil, fmt.Errorf("object: read %s: %w", hash, err)
	}

	trace.Object.Printf("read object %s (%s)", hash, t)
	return obj, nil
}

// ReadAs loads hash and asserts it has the expected type.
func (db *Database) ReadAs(hash plumbing.ObjectHash, expected plumbing.ObjectType) (Object, error) {
	obj, err := db.Read(hash)
	if err != nil {
		return nil, err
	}
	if obj.Type() != expected {
		return nil, &UnexpectedFormatError{Got: obj.Type(), Expected: expected}
	}
	return obj, nil
}

// Write computes obj's hash and, only if the corresponding file does
// not already exist, deflate-writes its framed bytes. Repeated writes
// of identical content are no-ops, making the store deduplicating and
// idempotent.
func (db *Database) Write(obj Object) (plumbing.ObjectHash, error) {
	framed := objfile.Frame(obj.Type(), obj.Serialize())
	hash := plumbing.ComputeHash(framed)

	path := objectPath(hash)
	if _, err := db.wd.MetaFS().Stat(path); err == nil {
		trace.Object.Printf("write %s: already present, skipping", hash)
		return hash, nil
	} else if !worktree.IsNotExist(err) {
		return hash, err
	}

	compressed, err := objfile.Encode(framed)
	if err != nil {
		return hash, err
	}

	dir, _ := hash.ShardPath()
	if err := db.wd.MetaFS().MkdirAll("objects/"+dir, 0o755); err != nil {
		return hash, err
	}

	f, err := db.wd.MetaFS().Create(path)
	if err != nil {
		return hash, err
	}
	defer f.Close()

	if _, err := f.Write(compressed); err != nil {
		return hash, err
	}

	trace.Object.Printf("wrote %s (%s, %d bytes)", hash, obj.Type(), len(framed))
	return hash, nil
}

// Find resolves id against the union of identifier sources described
// by the object-resolution contract: full hex, hex prefix, HEAD, a
// local branch, a remote branch, or a tag.
func (db *Database) Find(id string) (plumbing.ObjectHash, error) {
	matches := map[plumbing.ObjectHash]bool{}

	if h, err := plumbing.HashFromHex(id); err == nil {
		matches[h] = true
	}

	if len(id) >= 4 && len(id) < 40 && isHexPrefix(id) {
		for _, h := range db.findByPrefix(id) {
			matches[h] = true
		}
	}

	if id == "HEAD" {
		if h, err := db.refs.ResolveHead(); err == nil {
			matches[h] = true
		}
	}

	if h, err := db.refs.Resolve("heads", id); err == nil {
		matches[h] = true
	}
	if h, err := db.refs.Resolve("remotes", id); err == nil {
		matches[h] = true
	}
	if h, err := db.refs.Resolve("tags", id); err == nil {
		matches[h] = true
	}

	switch len(matches) {
	case 0:
		return plumbing.ObjectHash{}, ErrInvalidID
	case 1:
		for h := range matches {
			return h, nil
		}
	}

	list := make([]plumbing.ObjectHash, 0, len(matches))
	for h := range matches {
		list = append(list, h)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Less(list[j]) })
	return plumbing.ObjectHash{}, &AmbiguousIDError{Matches: list}
}

func isHexPrefix(s string) bool {
	for _, r := range s {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')) {
			return false
		}
	}
	return true
}

func (db *Database) findByPrefix(prefix string) []plumbing.ObjectHash {
	if len(prefix) < 2 {
		return nil
	}
	dir := strings.ToLower(prefix[:2])
	rest := strings.ToLower(prefix[2:])

	entries, err := db.wd.MetaFS().ReadDir("objects/" + dir)
	if err != nil {
		return nil
	}

	var out []plumbing.ObjectHash
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), rest) {
			if h, err := plumbing.HashFromHex(dir + e.Name()); err == nil {
				out = append(out, h)
			}
		}
	}
	return out
}

// Refs exposes the database's ref store, since branch/refs resolution
// is otherwise private to Find.
func (db *Database) Refs() *refs.Store {
	return db.refs
}
