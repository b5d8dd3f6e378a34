package object

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/plumbing/filemode"
)

// TreeEntry is one record within a Tree: a name paired with its mode
// and the hash of the object it names.
type TreeEntry struct {
	Name string
	Mode filemode.FileMode
	Hash plumbing.ObjectHash
}

// Tree is an ordered map of name to {mode, hash}, stored and
// serialized sorted by name.
type Tree struct {
	Entries []TreeEntry
}

func (t *Tree) Type() plumbing.ObjectType { return plumbing.TreeObject }

// sortEntries orders entries by name, matching canonical tree
// ordering.
func sortEntries(entries []TreeEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}

// Serialize renders repeated "<mode> SP <name> NUL <20-byte-hash>"
// records in sorted-name order.
func (t *Tree) Serialize() []byte {
	entries := make([]TreeEntry, len(t.Entries))
	copy(entries, t.Entries)
	sortEntries(entries)

	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(e.Mode.String())
		buf.WriteByte(' ')
		buf.WriteString(e.Name)
		buf.WriteByte(0)
		buf.Write(e.Hash[:])
	}
	return buf.Bytes()
}

// DecodeTree parses repeated tree records until payload is exhausted.
func DecodeTree(payload []byte) (*Tree, error) {
	t := &Tree{}
	for len(payload) > 0 {
		sp := bytes.IndexByte(payload, ' ')
		if sp < 0 {
			return nil, fmt.Errorf("object: tree: missing mode separator")
		}
		mode, err := filemode.Parse(string(payload[:sp]))
		if err != nil {
			return nil, fmt.Errorf("object: tree: %w", err)
		}

		rest := payload[sp+1:]
		nul := bytes.IndexByte(rest, 0)
		if nul < 0 {
			return nil, fmt.Errorf("object: tree: missing name terminator")
		}
		name := string(rest[:nul])

		hashStart := nul + 1
		if hashStart+plumbing.HashSize > len(rest) {
			return nil, fmt.Errorf("object: tree: truncated hash")
		}
		hash, err := plumbing.HashFromBytes(rest[hashStart : hashStart+plumbing.HashSize])
		if err != nil {
			return nil, fmt.Errorf("object: tree: %w", err)
		}

		t.Entries = append(t.Entries, TreeEntry{Name: name, Mode: mode, Hash: hash})
		payload = rest[hashStart+plumbing.HashSize:]
	}

	sortEntries(t.Entries)
	return t, nil
}

// Find looks up name among t's entries.
func (t *Tree) Find(name string) (TreeEntry, bool) {
	for _, e := range t.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return TreeEntry{}, false
}
