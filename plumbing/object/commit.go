package object

import (
	"errors"
	"fmt"

	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/plumbing/kvlm"
)

const (
	kvlmKeyTree      = "tree"
	kvlmKeyParent    = "parent"
	kvlmKeyAuthor    = "author"
	kvlmKeyCommitter = "committer"
)

// ErrMissingTree is returned when a commit's KVLM has no tree entry.
var ErrMissingTree = errors.New("object: commit missing tree")

// Commit is a KVLM exposing typed accessors for tree, parents, and the
// free-form message.
type Commit struct {
	kv *kvlm.KVLM
}

func (c *Commit) Type() plumbing.ObjectType { return plumbing.CommitObject }

func (c *Commit) Serialize() []byte { return c.kv.Serialize() }

// NewCommit builds a commit from its constituent fields.
func NewCommit(tree plumbing.ObjectHash, parents []plumbing.ObjectHash, author, committer, message string) *Commit {
	kv := kvlm.New()
	kv.Set(kvlmKeyTree, tree.String())
	for _, p := range parents {
		kv.Add(kvlmKeyParent, p.String())
	}
	kv.Set(kvlmKeyAuthor, author)
	kv.Set(kvlmKeyCommitter, committer)
	kv.SetMessage(message)
	return &Commit{kv: kv}
}

// DecodeCommit parses payload as a KVLM and validates the shape of its
// tree and parent hashes.
func DecodeCommit(payload []byte) (*Commit, error) {
	kv, err := kvlm.Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("object: commit: %w", err)
	}
	c := &Commit{kv: kv}

	treeHex, ok := kv.First(kvlmKeyTree)
	if !ok {
		return nil, ErrMissingTree
	}
	if _, err := plumbing.HashFromHex(treeHex); err != nil {
		return nil, fmt.Errorf("object: commit: invalid tree hash: %w", err)
	}
	for _, p := range kv.Values(kvlmKeyParent) {
		if _, err := plumbing.HashFromHex(p); err != nil {
			return nil, fmt.Errorf("object: commit: invalid parent hash: %w", err)
		}
	}

	return c, nil
}

// Tree returns the commit's tree hash.
func (c *Commit) Tree() plumbing.ObjectHash {
	treeHex, _ := c.kv.First(kvlmKeyTree)
	h, _ := plumbing.HashFromHex(treeHex)
	return h
}

// Parents returns the commit's parent hashes, in header order.
func (c *Commit) Parents() []plumbing.ObjectHash {
	var out []plumbing.ObjectHash
	for _, p := range c.kv.Values(kvlmKeyParent) {
		h, _ := plumbing.HashFromHex(p)
		out = append(out, h)
	}
	return out
}

// Author returns the raw author header line value.
func (c *Commit) Author() string {
	v, _ := c.kv.First(kvlmKeyAuthor)
	return v
}

// Committer returns the raw committer header line value.
func (c *Commit) Committer() string {
	v, _ := c.kv.First(kvlmKeyCommitter)
	return v
}

// Message returns the commit's free-form message.
func (c *Commit) Message() string {
	return c.kv.Message()
}
