package object

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spindlymist/wyag-go/plumbing"
)

type CommitSuite struct {
	suite.Suite
}

func TestCommitSuite(t *testing.T) {
	suite.Run(t, new(CommitSuite))
}

func (s *CommitSuite) TestNewCommitRoundTrip() {
	tree := plumbing.ComputeHash([]byte("tree"))
	parent := plumbing.ComputeHash([]byte("parent"))
	c := NewCommit(tree, []plumbing.ObjectHash{parent}, "A <a@example.com> 0 +0000", "A <a@example.com> 0 +0000", "msg\n")

	decoded, err := DecodeCommit(c.Serialize())
	s.Require().NoError(err)
	s.Equal(tree, decoded.Tree())
	s.Equal([]plumbing.ObjectHash{parent}, decoded.Parents())
	s.Equal("msg\n", decoded.Message())
}

func (s *CommitSuite) TestNewCommitNoParents() {
	tree := plumbing.ComputeHash([]byte("tree"))
	c := NewCommit(tree, nil, "A", "A", "root\n")

	decoded, err := DecodeCommit(c.Serialize())
	s.Require().NoError(err)
	s.Empty(decoded.Parents())
}

func (s *CommitSuite) TestDecodeCommitRejectsMissingTree() {
	_, err := DecodeCommit([]byte("author x\n\nmsg"))
	s.ErrorIs(err, ErrMissingTree)
}

func (s *CommitSuite) TestDecodeCommitRejectsBadTreeHash() {
	_, err := DecodeCommit([]byte("tree nothex\n\nmsg"))
	s.Error(err)
}

func (s *CommitSuite) TestMultipleParentsPreserveOrder() {
	tree := plumbing.ComputeHash([]byte("tree"))
	p1 := plumbing.ComputeHash([]byte("p1"))
	p2 := plumbing.ComputeHash([]byte("p2"))
	c := NewCommit(tree, []plumbing.ObjectHash{p1, p2}, "A", "A", "merge\n")

	decoded, err := DecodeCommit(c.Serialize())
	s.Require().NoError(err)
	s.Equal([]plumbing.ObjectHash{p1, p2}, decoded.Parents())
}
