package wyag

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/worktree"
)

type TagSuite struct {
	suite.Suite
}

func TestTagSuite(t *testing.T) {
	suite.Run(t, new(TagSuite))
}

func (s *TagSuite) commitRepo() (*Repository, plumbing.ObjectHash) {
	dir := s.T().TempDir()
	repo, err := Init(dir)
	s.Require().NoError(err)
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi"), 0o644))

	idx, err := repo.Index()
	s.Require().NoError(err)
	s.Require().NoError(idx.Add(worktree.Root))
	s.Require().NoError(idx.Write())

	hash, err := repo.CreateCommit(idx, CommitMeta{AuthorName: "A", AuthorEmail: "a@b.c", CommitterName: "A", CommitterEmail: "a@b.c", Message: "msg\n"})
	s.Require().NoError(err)
	return repo, hash
}

func (s *TagSuite) TestLightweightTagResolvesDirectlyToTarget() {
	repo, hash := s.commitRepo()
	s.Require().NoError(repo.CreateLightweightTag("v1", hash))

	resolved, err := repo.ResolveTag("v1")
	s.Require().NoError(err)
	s.Equal(hash, resolved)
}

func (s *TagSuite) TestAnnotatedTagResolvesToTagObject() {
	repo, hash := s.commitRepo()
	tagHash, err := repo.CreateAnnotatedTag("v2", hash, plumbing.CommitObject, "A <a@b.c> 0 +0000", "release\n")
	s.Require().NoError(err)
	s.NotEqual(hash, tagHash)

	resolved, err := repo.ResolveTag("v2")
	s.Require().NoError(err)
	s.Equal(tagHash, resolved)
}

func (s *TagSuite) TestDeleteTagThenRevParseFails() {
	repo, hash := s.commitRepo()
	s.Require().NoError(repo.CreateLightweightTag("v1", hash))
	s.Require().NoError(repo.DeleteTag("v1"))

	_, err := repo.ResolveTag("v1")
	s.Error(err)

	_, err = repo.Objects.Find("v1")
	s.Error(err)
}

func (s *TagSuite) TestDeleteTagNotFound() {
	repo, _ := s.commitRepo()
	err := repo.DeleteTag("nope")
	s.ErrorIs(err, ErrTagNotFound)
}
