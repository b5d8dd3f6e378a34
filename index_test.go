package wyag

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spindlymist/wyag-go/worktree"
)

type IndexSuite struct {
	suite.Suite
}

func TestIndexSuite(t *testing.T) {
	suite.Run(t, new(IndexSuite))
}

func (s *IndexSuite) initRepo() (*Repository, string) {
	dir := s.T().TempDir()
	repo, err := Init(dir)
	s.Require().NoError(err)
	return repo, dir
}

func (s *IndexSuite) TestIndexIsEmptyOnUnbornBranch() {
	repo, _ := s.initRepo()
	idx, err := repo.Index()
	s.Require().NoError(err)
	s.Equal(0, idx.Len())
}

func (s *IndexSuite) TestIndexMissingAfterCommitIsError() {
	repo, dir := s.initRepo()
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi"), 0o644))

	idx, err := repo.Index()
	s.Require().NoError(err)
	s.Require().NoError(idx.Add(worktree.MustWorkPath("a.txt")))
	s.Require().NoError(idx.Write())

	_, err = repo.CreateCommit(idx, CommitMeta{AuthorName: "A", AuthorEmail: "a@b.c", CommitterName: "A", CommitterEmail: "a@b.c"})
	s.Require().NoError(err)

	s.Require().NoError(os.Remove(filepath.Join(dir, ".git", "index")))

	_, err = repo.Index()
	s.ErrorIs(err, ErrIndexMissing)
}

func (s *IndexSuite) TestWriteRejectsEmptyIndex() {
	repo, _ := s.initRepo()
	idx, err := repo.Index()
	s.Require().NoError(err)

	err = idx.Write()
	s.ErrorIs(err, ErrEmptyIndex)
}

func (s *IndexSuite) TestPathsAreSorted() {
	repo, dir := s.initRepo()
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644))
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))

	idx, err := repo.Index()
	s.Require().NoError(err)
	s.Require().NoError(idx.Add(worktree.Root))

	paths := idx.Paths()
	s.Require().Len(paths, 2)
	s.Equal(worktree.MustWorkPath("a.txt"), paths[0])
	s.Equal(worktree.MustWorkPath("b.txt"), paths[1])
}
