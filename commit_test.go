package wyag

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/spindlymist/wyag-go/worktree"
)

type CommitSuite struct {
	suite.Suite
}

func TestCommitSuite(t *testing.T) {
	suite.Run(t, new(CommitSuite))
}

func (s *CommitSuite) initRepo() (*Repository, string) {
	dir := s.T().TempDir()
	repo, err := Init(dir)
	s.Require().NoError(err)
	return repo, dir
}

func (s *CommitSuite) TestCreateCommitRefusesEmptyIndex() {
	repo, _ := s.initRepo()
	idx, err := repo.Index()
	s.Require().NoError(err)

	_, err = repo.CreateCommit(idx, CommitMeta{})
	s.ErrorIs(err, ErrEmptyCommit)
}

func (s *CommitSuite) TestCreateCommitAdvancesMaster() {
	repo, dir := s.initRepo()
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi"), 0o644))

	idx, err := repo.Index()
	s.Require().NoError(err)
	s.Require().NoError(idx.Add(worktree.Root))
	s.Require().NoError(idx.Write())

	when := time.Unix(1700000000, 0)
	hash, err := repo.CreateCommit(idx, CommitMeta{
		AuthorName: "A", AuthorEmail: "a@b.c",
		CommitterName: "A", CommitterEmail: "a@b.c",
		Message: "first\n", When: when,
	})
	s.Require().NoError(err)

	tip, err := repo.HeadTip()
	s.Require().NoError(err)
	s.Require().NotNil(tip)
	s.Equal(hash, *tip)
}

func (s *CommitSuite) TestSecondCommitHasFirstAsParent() {
	repo, dir := s.initRepo()
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi"), 0o644))

	idx, err := repo.Index()
	s.Require().NoError(err)
	s.Require().NoError(idx.Add(worktree.Root))
	s.Require().NoError(idx.Write())
	h1, err := repo.CreateCommit(idx, CommitMeta{AuthorName: "A", AuthorEmail: "a@b.c", CommitterName: "A", CommitterEmail: "a@b.c", Message: "one\n"})
	s.Require().NoError(err)

	s.Require().NoError(os.WriteFile(filepath.Join(dir, "b.txt"), []byte("bye"), 0o644))
	idx, err = repo.Index()
	s.Require().NoError(err)
	s.Require().NoError(idx.Add(worktree.Root))
	s.Require().NoError(idx.Write())
	h2, err := repo.CreateCommit(idx, CommitMeta{AuthorName: "A", AuthorEmail: "a@b.c", CommitterName: "A", CommitterEmail: "a@b.c", Message: "two\n"})
	s.Require().NoError(err)

	entries, err := repo.Log(h2)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)

	var sawFirst bool
	for _, e := range entries {
		if e.Hash == h1 {
			sawFirst = true
		}
	}
	s.True(sawFirst)
}
