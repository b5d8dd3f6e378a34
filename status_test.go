package wyag

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spindlymist/wyag-go/worktree"
)

type StatusSuite struct {
	suite.Suite
}

func TestStatusSuite(t *testing.T) {
	suite.Run(t, new(StatusSuite))
}

func (s *StatusSuite) TestHeadTipNilOnUnbornBranch() {
	dir := s.T().TempDir()
	repo, err := Init(dir)
	s.Require().NoError(err)

	tip, err := repo.HeadTip()
	s.Require().NoError(err)
	s.Nil(tip)
}

func (s *StatusSuite) TestComputeStatusReportsUnstagedAndStaged() {
	dir := s.T().TempDir()
	repo, err := Init(dir)
	s.Require().NoError(err)

	s.Require().NoError(os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi"), 0o644))
	idx, err := repo.Index()
	s.Require().NoError(err)

	status, err := repo.ComputeStatus(idx, worktree.Root)
	s.Require().NoError(err)
	s.Len(status.Unstaged, 1)
	s.Empty(status.Staged)

	s.Require().NoError(idx.Add(worktree.Root))
	status, err = repo.ComputeStatus(idx, worktree.Root)
	s.Require().NoError(err)
	s.Empty(status.Unstaged)
	s.Len(status.Staged, 1)
}
