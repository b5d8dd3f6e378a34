package worktree

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type WorkDirSuite struct {
	suite.Suite
}

func TestWorkDirSuite(t *testing.T) {
	suite.Run(t, new(WorkDirSuite))
}

func (s *WorkDirSuite) TestNewWorkDirRoot() {
	dir := s.T().TempDir()
	wd, err := NewWorkDir(dir)
	s.Require().NoError(err)
	s.Equal(dir, wd.Root())
}

func (s *WorkDirSuite) TestCreateAndOpenGitFile() {
	dir := s.T().TempDir()
	wd, err := NewWorkDir(dir)
	s.Require().NoError(err)

	f, err := wd.CreateGitFile("objects/ab/cdef")
	s.Require().NoError(err)
	_, err = f.Write([]byte("payload"))
	s.Require().NoError(err)
	s.Require().NoError(f.Close())

	opened, err := wd.OpenGitFile("objects/ab/cdef")
	s.Require().NoError(err)
	defer opened.Close()

	buf := make([]byte, len("payload"))
	n, err := opened.Read(buf)
	s.Require().NoError(err)
	s.Equal("payload", string(buf[:n]))
}

func (s *WorkDirSuite) TestCanonicalizeWithinRoot() {
	dir := s.T().TempDir()
	wd, err := NewWorkDir(dir)
	s.Require().NoError(err)

	p, err := wd.Canonicalize(dir + "/a/b.txt")
	s.Require().NoError(err)
	s.Equal(WorkPath("a/b.txt"), p)
}

func (s *WorkDirSuite) TestCanonicalizeRootItself() {
	dir := s.T().TempDir()
	wd, err := NewWorkDir(dir)
	s.Require().NoError(err)

	p, err := wd.Canonicalize(dir)
	s.Require().NoError(err)
	s.True(p.IsRoot())
}

func (s *WorkDirSuite) TestCanonicalizeOutsideRoot() {
	dir := s.T().TempDir()
	wd, err := NewWorkDir(dir)
	s.Require().NoError(err)

	_, err = wd.Canonicalize("/completely/different/path")
	s.ErrorIs(err, ErrOutsideWorkingDir)
}

func (s *WorkDirSuite) TestMakeGitDir() {
	dir := s.T().TempDir()
	wd, err := NewWorkDir(dir)
	s.Require().NoError(err)

	s.Require().NoError(wd.MakeGitDir("refs/heads"))

	_, err = wd.MetaFS().Stat("refs/heads")
	s.NoError(err)
}
