package worktree

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type WorkPathSuite struct {
	suite.Suite
}

func TestWorkPathSuite(t *testing.T) {
	suite.Run(t, new(WorkPathSuite))
}

func (s *WorkPathSuite) TestNewWorkPathNormalizes() {
	p, err := NewWorkPath("a\\b/./c/")
	s.NoError(err)
	s.Equal(WorkPath("a/b/c"), p)
}

func (s *WorkPathSuite) TestNewWorkPathRejectsAbsolute() {
	_, err := NewWorkPath("/a/b")
	s.ErrorIs(err, ErrAbsolutePath)
}

func (s *WorkPathSuite) TestNewWorkPathRejectsDotDot() {
	_, err := NewWorkPath("a/../b")
	var fce *ForbiddenComponentError
	s.ErrorAs(err, &fce)
	s.Equal("..", fce.Component)
}

func (s *WorkPathSuite) TestNewWorkPathRejectsDotGit() {
	_, err := NewWorkPath("a/.git/config")
	var fce *ForbiddenComponentError
	s.ErrorAs(err, &fce)
	s.Equal(".git", fce.Component)
}

func (s *WorkPathSuite) TestNewWorkPathRejectsInvalidUTF8() {
	_, err := NewWorkPath(string([]byte{0xff, 0xfe}))
	s.ErrorIs(err, ErrInvalidUnicode)
}

func (s *WorkPathSuite) TestRootIsRoot() {
	s.True(Root.IsRoot())
	p, err := NewWorkPath("")
	s.NoError(err)
	s.True(p.IsRoot())
}

func (s *WorkPathSuite) TestJoin() {
	p := MustWorkPath("a/b")
	joined, err := p.Join("c")
	s.NoError(err)
	s.Equal(WorkPath("a/b/c"), joined)

	joined, err = Root.Join("c")
	s.NoError(err)
	s.Equal(WorkPath("c"), joined)

	joined, err = p.Join("")
	s.NoError(err)
	s.Equal(p, joined)
}

func (s *WorkPathSuite) TestPartition() {
	head, rest, ok := MustWorkPath("a/b/c").Partition()
	s.True(ok)
	s.Equal("a", head)
	s.Equal(WorkPath("b/c"), rest)

	_, _, ok = Root.Partition()
	s.False(ok)
}

func (s *WorkPathSuite) TestFileName() {
	s.Equal("c", MustWorkPath("a/b/c").FileName())
	s.Equal("a", MustWorkPath("a").FileName())
	s.Equal("", Root.FileName())
}

func (s *WorkPathSuite) TestParent() {
	s.Equal(WorkPath("a/b"), MustWorkPath("a/b/c").Parent())
	s.Equal(Root, MustWorkPath("a").Parent())
}

func (s *WorkPathSuite) TestStripPrefix() {
	rest, ok := MustWorkPath("a/b/c").StripPrefix(MustWorkPath("a"))
	s.True(ok)
	s.Equal(WorkPath("b/c"), rest)

	rest, ok = MustWorkPath("a/b").StripPrefix(MustWorkPath("a/b"))
	s.True(ok)
	s.Equal(Root, rest)

	_, ok = MustWorkPath("ab/c").StripPrefix(MustWorkPath("a"))
	s.False(ok)

	rest, ok = MustWorkPath("a/b").StripPrefix(Root)
	s.True(ok)
	s.Equal(WorkPath("a/b"), rest)
}

func (s *WorkPathSuite) TestStripSuffix() {
	rest, ok := MustWorkPath("a/b/c").StripSuffix("c")
	s.True(ok)
	s.Equal(WorkPath("a/b"), rest)

	rest, ok = MustWorkPath("c").StripSuffix("c")
	s.True(ok)
	s.Equal(Root, rest)

	_, ok = MustWorkPath("abc").StripSuffix("c")
	s.False(ok)
}

func (s *WorkPathSuite) TestDirRangeOrdering() {
	lo, hi := MustWorkPath("a/b").DirRange()

	s.True(lo < "a/b/c")
	s.True("a/b/c" < hi)
	s.True(hi <= "a/b0")
	s.False(lo < "a/bc" && "a/bc" < hi)
}

func (s *WorkPathSuite) TestDirRangeRoot() {
	lo, hi := Root.DirRange()
	s.Equal("", lo)
	s.True("zzzz" < hi)
}

func (s *WorkPathSuite) TestInCone() {
	dir := MustWorkPath("a/b")
	s.True(MustWorkPath("a/b").InCone(dir))
	s.True(MustWorkPath("a/b/c").InCone(dir))
	s.False(MustWorkPath("a/bc").InCone(dir))
	s.True(MustWorkPath("x").InCone(Root))
}
