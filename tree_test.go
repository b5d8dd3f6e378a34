package wyag

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/plumbing/object"
	"github.com/spindlymist/wyag-go/worktree"
)

type TreeSuite struct {
	suite.Suite
}

func TestTreeSuite(t *testing.T) {
	suite.Run(t, new(TreeSuite))
}

func (s *TreeSuite) initRepo() (*Repository, string) {
	dir := s.T().TempDir()
	repo, err := Init(dir)
	s.Require().NoError(err)
	return repo, dir
}

func (s *TreeSuite) TestBuildTreeNestsSubtrees() {
	repo, dir := s.initRepo()
	s.Require().NoError(os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "sub", "nested.txt"), []byte("x"), 0o644))
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "top.txt"), []byte("y"), 0o644))

	idx, err := repo.Index()
	s.Require().NoError(err)
	s.Require().NoError(idx.Add(worktree.Root))

	rootHash, err := idx.BuildTree()
	s.Require().NoError(err)

	rootObj, err := repo.Objects.ReadAs(rootHash, plumbing.TreeObject)
	s.Require().NoError(err)
	rootTree := rootObj.(*object.Tree)

	subEntry, ok := rootTree.Find("sub")
	s.Require().True(ok)
	s.True(subEntry.Mode.IsDir())

	topEntry, ok := rootTree.Find("top.txt")
	s.Require().True(ok)
	s.False(topEntry.Mode.IsDir())

	subObj, err := repo.Objects.ReadAs(subEntry.Hash, plumbing.TreeObject)
	s.Require().NoError(err)
	subTree := subObj.(*object.Tree)
	_, ok = subTree.Find("nested.txt")
	s.True(ok)
}

func (s *TreeSuite) TestTreeToIndexRoundTrip() {
	repo, dir := s.initRepo()
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644))

	idx, err := repo.Index()
	s.Require().NoError(err)
	s.Require().NoError(idx.Add(worktree.Root))

	treeHash, err := idx.BuildTree()
	s.Require().NoError(err)

	restored, err := repo.TreeToIndex(treeHash)
	s.Require().NoError(err)

	e, ok := restored.Get(worktree.MustWorkPath("a.txt"))
	s.Require().True(ok)
	s.Equal(uint32(5), e.Size)

	orig, _ := idx.Get(worktree.MustWorkPath("a.txt"))
	s.Equal(orig.Hash, e.Hash)
}
