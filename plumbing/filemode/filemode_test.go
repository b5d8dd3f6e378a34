package filemode

import (
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
)

type FileModeSuite struct {
	suite.Suite
}

func TestFileModeSuite(t *testing.T) {
	suite.Run(t, new(FileModeSuite))
}

func (s *FileModeSuite) TestDirStringDropsLeadingZero() {
	s.Equal("40000", Dir.String())
}

func (s *FileModeSuite) TestRegularStringIsSixDigits() {
	s.Equal("100644", Regular.String())
	s.Equal("100755", Executable.String())
}

func (s *FileModeSuite) TestParseRoundTrip() {
	for _, m := range []FileMode{Regular, Executable, Symlink, Submodule} {
		parsed, err := Parse(m.String())
		s.Require().NoError(err)
		s.Equal(m, parsed)
	}
}

func (s *FileModeSuite) TestParseDirToken() {
	m, err := Parse("40000")
	s.Require().NoError(err)
	s.Equal(Dir, m)
	s.True(m.IsDir())
}

func (s *FileModeSuite) TestParseInvalid() {
	_, err := Parse("not-octal")
	s.Error(err)
}

func (s *FileModeSuite) TestFromFileInfoRegular() {
	f, err := os.CreateTemp(s.T().TempDir(), "f")
	s.Require().NoError(err)
	f.Close()

	info, err := os.Stat(f.Name())
	s.Require().NoError(err)
	s.Equal(Regular, FromFileInfo(info))
}

func (s *FileModeSuite) TestFromFileInfoExecutable() {
	name := s.T().TempDir() + "/exe"
	s.Require().NoError(os.WriteFile(name, []byte("x"), 0o755))

	info, err := os.Stat(name)
	s.Require().NoError(err)
	s.Equal(Executable, FromFileInfo(info))
}

func (s *FileModeSuite) TestFromFileInfoDir() {
	info, err := os.Stat(s.T().TempDir())
	s.Require().NoError(err)
	s.Equal(Dir, FromFileInfo(info))
}
