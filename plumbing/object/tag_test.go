package object

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spindlymist/wyag-go/plumbing"
)

type TagSuite struct {
	suite.Suite
}

func TestTagSuite(t *testing.T) {
	suite.Run(t, new(TagSuite))
}

func (s *TagSuite) TestNewTagRoundTrip() {
	target := plumbing.ComputeHash([]byte("commit"))
	tag := NewTag(target, plumbing.CommitObject, "v1.0", "A <a@example.com> 0 +0000", "release\n")

	decoded, err := DecodeTag(tag.Serialize())
	s.Require().NoError(err)
	s.Equal(target, decoded.Object())
	s.Equal(plumbing.CommitObject, decoded.ObjectType())
	s.Equal("v1.0", decoded.Name())
	s.Equal("release\n", decoded.Message())
}
