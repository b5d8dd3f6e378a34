package object

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/plumbing/filemode"
)

type ObjectSuite struct {
	suite.Suite
}

func TestObjectSuite(t *testing.T) {
	suite.Run(t, new(ObjectSuite))
}

func (s *ObjectSuite) TestDecodeBlob() {
	obj, err := Decode(plumbing.BlobObject, []byte("hello"))
	s.Require().NoError(err)
	blob, ok := obj.(*Blob)
	s.True(ok)
	s.Equal("hello", string(blob.Data))
	s.Equal(plumbing.BlobObject, blob.Type())
}

func (s *ObjectSuite) TestDecodeTreeViaDispatch() {
	tree := &Tree{Entries: []TreeEntry{
		{Name: "a.txt", Mode: filemode.Regular, Hash: plumbing.ComputeHash([]byte("x"))},
	}}
	obj, err := Decode(plumbing.TreeObject, tree.Serialize())
	s.Require().NoError(err)
	s.Equal(plumbing.TreeObject, obj.Type())
}

func (s *ObjectSuite) TestDecodeRejectsUnknownType() {
	_, err := Decode(plumbing.InvalidObject, nil)
	s.Error(err)
}

func (s *ObjectSuite) TestUnexpectedFormatError() {
	err := &UnexpectedFormatError{Got: plumbing.BlobObject, Expected: plumbing.TreeObject}
	s.Contains(err.Error(), "blob")
	s.Contains(err.Error(), "tree")
}
