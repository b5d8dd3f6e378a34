// Package object implements the four typed object variants (blob,
// tree, commit, tag) and the content-addressed database that stores
// and resolves them. The package knows nothing about the staging
// index; code that bridges objects and the index lives in the root
// package.
package object

import (
	"fmt"

	"github.com/spindlymist/wyag-go/plumbing"
)

// Object is implemented by every variant.
type Object interface {
	Type() plumbing.ObjectType
	// Serialize returns the variant's payload bytes (not including the
	// "<format> <size>\0" frame header).
	Serialize() []byte
}

// UnexpectedFormatError is returned when a found object does not have
// the caller's expected type.
type UnexpectedFormatError struct {
	Got, Expected plumbing.ObjectType
}

func (e *UnexpectedFormatError) Error() string {
	return fmt.Sprintf("object: expected %s, got %s", e.Expected, e.Got)
}

// Decode dispatches to the variant parser named by t.
func Decode(t plumbing.ObjectType, payload []byte) (Object, error) {
	switch t {
	case plumbing.BlobObject:
		return DecodeBlob(payload)
	case plumbing.TreeObject:
		return DecodeTree(payload)
	case plumbing.CommitObject:
		return DecodeCommit(payload)
	case plumbing.TagObject:
		return DecodeTag(payload)
	default:
		return nil, fmt.Errorf("object: unrecognized format %q", t)
	}
}
