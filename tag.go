package wyag

import (
	"errors"

	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/plumbing/object"
)

const tagsCategory = "tags"

// ErrTagNotFound is returned when a named tag has no backing ref.
var ErrTagNotFound = errors.New("tag: not found")

// CreateLightweightTag points refs/tags/<name> directly at object,
// without creating a tag object of its own.
func (r *Repository) CreateLightweightTag(name string, object plumbing.ObjectHash) error {
	return r.Refs.Create(tagsCategory, name, object)
}

// CreateAnnotatedTag writes a tag object naming target, then points
// refs/tags/<name> at the tag object's own hash.
func (r *Repository) CreateAnnotatedTag(name string, target plumbing.ObjectHash, targetType plumbing.ObjectType, tagger, message string) (plumbing.ObjectHash, error) {
	tag := object.NewTag(target, targetType, name, tagger, message)
	hash, err := r.Objects.Write(tag)
	if err != nil {
		return plumbing.ObjectHash{}, err
	}
	if err := r.Refs.Create(tagsCategory, name, hash); err != nil {
		return plumbing.ObjectHash{}, err
	}
	return hash, nil
}

// ResolveTag resolves a tag name to the hash it points at.
func (r *Repository) ResolveTag(name string) (plumbing.ObjectHash, error) {
	return r.Refs.Resolve(tagsCategory, name)
}

// DeleteTag removes a tag ref.
func (r *Repository) DeleteTag(name string) error {
	if !r.Refs.Exists(tagsCategory, name) {
		return ErrTagNotFound
	}
	return r.Refs.Delete(tagsCategory, name)
}
