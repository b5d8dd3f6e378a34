package plumbing

import "fmt"

// ObjectType names one of the four framed object variants.
type ObjectType int8

const (
	InvalidObject ObjectType = iota
	BlobObject
	TreeObject
	CommitObject
	TagObject
)

var objectTypeNames = map[ObjectType]string{
	BlobObject:   "blob",
	TreeObject:   "tree",
	CommitObject: "commit",
	TagObject:    "tag",
}

var objectTypeByName = func() map[string]ObjectType {
	m := make(map[string]ObjectType, len(objectTypeNames))
	for t, n := range objectTypeNames {
		m[n] = t
	}
	return m
}()

// String returns the on-disk format token for t.
func (t ObjectType) String() string {
	if n, ok := objectTypeNames[t]; ok {
		return n
	}
	return "invalid"
}

// Bytes returns the UTF-8 bytes of the on-disk token.
func (t ObjectType) Bytes() []byte {
	return []byte(t.String())
}

// IsValid reports whether t is one of the four known variants.
func (t ObjectType) IsValid() bool {
	_, ok := objectTypeNames[t]
	return ok
}

// ParseObjectType maps an on-disk format token to its ObjectType.
func ParseObjectType(s string) (ObjectType, error) {
	if t, ok := objectTypeByName[s]; ok {
		return t, nil
	}
	return InvalidObject, fmt.Errorf("plumbing: unrecognized object format %q", s)
}
