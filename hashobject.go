package wyag

import (
	"os"

	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/plumbing/format/objfile"
	"github.com/spindlymist/wyag-go/plumbing/object"
)

// HashObject reads path, frames it as the given type, and returns its
// hash, writing it to the object database when write is true.
func (r *Repository) HashObject(path string, t plumbing.ObjectType, write bool) (plumbing.ObjectHash, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return plumbing.ObjectHash{}, err
	}

	obj, err := object.Decode(t, data)
	if err != nil {
		return plumbing.ObjectHash{}, err
	}

	if write {
		return r.Objects.Write(obj)
	}

	framed := objfile.Frame(obj.Type(), obj.Serialize())
	return plumbing.ComputeHash(framed), nil
}
