package object

import "github.com/spindlymist/wyag-go/plumbing"

// Blob is an opaque byte payload.
type Blob struct {
	Data []byte
}

func (b *Blob) Type() plumbing.ObjectType { return plumbing.BlobObject }

func (b *Blob) Serialize() []byte { return b.Data }

// DecodeBlob wraps payload verbatim.
func DecodeBlob(payload []byte) (*Blob, error) {
	return &Blob{Data: payload}, nil
}
