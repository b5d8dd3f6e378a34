package object

import (
	"fmt"

	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/plumbing/kvlm"
)

const (
	kvlmKeyObject = "object"
	kvlmKeyType   = "type"
	kvlmKeyTag    = "tag"
	kvlmKeyTagger = "tagger"
)

// Tag is an annotated tag object: a KVLM naming the tagged object, its
// type, the tag's own name, the tagger, and a message. Lightweight
// tags are never represented by this type -- they are plain refs.
type Tag struct {
	kv *kvlm.KVLM
}

func (t *Tag) Type() plumbing.ObjectType { return plumbing.TagObject }

func (t *Tag) Serialize() []byte { return t.kv.Serialize() }

// NewTag builds an annotated tag object.
func NewTag(object plumbing.ObjectHash, objType plumbing.ObjectType, name, tagger, message string) *Tag {
	kv := kvlm.New()
	kv.Set(kvlmKeyObject, object.String())
	kv.Set(kvlmKeyType, objType.String())
	kv.Set(kvlmKeyTag, name)
	kv.Set(kvlmKeyTagger, tagger)
	kv.SetMessage(message)
	return &Tag{kv: kv}
}

// DecodeTag parses payload as a KVLM tag.
func DecodeTag(payload []byte) (*Tag, error) {
	kv, err := kvlm.Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("object: tag: %w", err)
	}
	return &Tag{kv: kv}, nil
}

// Object returns the hash of the tagged object.
func (t *Tag) Object() plumbing.ObjectHash {
	hex, _ := t.kv.First(kvlmKeyObject)
	h, _ := plumbing.HashFromHex(hex)
	return h
}

// ObjectType returns the type of the tagged object.
func (t *Tag) ObjectType() plumbing.ObjectType {
	typ, _ := t.kv.First(kvlmKeyType)
	ot, _ := plumbing.ParseObjectType(typ)
	return ot
}

// Name returns the tag's own name.
func (t *Tag) Name() string {
	v, _ := t.kv.First(kvlmKeyTag)
	return v
}

// Tagger returns the raw tagger header line value.
func (t *Tag) Tagger() string {
	v, _ := t.kv.First(kvlmKeyTagger)
	return v
}

// Message returns the tag's free-form message.
func (t *Tag) Message() string {
	return t.kv.Message()
}
