// Package plumbing holds the identity types shared by every layer of
// the object store: the content hash and the object type tag.
package plumbing

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
)

// HashSize is the length in bytes of an ObjectHash.
const HashSize = 20

// ErrInvalidHashString is returned when a hex string is not a valid
// hash representation.
var ErrInvalidHashString = errors.New("plumbing: invalid hash string")

// ErrInvalidHashBytes is returned when a byte slice is not exactly
// HashSize long.
var ErrInvalidHashBytes = errors.New("plumbing: invalid hash bytes")

// ObjectHash is the 20-byte SHA-1 of a framed object's bytes. It is a
// plain, Copy-cheap value: comparison and use as a map key are both
// O(1).
type ObjectHash [HashSize]byte

// ZeroHash is the all-zero ObjectHash, used to denote "no object" in
// contexts such as an unborn branch's parent.
var ZeroHash ObjectHash

// ComputeHash returns the SHA-1 digest of data.
func ComputeHash(data []byte) ObjectHash {
	return ObjectHash(sha1.Sum(data))
}

// HashFromHex parses a 40-character hex string (any case).
func HashFromHex(s string) (ObjectHash, error) {
	var h ObjectHash
	if len(s) != HashSize*2 {
		return h, ErrInvalidHashString
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("%w: %v", ErrInvalidHashString, err)
	}
	copy(h[:], b)
	return h, nil
}

// HashFromBytes wraps exactly HashSize bytes of b as an ObjectHash.
func HashFromBytes(b []byte) (ObjectHash, error) {
	var h ObjectHash
	if len(b) != HashSize {
		return h, ErrInvalidHashBytes
	}
	copy(h[:], b)
	return h, nil
}

// IsZero reports whether h is the all-zero hash.
func (h ObjectHash) IsZero() bool {
	return h == ZeroHash
}

// String returns the lower-case hex representation of h.
func (h ObjectHash) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of h's bytes.
func (h ObjectHash) Bytes() []byte {
	out := make([]byte, HashSize)
	copy(out, h[:])
	return out
}

// ShardPath returns the on-disk "<first 2 hex>/<remaining 38 hex>"
// split used to distribute objects across subdirectories.
func (h ObjectHash) ShardPath() (dir, file string) {
	full := h.String()
	return full[:2], full[2:]
}

// Less reports whether h sorts before other, used for deterministic
// listings.
func (h ObjectHash) Less(other ObjectHash) bool {
	for i := range h {
		if h[i] != other[i] {
			return h[i] < other[i]
		}
	}
	return false
}
