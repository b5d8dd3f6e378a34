// Package index implements the binary on-disk staging file format
// (versions 1-3): a "DIRC" header, a run of fixed-layout entries, and
// an opaque extension tail that is round-tripped verbatim.
package index

import (
	"fmt"

	"github.com/spindlymist/wyag-go/plumbing"
)

const (
	signature = "DIRC"

	// MaxSupportedVersion is the highest index format version this
	// codec accepts; version 4's path-prefix compression is out of
	// scope.
	MaxSupportedVersion = 3
)

// Flag bits within an entry's basic flags field.
const (
	FlagAssumeValid uint16 = 1 << 15
	FlagExtended    uint16 = 1 << 14
	stageMask       uint16 = 0x3000
	stageShift             = 12
	nameLenMask     uint16 = 0x0FFF
	nameLenMax      uint16 = 0x0FFF
)

// Extended flag bits, valid only when FlagExtended is set.
const (
	ExtFlagSkipWorktree uint16 = 1 << 14
	ExtFlagIntentToAdd  uint16 = 1 << 13
)

// UnsupportedVersionError is returned when parsing an index whose
// version exceeds MaxSupportedVersion.
type UnsupportedVersionError struct {
	Version uint32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("index: unsupported version %d", e.Version)
}

// CorruptError wraps a structural problem found while parsing.
type CorruptError struct {
	Problem string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("index: corrupt: %s", e.Problem)
}

// Entry is one binary staging record.
type Entry struct {
	CtimeSeconds     uint32
	CtimeNanoseconds uint32
	MtimeSeconds     uint32
	MtimeNanoseconds uint32
	Dev              uint32
	Ino              uint32
	Mode             uint32
	UID              uint32
	GID              uint32
	Size             uint32

	Hash plumbing.ObjectHash

	AssumeValid   bool
	Stage         uint8
	SkipWorktree  bool
	IntentToAdd   bool
	NameLength    uint16 // saturated at nameLenMax; true length is len(Path)
	extendedValid bool

	Path string
}

// HasExtendedFlags reports whether e needs the optional extended
// flags word on the wire.
func (e *Entry) HasExtendedFlags() bool {
	return e.SkipWorktree || e.IntentToAdd
}

func clampNameLength(n int) uint16 {
	if n >= int(nameLenMax) {
		return nameLenMax
	}
	return uint16(n)
}

// BasicFlags renders e's 16-bit basic flags word.
func (e *Entry) BasicFlags() uint16 {
	f := clampNameLength(len(e.Path))
	if e.AssumeValid {
		f |= FlagAssumeValid
	}
	if e.HasExtendedFlags() {
		f |= FlagExtended
	}
	f |= (uint16(e.Stage) << stageShift) & stageMask
	return f
}

// ExtendedFlags renders e's optional 16-bit extended flags word.
func (e *Entry) ExtendedFlags() uint16 {
	var f uint16
	if e.SkipWorktree {
		f |= ExtFlagSkipWorktree
	}
	if e.IntentToAdd {
		f |= ExtFlagIntentToAdd
	}
	return f
}

// Index is the parsed form of a binary staging file.
type Index struct {
	Version uint32
	Entries []*Entry
	// ExtData is the extensions tail, preserved verbatim and never
	// interpreted.
	ExtData []byte
}

// New returns an empty index at the highest supported version.
func New() *Index {
	return &Index{Version: MaxSupportedVersion}
}
