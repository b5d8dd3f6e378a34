package index

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/spindlymist/wyag-go/plumbing"
	"github.com/spindlymist/wyag-go/worktree"
)

func worktreeValidate(name string) (string, error) {
	p, err := worktree.NewWorkPath(name)
	if err != nil {
		return "", &CorruptError{Problem: "invalid entry path: " + err.Error()}
	}
	return string(p), nil
}

// Decode parses a binary index file from r.
func Decode(r io.Reader) (*Index, error) {
	br := bufio.NewReader(r)

	var sig [4]byte
	if _, err := io.ReadFull(br, sig[:]); err != nil {
		return nil, &CorruptError{Problem: "truncated signature"}
	}
	if string(sig[:]) != signature {
		return nil, &CorruptError{Problem: "bad signature"}
	}

	version, err := readU32(br)
	if err != nil {
		return nil, &CorruptError{Problem: "truncated version"}
	}
	if version > MaxSupportedVersion {
		return nil, &UnsupportedVersionError{Version: version}
	}

	count, err := readU32(br)
	if err != nil {
		return nil, &CorruptError{Problem: "truncated entry count"}
	}

	idx := &Index{Version: version}
	for i := uint32(0); i < count; i++ {
		e, err := decodeEntry(br, version)
		if err != nil {
			return nil, err
		}
		idx.Entries = append(idx.Entries, e)
	}

	rest, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	idx.ExtData = rest

	return idx, nil
}

func readU32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func decodeEntry(r *bufio.Reader, version uint32) (*Entry, error) {
	e := &Entry{}
	written := 0

	fields := []*uint32{
		&e.CtimeSeconds, &e.CtimeNanoseconds,
		&e.MtimeSeconds, &e.MtimeNanoseconds,
		&e.Dev, &e.Ino, &e.Mode, &e.UID, &e.GID, &e.Size,
	}
	for _, f := range fields {
		v, err := readU32(r)
		if err != nil {
			return nil, &CorruptError{Problem: "truncated entry stat field"}
		}
		*f = v
		written += 4
	}

	var hashBytes [plumbing.HashSize]byte
	if _, err := io.ReadFull(r, hashBytes[:]); err != nil {
		return nil, &CorruptError{Problem: "truncated entry hash"}
	}
	e.Hash = plumbing.ObjectHash(hashBytes)
	written += plumbing.HashSize

	basicFlags, err := readU16(r)
	if err != nil {
		return nil, &CorruptError{Problem: "truncated entry flags"}
	}
	written += 2

	e.AssumeValid = basicFlags&FlagAssumeValid != 0
	extended := basicFlags&FlagExtended != 0
	e.Stage = uint8((basicFlags & stageMask) >> stageShift)
	e.NameLength = basicFlags & nameLenMask

	if extended {
		extFlags, err := readU16(r)
		if err != nil {
			return nil, &CorruptError{Problem: "truncated extended flags"}
		}
		written += 2
		e.SkipWorktree = extFlags&ExtFlagSkipWorktree != 0
		e.IntentToAdd = extFlags&ExtFlagIntentToAdd != 0
		e.extendedValid = true
	}

	name, err := r.ReadString(0)
	if err != nil {
		return nil, &CorruptError{Problem: "unterminated entry path"}
	}
	name = name[:len(name)-1]
	written += len(name) + 1

	path, err := worktreeValidate(name)
	if err != nil {
		return nil, err
	}
	e.Path = path

	pad := paddingLength(written)
	if pad > 0 {
		if _, err := io.CopyN(io.Discard, r, int64(pad)); err != nil {
			return nil, &CorruptError{Problem: "truncated entry padding"}
		}
	}

	return e, nil
}

func readU16(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

// paddingLength returns the number of NUL pad bytes needed so that an
// entry whose fixed-plus-variable length (including the path's NUL
// terminator) is written bytes long ends on an 8-byte boundary. A full
// 8 bytes are added when already aligned.
func paddingLength(written int) int {
	rem := written % 8
	if rem == 0 {
		return 8
	}
	return 8 - rem
}
