package index

import (
	"bufio"
	"encoding/binary"
	"io"
)

// Encode serializes idx in entry (path) order, followed by ExtData
// verbatim. Callers are expected to have already sorted idx.Entries by
// Path.
func Encode(w io.Writer, idx *Index) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(signature); err != nil {
		return err
	}
	if err := writeU32(bw, idx.Version); err != nil {
		return err
	}
	if err := writeU32(bw, uint32(len(idx.Entries))); err != nil {
		return err
	}

	for _, e := range idx.Entries {
		if err := encodeEntry(bw, e); err != nil {
			return err
		}
	}

	if len(idx.ExtData) > 0 {
		if _, err := bw.Write(idx.ExtData); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeU32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func writeU16(w io.Writer, v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func encodeEntry(w io.Writer, e *Entry) error {
	written := 0

	fields := []uint32{
		e.CtimeSeconds, e.CtimeNanoseconds,
		e.MtimeSeconds, e.MtimeNanoseconds,
		e.Dev, e.Ino, e.Mode, e.UID, e.GID, e.Size,
	}
	for _, v := range fields {
		if err := writeU32(w, v); err != nil {
			return err
		}
		written += 4
	}

	if _, err := w.Write(e.Hash[:]); err != nil {
		return err
	}
	written += len(e.Hash)

	if err := writeU16(w, e.BasicFlags()); err != nil {
		return err
	}
	written += 2

	if e.HasExtendedFlags() {
		if err := writeU16(w, e.ExtendedFlags()); err != nil {
			return err
		}
		written += 2
	}

	if _, err := io.WriteString(w, e.Path); err != nil {
		return err
	}
	written += len(e.Path)

	// NUL terminator plus padding to an 8-byte boundary.
	pad := paddingLength(written + 1)
	zeros := make([]byte, pad+1)
	if _, err := w.Write(zeros); err != nil {
		return err
	}

	return nil
}
