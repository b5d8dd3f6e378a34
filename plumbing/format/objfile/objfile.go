// Package objfile implements the framed, deflate-compressed byte
// layout every object is stored in: "<format> <size>\0<payload>",
// zlib-compressed as a whole.
package objfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/klauspost/compress/zlib"

	"github.com/spindlymist/wyag-go/plumbing"
)

// MalformedHeaderError is returned when a decompressed object's header
// does not match its framing contract.
type MalformedHeaderError struct {
	Problem string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("objfile: malformed header: %s", e.Problem)
}

// Frame renders the header+payload byte sequence that gets hashed and
// stored for an object of the given type and payload.
func Frame(t plumbing.ObjectType, payload []byte) []byte {
	header := fmt.Sprintf("%s %d\x00", t, len(payload))
	out := make([]byte, 0, len(header)+len(payload))
	out = append(out, header...)
	out = append(out, payload...)
	return out
}

// Encode deflate-compresses a framed object.
func Encode(framed []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(framed); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode inflates raw and returns its object type and payload, after
// verifying the header's declared size against the actual payload
// length.
func Decode(raw io.Reader) (t plumbing.ObjectType, payload []byte, err error) {
	zr, err := zlib.NewReader(raw)
	if err != nil {
		return InvalidObject(), nil, err
	}
	defer zr.Close()

	br := bufio.NewReader(zr)

	formatTok, err := br.ReadString(' ')
	if err != nil {
		return InvalidObject(), nil, &MalformedHeaderError{Problem: "missing format token"}
	}
	formatTok = formatTok[:len(formatTok)-1]

	t, err = plumbing.ParseObjectType(formatTok)
	if err != nil {
		return InvalidObject(), nil, &MalformedHeaderError{Problem: err.Error()}
	}

	sizeTok, err := br.ReadString(0)
	if err != nil {
		return InvalidObject(), nil, &MalformedHeaderError{Problem: "missing size token"}
	}
	sizeTok = sizeTok[:len(sizeTok)-1]

	size, err := strconv.Atoi(sizeTok)
	if err != nil {
		return InvalidObject(), nil, &MalformedHeaderError{Problem: "non-numeric size"}
	}

	payload, err = io.ReadAll(br)
	if err != nil {
		return InvalidObject(), nil, err
	}
	if len(payload) != size {
		return InvalidObject(), nil, &MalformedHeaderError{
			Problem: fmt.Sprintf("declared size %d does not match payload length %d", size, len(payload)),
		}
	}

	return t, payload, nil
}

// InvalidObject is the zero ObjectType, returned alongside errors.
func InvalidObject() plumbing.ObjectType {
	return plumbing.InvalidObject
}
