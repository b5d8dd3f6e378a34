// Package kvlm implements the "key-value list with message" text
// format shared by commit and tag objects: an ordered sequence of
// header lines, each possibly continued by lines with a single
// leading space, followed by a blank line and a free-form message.
package kvlm

import (
	"errors"
	"strings"
)

// MessageKey is the pseudo-key under which the free-form message is
// stored.
const MessageKey = ""

// ErrMissingMessage is returned when the text has no blank-line
// separator before a message.
var ErrMissingMessage = errors.New("kvlm: missing blank line before message")

// ErrInvalidEntry is returned when a header line has no space
// separating key and value.
var ErrInvalidEntry = errors.New("kvlm: header line missing a space")

// entry is one key with all of its values, in insertion order.
type entry struct {
	key    string
	values []string
}

// KVLM is an ordered multimap: keys may repeat is modeled as a single
// key with multiple values, and insertion order between distinct keys
// is preserved. The message lives under MessageKey and is never
// repeated.
type KVLM struct {
	entries []entry
	message string
}

// New returns an empty KVLM.
func New() *KVLM {
	return &KVLM{}
}

// Parse decodes text into a KVLM.
func Parse(text []byte) (*KVLM, error) {
	k := New()
	lines := strings.Split(string(text), "\n")

	i := 0
	for i < len(lines) {
		line := lines[i]
		if line == "" {
			// Blank line: everything after belongs to the message.
			i++
			k.message = strings.Join(lines[i:], "\n")
			return k, nil
		}

		sp := strings.IndexByte(line, ' ')
		if sp < 0 {
			return nil, ErrInvalidEntry
		}
		key := line[:sp]
		valueLines := []string{line[sp+1:]}

		i++
		for i < len(lines) && strings.HasPrefix(lines[i], " ") {
			valueLines = append(valueLines, lines[i][1:])
			i++
		}

		k.Add(key, strings.Join(valueLines, "\n"))
	}

	return nil, ErrMissingMessage
}

// Add appends value to key's value list, preserving insertion order.
func (k *KVLM) Add(key, value string) {
	for idx := range k.entries {
		if k.entries[idx].key == key {
			k.entries[idx].values = append(k.entries[idx].values, value)
			return
		}
	}
	k.entries = append(k.entries, entry{key: key, values: []string{value}})
}

// Set replaces key's value list with a single value.
func (k *KVLM) Set(key, value string) {
	for idx := range k.entries {
		if k.entries[idx].key == key {
			k.entries[idx].values = []string{value}
			return
		}
	}
	k.entries = append(k.entries, entry{key: key, values: []string{value}})
}

// Values returns all values recorded under key, in insertion order.
func (k *KVLM) Values(key string) []string {
	for _, e := range k.entries {
		if e.key == key {
			return e.values
		}
	}
	return nil
}

// First returns the first value under key, if any.
func (k *KVLM) First(key string) (string, bool) {
	v := k.Values(key)
	if len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// Message returns the free-form message body.
func (k *KVLM) Message() string {
	return k.message
}

// SetMessage sets the free-form message body.
func (k *KVLM) SetMessage(msg string) {
	k.message = msg
}

// Keys returns the distinct keys in insertion order.
func (k *KVLM) Keys() []string {
	keys := make([]string, 0, len(k.entries))
	for _, e := range k.entries {
		keys = append(keys, e.key)
	}
	return keys
}

// Serialize is the inverse of Parse.
func (k *KVLM) Serialize() []byte {
	var b strings.Builder
	for _, e := range k.entries {
		if e.key == MessageKey {
			continue
		}
		for _, v := range e.values {
			b.WriteString(e.key)
			b.WriteByte(' ')
			b.WriteString(strings.ReplaceAll(v, "\n", "\n "))
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	b.WriteString(k.message)
	return []byte(b.String())
}
