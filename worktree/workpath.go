// Package worktree provides a normalized, repo-relative path type and
// the repo-rooted filesystem helpers built on top of it.
package worktree

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrAbsolutePath is returned when a path begins with a separator.
var ErrAbsolutePath = errors.New("worktree: path must not be absolute")

// ErrInvalidUnicode is returned when a path is not valid UTF-8.
var ErrInvalidUnicode = errors.New("worktree: path is not valid unicode")

// ForbiddenComponentError names the offending path component.
type ForbiddenComponentError struct {
	Component string
}

func (e *ForbiddenComponentError) Error() string {
	return fmt.Sprintf("worktree: forbidden path component %q", e.Component)
}

// WorkPath is an immutable, normalized path relative to a repository
// root. The empty WorkPath denotes the root itself. Components are
// separated by "/"; the value never starts or ends with "/" and never
// contains ".", "..", or ".git".
type WorkPath string

// Root is the WorkPath denoting the repository root.
const Root WorkPath = ""

// NewWorkPath validates and normalizes raw into a WorkPath. Backslashes
// are rewritten to forward slashes; repeated and trailing separators
// are collapsed.
func NewWorkPath(raw string) (WorkPath, error) {
	if !utf8.ValidString(raw) {
		return "", ErrInvalidUnicode
	}

	normalized := strings.ReplaceAll(raw, "\\", "/")
	if strings.HasPrefix(normalized, "/") {
		return "", ErrAbsolutePath
	}

	var parts []string
	for _, part := range strings.Split(normalized, "/") {
		if part == "" {
			continue
		}
		switch part {
		case ".":
			continue
		case "..", ".git":
			return "", &ForbiddenComponentError{Component: part}
		}
		parts = append(parts, part)
	}

	return WorkPath(strings.Join(parts, "/")), nil
}

// MustWorkPath panics if raw is not a valid WorkPath. Intended for
// constants and tests.
func MustWorkPath(raw string) WorkPath {
	p, err := NewWorkPath(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// IsRoot reports whether p denotes the repository root.
func (p WorkPath) IsRoot() bool {
	return p == Root
}

// String returns the normalized path.
func (p WorkPath) String() string {
	return string(p)
}

// Join appends child (itself normalized) to p.
func (p WorkPath) Join(child string) (WorkPath, error) {
	c, err := NewWorkPath(child)
	if err != nil {
		return "", err
	}
	if p.IsRoot() {
		return c, nil
	}
	if c.IsRoot() {
		return p, nil
	}
	return WorkPath(string(p) + "/" + string(c)), nil
}

// Partition splits p into its first component and the remainder. ok is
// false when p is the root.
func (p WorkPath) Partition() (head string, rest WorkPath, ok bool) {
	if p.IsRoot() {
		return "", Root, false
	}
	s := string(p)
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[:i], WorkPath(s[i+1:]), true
	}
	return s, Root, true
}

// FileName returns the last path component, or "" at the root.
func (p WorkPath) FileName() string {
	s := string(p)
	if s == "" {
		return ""
	}
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Parent returns the path with its last component removed.
func (p WorkPath) Parent() WorkPath {
	s := string(p)
	i := strings.LastIndexByte(s, '/')
	if i < 0 {
		return Root
	}
	return WorkPath(s[:i])
}

// StripPrefix removes prefix (and the separator that follows it) from
// p, returning ok=false if p does not lie within prefix's cone.
func (p WorkPath) StripPrefix(prefix WorkPath) (rest WorkPath, ok bool) {
	if prefix.IsRoot() {
		return p, true
	}
	ps, pfx := string(p), string(prefix)
	if ps == pfx {
		return Root, true
	}
	if strings.HasPrefix(ps, pfx+"/") {
		return WorkPath(ps[len(pfx)+1:]), true
	}
	return "", false
}

// StripSuffix removes suffix (and the preceding separator) from p.
func (p WorkPath) StripSuffix(suffix string) (rest WorkPath, ok bool) {
	ps := string(p)
	if ps == suffix {
		return Root, true
	}
	if strings.HasSuffix(ps, "/"+suffix) {
		return WorkPath(ps[:len(ps)-len(suffix)-1]), true
	}
	return "", false
}

// DirRange returns the half-open key range [lo, hi) that contains
// exactly the WorkPaths lying beneath p (its descendants; p itself
// sorts before lo and is not included), exploiting that '/' (0x2F)
// immediately precedes '0' (0x30) in byte order. For the root, the
// range covers every key.
func (p WorkPath) DirRange() (lo, hi string) {
	if p.IsRoot() {
		return "", "\xff"
	}
	s := string(p)
	return s + "/", s + "0"
}

// InCone reports whether p equals dir or lies beneath it.
func (p WorkPath) InCone(dir WorkPath) bool {
	if dir.IsRoot() {
		return true
	}
	if p == dir {
		return true
	}
	return strings.HasPrefix(string(p), string(dir)+"/")
}
