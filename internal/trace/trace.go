// Package trace provides opt-in, env-gated stderr diagnostics. Library
// code never logs unconditionally; only these targets, enabled via
// WYAG_TRACE, ever write anything.
package trace

import (
	"log"
	"os"
	"strings"
)

// Target is a bit-flag category of diagnostic output.
type Target uint32

const (
	targetGeneral Target = 1 << iota
	targetObject
	targetIndex
)

var enabled Target

func init() {
	v := os.Getenv("WYAG_TRACE")
	if v == "" {
		return
	}
	if v == "all" {
		enabled = targetGeneral | targetObject | targetIndex
		return
	}
	for _, name := range strings.Split(v, ",") {
		switch strings.TrimSpace(name) {
		case "general":
			enabled |= targetGeneral
		case "object":
			enabled |= targetObject
		case "index":
			enabled |= targetIndex
		}
	}
}

var logger = log.New(os.Stderr, "wyag: ", 0)

// Tracer prints under a single Target, a no-op unless that target is
// enabled via WYAG_TRACE.
type Tracer struct {
	target Target
	name   string
}

// General covers repository-wide, ref, and branch operations.
var General = &Tracer{target: targetGeneral, name: "general"}

// Object covers object database reads and writes.
var Object = &Tracer{target: targetObject, name: "object"}

// Index covers staging index parse/add/remove/write.
var Index = &Tracer{target: targetIndex, name: "index"}

// Printf logs format/args if t's target is enabled.
func (t *Tracer) Printf(format string, args ...any) {
	if enabled&t.target == 0 {
		return
	}
	logger.Printf("["+t.name+"] "+format, args...)
}
