package schema

import (
	"math/bits"
	"strings"
)

// Marker is the set of annotations a member was declared with.
type Marker uint8

const (
	// Restricted includes a property, or a pure function, in the schema.
	Restricted Marker = 1 << iota
	// Configuring marks a function that configures an existing singleton.
	Configuring
	// Adding marks a function that creates and registers a new element.
	Adding
)

// Has reports whether every marker in m is present.
func (ms Marker) Has(m Marker) bool {
	return ms&m == m
}

// Count returns how many distinct markers are set.
func (ms Marker) Count() int {
	return bits.OnesCount8(uint8(ms))
}

func (ms Marker) String() string {
	if ms == 0 {
		return "none"
	}
	var names []string
	if ms.Has(Restricted) {
		names = append(names, "restricted")
	}
	if ms.Has(Configuring) {
		names = append(names, "configuring")
	}
	if ms.Has(Adding) {
		names = append(names, "adding")
	}
	return strings.Join(names, "|")
}
