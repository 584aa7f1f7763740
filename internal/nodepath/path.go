package nodepath

import (
	"strconv"
	"strings"
)

// Segment is one member name along a path, optionally with an element index.
type Segment struct {
	Name  string
	Index int // -1 indicates no index is present.
}

// NewSegment creates a segment without an index.
func NewSegment(name string) Segment {
	return Segment{Name: name, Index: -1}
}

// NewIndexedSegment creates a segment addressing one collection element.
func NewIndexedSegment(name string, index int) Segment {
	return Segment{Name: name, Index: index}
}

// HasIndex returns true if the segment has an explicit index.
func (s Segment) HasIndex() bool {
	return s.Index != -1
}

func (s Segment) String() string {
	if !s.HasIndex() {
		return s.Name
	}
	return s.Name + "[" + strconv.Itoa(s.Index) + "]"
}

// Path is an immutable sequence of segments. The zero value is the root.
type Path struct {
	segments []Segment
}

// New builds a path of plain segments.
func New(names ...string) Path {
	p := Path{}
	for _, name := range names {
		p = p.Child(name)
	}
	return p
}

// Child returns p extended by a plain segment.
func (p Path) Child(name string) Path {
	return p.append(NewSegment(name))
}

// Element returns p extended by an indexed segment.
func (p Path) Element(name string, index int) Path {
	return p.append(NewIndexedSegment(name, index))
}

func (p Path) append(s Segment) Path {
	segments := make([]Segment, len(p.segments), len(p.segments)+1)
	copy(segments, p.segments)
	return Path{segments: append(segments, s)}
}

// Segments returns a copy of the segments.
func (p Path) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Len returns the number of segments.
func (p Path) Len() int { return len(p.segments) }

// IsRoot reports whether p has no segments.
func (p Path) IsRoot() bool { return len(p.segments) == 0 }

// String serializes the path into its canonical representation.
func (p Path) String() string {
	var sb strings.Builder
	for i, s := range p.segments {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Equal reports whether both paths have the same segments.
func (p Path) Equal(o Path) bool {
	if len(p.segments) != len(o.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != o.segments[i] {
			return false
		}
	}
	return true
}
