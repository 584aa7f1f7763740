package nodepath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// segmentRegex matches a single segment, e.g. `name` or `name[1]`. Names
// follow HCL identifier rules.
var segmentRegex = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_-]*)(?:\[(\d+)\])?$`)

// Parse creates a Path from its canonical string representation.
func Parse(raw string) (Path, error) {
	if raw == "" {
		return Path{}, fmt.Errorf("path cannot be empty")
	}

	var p Path
	for _, part := range strings.Split(raw, ".") {
		if part == "" {
			return Path{}, fmt.Errorf("path %q contains an empty segment", raw)
		}

		matches := segmentRegex.FindStringSubmatch(part)
		if matches == nil {
			return Path{}, fmt.Errorf("invalid path segment %q", part)
		}

		if matches[2] == "" {
			p = p.Child(matches[1])
			continue
		}
		index, err := strconv.Atoi(matches[2])
		if err != nil {
			return Path{}, fmt.Errorf("invalid index in segment %q: %w", part, err)
		}
		p = p.Element(matches[1], index)
	}
	return p, nil
}
