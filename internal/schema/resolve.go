package schema

import (
	"context"
	"fmt"

	"github.com/vk/restricteddsl/internal/nodepath"
)

// Resolve follows p from root through configuring and adding functions and
// returns the node type it ends at. Only segments naming an adding function
// may carry an index.
func (r *Registry) Resolve(ctx context.Context, root string, p nodepath.Path) (*Type, error) {
	t, err := r.Type(ctx, root)
	if err != nil {
		return nil, err
	}

	var walked nodepath.Path
	for _, seg := range p.Segments() {
		entry, ok := t.Lookup(seg.Name)
		if !ok {
			return nil, fmt.Errorf("'%s' has no member '%s' at '%s'", t.Name(), seg.Name, walked)
		}

		var next string
		switch c := entry.Category.(type) {
		case ConfiguringFunction:
			if seg.HasIndex() {
				return nil, fmt.Errorf("'%s' configures a single node and takes no index", seg)
			}
			next = c.Target
		case AddingFunction:
			next = c.Element
		default:
			return nil, fmt.Errorf("'%s' is a %s and has no nested node", seg.Name, entry.Category.Name())
		}

		if t, err = r.Type(ctx, next); err != nil {
			return nil, err
		}
		walked = walked.Child(seg.Name)
	}
	return t, nil
}
