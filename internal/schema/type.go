package schema

// Entry is the classification of one schema-visible member.
type Entry struct {
	Name     string
	Category Category
	Binding  Binding
}

// Type is the immutable schema of one node type. Entries keep declaration
// order.
type Type struct {
	name      string
	entries   []Entry
	byName    map[string]int
	invisible []string
	refs      []string
}

// Name returns the node type name.
func (t *Type) Name() string { return t.name }

// Lookup returns the visible entry called name.
func (t *Type) Lookup(name string) (Entry, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Entries returns all visible entries in declaration order.
func (t *Type) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// IsInvisible reports whether name was declared without a marker.
func (t *Type) IsInvisible(name string) bool {
	for _, n := range t.invisible {
		if n == name {
			return true
		}
	}
	return false
}

// Invisible returns the names of members excluded from the schema.
func (t *Type) Invisible() []string {
	out := make([]string, len(t.invisible))
	copy(out, t.invisible)
	return out
}

// PureFunctions returns the pure function entries of the type.
func (t *Type) PureFunctions() []Entry {
	var out []Entry
	for _, e := range t.entries {
		if _, ok := e.Category.(PureFunction); ok {
			out = append(out, e)
		}
	}
	return out
}

// References returns the node types reachable through configuring and
// adding functions.
func (t *Type) References() []string {
	out := make([]string, len(t.refs))
	copy(out, t.refs)
	return out
}

// buildType classifies every member of decl.
func buildType(decl TypeDecl, classify func(Member) (Category, error)) (*Type, error) {
	t := &Type{
		name:   decl.Name,
		byName: make(map[string]int),
	}
	var errs []error
	seenRefs := make(map[string]bool)

	for _, m := range decl.Members {
		cat, err := classify(m)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		var ref string
		switch c := cat.(type) {
		case Invisible:
			t.invisible = append(t.invisible, m.Name)
			continue
		case ConfiguringFunction:
			ref = c.Target
		case AddingFunction:
			ref = c.Element
		case AssignableProperty, PureFunction:
		default:
			panic("schema: unhandled category " + cat.Name())
		}

		if _, dup := t.byName[m.Name]; dup {
			errs = append(errs, definitionError(decl.Name, m.Name, RuleDuplicateMember, "declared more than once"))
			continue
		}
		t.byName[m.Name] = len(t.entries)
		t.entries = append(t.entries, Entry{Name: m.Name, Category: cat, Binding: m.Binding})

		if ref != "" && !seenRefs[ref] {
			seenRefs[ref] = true
			t.refs = append(t.refs, ref)
		}
	}

	if len(errs) > 0 {
		return nil, joinErrors(errs)
	}
	return t, nil
}
