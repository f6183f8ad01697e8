package arguments

import "sort"

// Entry is one caller supplied argument. Named entries carry a parameter
// name, positional entries do not; an empty Name may still be named.
type Entry struct {
	Name  string
	Named bool
	Value any
}

// Positional returns an entry without a name.
func Positional(v any) Entry {
	return Entry{Value: v}
}

// Named returns an entry bound to the parameter name.
func Named(name string, v any) Entry {
	return Entry{Name: name, Named: true, Value: v}
}

// Collection is an ordered sequence of entries as supplied by the caller.
type Collection []Entry

// Of collects entries in the given order.
func Of(entries ...Entry) Collection {
	return Collection(entries)
}

// List returns a positional collection of values.
func List(values ...any) Collection {
	c := make(Collection, len(values))
	for i, v := range values {
		c[i] = Positional(v)
	}
	return c
}

// Dict returns a named collection. Entries are ordered by name.
func Dict(m map[string]any) Collection {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	c := make(Collection, len(names))
	for i, name := range names {
		c[i] = Named(name, m[name])
	}
	return c
}

// Values returns the entry values in order.
func (c Collection) Values() []any {
	out := make([]any, len(c))
	for i, e := range c {
		out[i] = e.Value
	}
	return out
}

// Lookup returns the value of the last named entry called name.
func (c Collection) Lookup(name string) (any, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Named && c[i].Name == name {
			return c[i].Value, true
		}
	}
	return nil, false
}
