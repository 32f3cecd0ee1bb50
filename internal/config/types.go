package config

import (
	"sort"
	"strings"
	"unicode"
)

// Types is an ordered mapping from commit type to its description. Plain Go
// maps do not keep insertion order, and the order of commit types is part of
// the configuration: they are presented to the user in the order they appear
// in the file.
type Types struct {
	keys []string
	desc map[string]string
}

// Add appends a commit type with its description. Adding an existing type
// replaces its description without changing its position.
func (t *Types) Add(name, description string) {
	if t.desc == nil {
		t.desc = make(map[string]string)
	}
	if _, ok := t.desc[name]; !ok {
		t.keys = append(t.keys, name)
	}
	t.desc[name] = description
}

// Keys returns the commit types in order.
func (t Types) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Description returns the description of a commit type. The second result
// reports whether the type exists.
func (t Types) Description(name string) (string, bool) {
	d, ok := t.desc[name]
	return d, ok
}

// Len returns the number of commit types.
func (t Types) Len() int { return len(t.keys) }

// typesFromMap builds an ordered Types from an unordered map, laying the
// entries out in the given key order. Keys absent from the order (or a nil
// order) are appended sorted, so no type is ever lost.
func typesFromMap(m map[string]string, order []string) Types {
	var t Types
	for _, k := range order {
		if d, ok := m[k]; ok {
			t.Add(k, d)
		}
	}
	if t.Len() < len(m) {
		rest := make([]string, 0, len(m)-t.Len())
		for k := range m {
			if _, ok := t.desc[k]; !ok {
				rest = append(rest, k)
			}
		}
		sort.Strings(rest)
		for _, k := range rest {
			t.Add(k, m[k])
		}
	}
	return t
}

// SplitTypeAndDesc splits a v0.1 commit type entry of the form
// "type description" on its first run of whitespace.
func SplitTypeAndDesc(entry string) (name, description string) {
	i := strings.IndexFunc(entry, unicode.IsSpace)
	if i < 0 {
		return entry, ""
	}
	return entry[:i], strings.TrimLeftFunc(entry[i:], unicode.IsSpace)
}
