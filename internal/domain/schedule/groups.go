package schedule

import (
	"fmt"
	"sort"
	"strings"
)

// UnionSeparator joins raw labels in composed fallback names, e.g. "101-102".
const UnionSeparator = "-"

// UnionTable maps a canonical display name to the exact set of raw group
// labels it stands for. Reverse lookups are exact-set matches; each raw-label
// set maps to at most one canonical name.
type UnionTable struct {
	byName map[string][]string // canonical name -> sorted raw labels
	byKey  map[string]string   // sorted-label key -> canonical name
}

// NewUnionTable builds a table from canonical-name -> raw-label mappings.
// It rejects entries with no labels and two names claiming the same label set.
func NewUnionTable(unions map[string][]string) (UnionTable, error) {
	t := UnionTable{
		byName: make(map[string][]string, len(unions)),
		byKey:  make(map[string]string, len(unions)),
	}
	for name, labels := range unions {
		if name == "" {
			return UnionTable{}, fmt.Errorf("union with empty canonical name")
		}
		if len(labels) == 0 {
			return UnionTable{}, fmt.Errorf("union %q has no raw labels", name)
		}
		sorted := append([]string(nil), labels...)
		sort.Strings(sorted)
		key := strings.Join(sorted, "\x00")
		if other, dup := t.byKey[key]; dup {
			return UnionTable{}, fmt.Errorf("unions %q and %q map the same label set", other, name)
		}
		t.byName[name] = sorted
		t.byKey[key] = name
	}
	return t, nil
}

// HasName reports whether name is a canonical name of the table.
func (t UnionTable) HasName(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Names returns the canonical names in sorted order.
func (t UnionTable) Names() []string {
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve maps a set of raw group labels to its canonical display name.
// On an exact-set match the configured name is returned; otherwise the labels
// are sorted and joined with the separator. Total and order-independent; an
// empty set resolves to the sentinel.
func (t UnionTable) Resolve(labels map[string]struct{}) string {
	if len(labels) == 0 {
		return ValueNone
	}
	sorted := make([]string, 0, len(labels))
	for l := range labels {
		sorted = append(sorted, l)
	}
	sort.Strings(sorted)
	if name, ok := t.byKey[strings.Join(sorted, "\x00")]; ok {
		return name
	}
	return strings.Join(sorted, UnionSeparator)
}

// Expand returns the raw labels behind a group name. Canonical names expand
// to their configured set; composed fallback names split on the separator, so
// a name like "101-999" still targets both raw groups.
func (t UnionTable) Expand(name string) []string {
	if labels, ok := t.byName[name]; ok {
		return append([]string(nil), labels...)
	}
	return strings.Split(name, UnionSeparator)
}
