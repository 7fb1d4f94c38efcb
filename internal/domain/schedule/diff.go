package schedule

// Affected names the teachers and raw group labels touched by a change
// between two published timetable versions.
type Affected struct {
	Teachers map[string]struct{}
	Groups   map[string]struct{}
}

// Empty reports whether no teacher and no group is affected.
func (a Affected) Empty() bool {
	return len(a.Teachers) == 0 && len(a.Groups) == 0
}

// Diff computes the symmetric difference of two record multisets under
// structural equality and collects the affected teacher names and raw group
// labels. Group fields that denote unions are expanded to their constituent
// raw labels before collection.
//
// If either snapshot is empty the diff reports nothing: a comparison is
// meaningless without both sides, and a first-ever upload must not be
// misreported as a mass change.
func Diff(old, cur []Record, unions UnionTable) Affected {
	affected := Affected{
		Teachers: make(map[string]struct{}),
		Groups:   make(map[string]struct{}),
	}
	if len(old) == 0 || len(cur) == 0 {
		return affected
	}

	counts := make(map[Record]int, len(old))
	for _, r := range old {
		counts[r]++
	}
	for _, r := range cur {
		counts[r]--
	}
	for r, n := range counts {
		if n == 0 {
			continue
		}
		if r.Teacher != ValueNone && r.Teacher != "" {
			affected.Teachers[r.Teacher] = struct{}{}
		}
		if r.Group != ValueNone && r.Group != "" {
			for _, label := range unions.Expand(r.Group) {
				affected.Groups[label] = struct{}{}
			}
		}
	}
	return affected
}
