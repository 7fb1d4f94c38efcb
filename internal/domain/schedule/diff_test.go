package schedule

import (
	"reflect"
	"testing"
)

func sampleSnapshot() []Record {
	return []Record{
		{Day: DayDuysembi, Slot: 1, Group: "101-102", Subject: "Math", Teacher: "Tajieva A", Room: "204"},
		{Day: DayDuysembi, Slot: 2, Group: "101", Subject: "History", Teacher: "Koyshekenova T", Room: "105"},
		{Day: DayJuma, Slot: 3, Group: "102", Subject: "Physics", Teacher: "Mamirbaeva D", Room: "318"},
	}
}

func TestDiffIdenticalSnapshots(t *testing.T) {
	unions := testUnions(t)
	affected := Diff(sampleSnapshot(), sampleSnapshot(), unions)
	if !affected.Empty() {
		t.Fatalf("diff of identical snapshots must be empty, got %+v", affected)
	}
}

func TestDiffReorderedSnapshot(t *testing.T) {
	unions := testUnions(t)
	reordered := sampleSnapshot()
	reordered[0], reordered[2] = reordered[2], reordered[0]
	affected := Diff(sampleSnapshot(), reordered, unions)
	if !affected.Empty() {
		t.Fatalf("record order must not count as a change, got %+v", affected)
	}
}

func TestDiffEmptySideReportsNothing(t *testing.T) {
	unions := testUnions(t)
	if affected := Diff(nil, sampleSnapshot(), unions); !affected.Empty() {
		t.Errorf("diff against absent prior snapshot must report nothing, got %+v", affected)
	}
	if affected := Diff(sampleSnapshot(), nil, unions); !affected.Empty() {
		t.Errorf("diff against an empty replacement must report nothing, got %+v", affected)
	}
}

func TestDiffChangedRecord(t *testing.T) {
	unions := testUnions(t)
	cur := sampleSnapshot()
	cur[0].Room = "207" // moved room for the 101-102 union lesson

	affected := Diff(sampleSnapshot(), cur, unions)

	if _, ok := affected.Teachers["Tajieva A"]; !ok {
		t.Errorf("expected Tajieva A among affected teachers, got %v", affected.Teachers)
	}
	if len(affected.Teachers) != 1 {
		t.Errorf("only the changed record's teacher may be affected, got %v", affected.Teachers)
	}
	// The union group expands to its raw labels.
	wantGroups := map[string]struct{}{"101": {}, "102": {}}
	if !reflect.DeepEqual(affected.Groups, wantGroups) {
		t.Errorf("affected groups = %v, want %v", affected.Groups, wantGroups)
	}
}

func TestDiffIsSymmetric(t *testing.T) {
	unions := testUnions(t)
	cur := sampleSnapshot()
	cur[2].Slot = 4

	forward := Diff(sampleSnapshot(), cur, unions)
	backward := Diff(cur, sampleSnapshot(), unions)

	if !reflect.DeepEqual(forward, backward) {
		t.Fatalf("diff must identify the same affected sets in both directions: %+v vs %+v", forward, backward)
	}
}

func TestDiffCountsDuplicates(t *testing.T) {
	unions := testUnions(t)
	old := sampleSnapshot()
	cur := append(sampleSnapshot(), sampleSnapshot()[0]) // same record twice

	affected := Diff(old, cur, unions)
	if _, ok := affected.Teachers["Tajieva A"]; !ok {
		t.Errorf("a record whose count differs must register as changed, got %+v", affected)
	}
}

func TestDiffSkipsSentinelFields(t *testing.T) {
	unions := testUnions(t)
	old := []Record{{Day: DayDuysembi, Slot: 1, Group: ValueNone, Subject: "Math", Teacher: ValueNone, Room: "1"}}
	cur := []Record{{Day: DayDuysembi, Slot: 1, Group: ValueNone, Subject: "Math", Teacher: ValueNone, Room: "2"}}

	affected := Diff(old, cur, unions)
	if len(affected.Teachers) != 0 || len(affected.Groups) != 0 {
		t.Fatalf("sentinel teacher/group fields must not be collected, got %+v", affected)
	}
}
