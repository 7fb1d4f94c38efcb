package schedule

import (
	"reflect"
	"testing"
)

var testRoster = []string{"Tajieva A", "Mamirbaeva D", "Koyshekenova T"}

// endToEndSheet holds one merged 2-column block under "Tajieva A." on the
// first day, slot 1, spanning groups 101 and 102, subject Math, room 204 in
// the adjoining column.
func endToEndSheet() *fakeSheet {
	return &fakeSheet{
		cells: map[[2]int]string{
			{3, 4}: "101",
			{3, 6}: "102",
			{5, 3}: "1",
			{5, 4}: "Math",
			{6, 4}: "Tajieva A.",
			{6, 7}: "204",
		},
		regions: []Region{
			{MinRow: 6, MaxRow: 6, MinCol: 4, MaxCol: 6},
		},
	}
}

func TestExtractEndToEnd(t *testing.T) {
	records := Extract(endToEndSheet(), testRoster, testLayout(), testUnions(t))

	want := []Record{{
		Day:     DayDuysembi,
		Slot:    1,
		Group:   "101-102",
		Subject: "Math",
		Teacher: "Tajieva A",
		Room:    "204",
	}}
	if !reflect.DeepEqual(records, want) {
		t.Fatalf("Extract = %+v, want %+v", records, want)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	sheet := endToEndSheet()
	layout := testLayout()
	unions := testUnions(t)

	first := Extract(sheet, testRoster, layout, unions)
	second := Extract(sheet, testRoster, layout, unions)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two passes over the same sheet differ: %+v vs %+v", first, second)
	}
}

func TestExtractVisitsEachBlockOnce(t *testing.T) {
	// The block spans both group columns; only the anchor at column 4 may
	// produce a record, never the spanned column 6.
	records := Extract(endToEndSheet(), testRoster, testLayout(), testUnions(t))
	if len(records) != 1 {
		t.Fatalf("expected exactly one record per merged block, got %d", len(records))
	}
}

func TestExtractSentinelTotality(t *testing.T) {
	// Blank slot label, blank subject, blank room: the record is still
	// emitted with every field set.
	sheet := &fakeSheet{
		cells: map[[2]int]string{
			{3, 4}:  "101",
			{3, 6}:  "102",
			{19, 4}: "Mamirbaeva D",
		},
		regions: []Region{
			{MinRow: 19, MaxRow: 19, MinCol: 4, MaxCol: 6},
		},
	}
	records := Extract(sheet, testRoster, testLayout(), testUnions(t))

	want := []Record{{
		Day:     DaySiyshembi,
		Slot:    SlotNone,
		Group:   "101-102",
		Subject: ValueNone,
		Teacher: "Mamirbaeva D",
		Room:    ValueNone,
	}}
	if !reflect.DeepEqual(records, want) {
		t.Fatalf("Extract = %+v, want %+v", records, want)
	}
}

func TestExtractBlankRoomDoesNotScanForward(t *testing.T) {
	// Room cell adjacent to the block is blank; a value further right must
	// not be attributed to this block.
	sheet := endToEndSheet()
	delete(sheet.cells, [2]int{6, 7})
	sheet.cells[[2]int{6, 9}] = "318"

	records := Extract(sheet, testRoster, testLayout(), testUnions(t))
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
	if records[0].Room != ValueNone {
		t.Errorf("blank adjacent room cell must yield the sentinel, got %q", records[0].Room)
	}
}

func TestExtractUnmatchedTeacherYieldsNothing(t *testing.T) {
	sheet := endToEndSheet()
	sheet.cells[[2]int{6, 4}] = "Somebody Else"

	records := Extract(sheet, testRoster, testLayout(), testUnions(t))
	if len(records) != 0 {
		t.Fatalf("expected no records for an unmatched name, got %+v", records)
	}
}

func TestExtractSingleGroupBlock(t *testing.T) {
	// A block covering only the first group column resolves to that group's
	// own label.
	sheet := &fakeSheet{
		cells: map[[2]int]string{
			{3, 4}: "101",
			{3, 6}: "102",
			{5, 3}: "2",
			{5, 4}: "History",
			{6, 4}: "Koyshekenova T.",
			{6, 5}: "105",
		},
		regions: []Region{
			{MinRow: 6, MaxRow: 6, MinCol: 4, MaxCol: 4},
		},
	}
	records := Extract(sheet, testRoster, testLayout(), testUnions(t))

	want := []Record{{
		Day:     DayDuysembi,
		Slot:    2,
		Group:   "101",
		Subject: "History",
		Teacher: "Koyshekenova T",
		Room:    "105",
	}}
	if !reflect.DeepEqual(records, want) {
		t.Fatalf("Extract = %+v, want %+v", records, want)
	}
}

func TestParseSlot(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{"6", 6},
		{"2-para", 2},
		{"", SlotNone},
		{"para", SlotNone},
	}
	for _, c := range cases {
		if got := parseSlot(c.in); got != c.want {
			t.Errorf("parseSlot(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
