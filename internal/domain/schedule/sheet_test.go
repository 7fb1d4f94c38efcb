package schedule

// fakeSheet is an in-memory Sheet for tests: sparse cells plus a list of
// merged regions.
type fakeSheet struct {
	cells   map[[2]int]string
	regions []Region
}

func (f *fakeSheet) Cell(row, col int) string {
	return f.cells[[2]int{row, col}]
}

func (f *fakeSheet) MergedRegions() []Region {
	return f.regions
}

// testLayout builds a six-day layout with one cohort: time column 3, group
// columns 4 and 6, group labels on row 3, each day spanning 12 rows starting
// at row 5.
func testLayout() Layout {
	ranges := make([]DayRange, len(Days))
	start := 5
	for i, d := range Days {
		ranges[i] = DayRange{Day: d, StartRow: start, EndRow: start + 11}
		start += 13
	}
	return Layout{
		DayRanges: ranges,
		Cohorts: []Cohort{
			{Name: "first-course", TimeColumn: 3, GroupColumns: []int{4, 6}},
		},
		LabelRow: 3,
	}
}

func testUnions(t interface{ Fatalf(string, ...interface{}) }) UnionTable {
	unions, err := NewUnionTable(map[string][]string{
		"101":     {"101"},
		"102":     {"102"},
		"101-102": {"101", "102"},
	})
	if err != nil {
		t.Fatalf("NewUnionTable failed: %v", err)
	}
	return unions
}
