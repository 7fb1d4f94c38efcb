package schedule

import "fmt"

// DayRange is the inclusive span of sheet rows one day occupies.
type DayRange struct {
	Day      Day `json:"day"`
	StartRow int `json:"start_row"`
	EndRow   int `json:"end_row"`
}

// Cohort describes one course block of the workbook: the ordered columns
// holding its group labels and the column holding the pair index.
type Cohort struct {
	Name         string `json:"name"`
	TimeColumn   int    `json:"time_column"`
	GroupColumns []int  `json:"group_columns"`
}

// HasGroupColumn reports whether col is one of the cohort's group columns.
func (c Cohort) HasGroupColumn(col int) bool {
	for _, gc := range c.GroupColumns {
		if gc == col {
			return true
		}
	}
	return false
}

// Layout is the physical geometry of the published workbook. It is supplied
// by configuration, validated once at startup and immutable afterwards.
type Layout struct {
	DayRanges []DayRange `json:"day_ranges"`
	Cohorts   []Cohort   `json:"cohorts"`
	// LabelRow is the row holding the group display labels, above the first
	// teaching row.
	LabelRow int `json:"label_row"`
}

// Validate checks the structural invariants of the layout: one range per
// working day in week order, ranges increasing and non-overlapping, label row
// above the first range, and strictly increasing group columns per cohort.
func (l Layout) Validate() error {
	if len(l.DayRanges) != len(Days) {
		return fmt.Errorf("layout must define %d day ranges, got %d", len(Days), len(l.DayRanges))
	}
	prevEnd := 0
	for i, dr := range l.DayRanges {
		if dr.Day != Days[i] {
			return fmt.Errorf("day range %d: expected day %s, got %s", i, Days[i], dr.Day)
		}
		if dr.StartRow < 1 || dr.EndRow < dr.StartRow {
			return fmt.Errorf("day range for %s: invalid rows %d-%d", dr.Day, dr.StartRow, dr.EndRow)
		}
		if dr.StartRow <= prevEnd {
			return fmt.Errorf("day range for %s overlaps or precedes the previous range", dr.Day)
		}
		prevEnd = dr.EndRow
	}
	if l.LabelRow < 1 || l.LabelRow >= l.DayRanges[0].StartRow {
		return fmt.Errorf("label row %d must lie above the first day range (row %d)", l.LabelRow, l.DayRanges[0].StartRow)
	}
	if len(l.Cohorts) == 0 {
		return fmt.Errorf("layout must define at least one cohort")
	}
	for _, c := range l.Cohorts {
		if c.Name == "" {
			return fmt.Errorf("cohort with empty name")
		}
		if c.TimeColumn < 1 {
			return fmt.Errorf("cohort %s: invalid time column %d", c.Name, c.TimeColumn)
		}
		if len(c.GroupColumns) == 0 {
			return fmt.Errorf("cohort %s: no group columns", c.Name)
		}
		prev := 0
		for _, gc := range c.GroupColumns {
			if gc <= prev {
				return fmt.Errorf("cohort %s: group columns must be strictly increasing", c.Name)
			}
			prev = gc
		}
	}
	return nil
}
