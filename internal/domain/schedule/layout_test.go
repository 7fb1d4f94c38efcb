package schedule

import "testing"

func TestLayoutValidate(t *testing.T) {
	if err := testLayout().Validate(); err != nil {
		t.Fatalf("valid layout rejected: %v", err)
	}
}

func TestLayoutValidateRejectsOverlappingRanges(t *testing.T) {
	layout := testLayout()
	layout.DayRanges[1].StartRow = layout.DayRanges[0].EndRow // overlaps Monday
	if err := layout.Validate(); err == nil {
		t.Fatal("expected overlapping day ranges to be rejected")
	}
}

func TestLayoutValidateRejectsWrongDayCount(t *testing.T) {
	layout := testLayout()
	layout.DayRanges = layout.DayRanges[:5]
	if err := layout.Validate(); err == nil {
		t.Fatal("expected a five-day layout to be rejected")
	}
}

func TestLayoutValidateRejectsUnorderedGroupColumns(t *testing.T) {
	layout := testLayout()
	layout.Cohorts[0].GroupColumns = []int{6, 4}
	if err := layout.Validate(); err == nil {
		t.Fatal("expected non-increasing group columns to be rejected")
	}
}

func TestLayoutValidateRejectsLabelRowInsideRanges(t *testing.T) {
	layout := testLayout()
	layout.LabelRow = layout.DayRanges[0].StartRow
	if err := layout.Validate(); err == nil {
		t.Fatal("expected a label row inside the day ranges to be rejected")
	}
}

func TestLayoutValidateRejectsCohortWithoutColumns(t *testing.T) {
	layout := testLayout()
	layout.Cohorts[0].GroupColumns = nil
	if err := layout.Validate(); err == nil {
		t.Fatal("expected a cohort without group columns to be rejected")
	}
}
