package schedule

import (
	"strconv"
	"strings"
)

// Extract walks the layout against one worksheet and emits a normalized
// record for every teacher-bearing merged block. One pass per call; the pass
// is pure with respect to the sheet, so extracting the same sheet twice
// yields the same record multiset.
//
// Malformed individual cells degrade to sentinel values and never abort the
// pass. A pass that yields zero records overall signals an empty or
// malformed workbook to the caller.
func Extract(sheet Sheet, roster []string, layout Layout, unions UnionTable) []Record {
	geo := NewGeometry(sheet)
	var records []Record
	for _, teacher := range roster {
		needle := NormalizeName(teacher)
		if needle == "" {
			continue
		}
		for _, cohort := range layout.Cohorts {
			for _, dr := range layout.DayRanges {
				for row := dr.StartRow; row <= dr.EndRow; row++ {
					slot := parseSlot(CleanCell(sheet.Cell(row, cohort.TimeColumn)))
					assignRow := row + 1
					for _, col := range cohort.GroupColumns {
						// Each merged block is visited once, via its anchor.
						if !geo.IsAnchor(assignRow, col) {
							continue
						}
						region, _ := geo.RegionAt(assignRow, col)
						text := CleanCell(sheet.Cell(assignRow, col))
						if text == "" || !containsName(text, needle) {
							continue
						}
						records = append(records, Record{
							Day:     dr.Day,
							Slot:    slot,
							Group:   unions.Resolve(spannedGroups(sheet, cohort, layout.LabelRow, region)),
							Subject: subjectAt(sheet, row, region.MinCol),
							Teacher: teacher,
							Room:    roomAfter(sheet, cohort, assignRow, region.MaxCol),
						})
					}
				}
			}
		}
	}
	return records
}

func containsName(cellText, normalizedNeedle string) bool {
	normalized := NormalizeName(cellText)
	return normalized != "" && strings.Contains(normalized, normalizedNeedle)
}

// spannedGroups maps every column of the block's span that is a configured
// group column to its display label from the label row.
func spannedGroups(sheet Sheet, cohort Cohort, labelRow int, region Region) map[string]struct{} {
	labels := make(map[string]struct{})
	for _, gc := range cohort.GroupColumns {
		if gc < region.MinCol || gc > region.MaxCol {
			continue
		}
		if label := CleanCell(sheet.Cell(labelRow, gc)); label != "" {
			labels[label] = struct{}{}
		}
	}
	return labels
}

// subjectAt reads the subject from the block's anchor column at the slot row,
// one row above the teaching-assignment row.
func subjectAt(sheet Sheet, slotRow, anchorCol int) string {
	if subject := CleanCell(sheet.Cell(slotRow, anchorCol)); subject != "" {
		return subject
	}
	return ValueNone
}

// roomAfter reads the room from the first non-group column past the block's
// column span. A blank room cell yields the sentinel; the scan does not
// continue further, so a later group's room is never misattributed.
func roomAfter(sheet Sheet, cohort Cohort, assignRow, maxCol int) string {
	lastGroupCol := cohort.GroupColumns[len(cohort.GroupColumns)-1]
	for col := maxCol + 1; col <= lastGroupCol+2; col++ {
		if cohort.HasGroupColumn(col) {
			continue
		}
		if room := CleanCell(sheet.Cell(assignRow, col)); room != "" {
			return room
		}
		return ValueNone
	}
	return ValueNone
}

// parseSlot reads the pair index from the time-column label. A blank or
// unparsable label degrades to the numeric sentinel.
func parseSlot(label string) int {
	end := 0
	for end < len(label) && label[end] >= '0' && label[end] <= '9' {
		end++
	}
	if end == 0 {
		return SlotNone
	}
	slot, err := strconv.Atoi(label[:end])
	if err != nil {
		return SlotNone
	}
	return slot
}
