// Package xlsx adapts excelize workbooks to the schedule.Sheet contract.
package xlsx

import (
	"bytes"
	"fmt"

	"schedule_notification_bot/internal/domain/schedule"

	"github.com/xuri/excelize/v2"
)

// Opener decodes uploaded workbook bytes into a schedule.Sheet.
type Opener struct{}

// Open decodes an xlsx workbook and materializes its first worksheet:
// the full cell grid plus the worksheet's merged regions. Only truly
// exceptional conditions (the workbook cannot be opened at all) return an
// error; unreadable individual cells surface as blanks.
func (Opener) Open(data []byte) (schedule.Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	name := sheets[0]

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	merges, err := f.GetMergeCells(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read merged cells of %q: %w", name, err)
	}
	regions := make([]schedule.Region, 0, len(merges))
	for _, m := range merges {
		minCol, minRow, err := excelize.CellNameToCoordinates(m.GetStartAxis())
		if err != nil {
			continue
		}
		maxCol, maxRow, err := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err != nil {
			continue
		}
		regions = append(regions, schedule.Region{
			MinRow: minRow,
			MaxRow: maxRow,
			MinCol: minCol,
			MaxCol: maxCol,
		})
	}

	return &gridSheet{rows: rows, regions: regions}, nil
}

type gridSheet struct {
	rows    [][]string
	regions []schedule.Region
}

func (g *gridSheet) Cell(row, col int) string {
	if row < 1 || row > len(g.rows) {
		return ""
	}
	r := g.rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

func (g *gridSheet) MergedRegions() []schedule.Region {
	return g.regions
}
