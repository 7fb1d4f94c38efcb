package schedule

// Region is the bounding box of a merged cell range, 1-based inclusive.
type Region struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// Contains reports whether the cell at (row, col) lies inside the region.
func (r Region) Contains(row, col int) bool {
	return row >= r.MinRow && row <= r.MaxRow && col >= r.MinCol && col <= r.MaxCol
}

// Sheet is a read-only view of one worksheet: cell values by coordinate plus
// the worksheet's merged regions. Coordinates are 1-based; out-of-range
// lookups return the empty string.
type Sheet interface {
	Cell(row, col int) string
	MergedRegions() []Region
}
