package schedule

// Geometry answers merged-region containment queries for one worksheet.
// Regions are sheet-scoped, so build a fresh Geometry per extraction pass.
// Anchor cells are indexed for O(1) lookup and containment results are
// memoized per coordinate, since the extractor revisits the same cells once
// per roster entry.
type Geometry struct {
	regions []Region
	anchors map[[2]int]Region
	memo    map[[2]int]*Region // nil value records a singleton cell
}

// NewGeometry indexes the sheet's merged regions by their top-left cell.
func NewGeometry(s Sheet) *Geometry {
	regions := s.MergedRegions()
	anchors := make(map[[2]int]Region, len(regions))
	for _, r := range regions {
		anchors[[2]int{r.MinRow, r.MinCol}] = r
	}
	return &Geometry{
		regions: regions,
		anchors: anchors,
		memo:    make(map[[2]int]*Region),
	}
}

// RegionAt returns the merged region containing (row, col). The second
// return is false when the cell is a singleton.
func (g *Geometry) RegionAt(row, col int) (Region, bool) {
	key := [2]int{row, col}
	if r, ok := g.anchors[key]; ok {
		return r, true
	}
	if cached, ok := g.memo[key]; ok {
		if cached == nil {
			return Region{}, false
		}
		return *cached, true
	}
	for _, r := range g.regions {
		if r.Contains(row, col) {
			found := r
			g.memo[key] = &found
			return r, true
		}
	}
	g.memo[key] = nil
	return Region{}, false
}

// IsAnchor reports whether (row, col) is the top-left cell of a merged
// region. Each merged block is visited exactly once through its anchor.
func (g *Geometry) IsAnchor(row, col int) bool {
	_, ok := g.anchors[[2]int{row, col}]
	return ok
}
