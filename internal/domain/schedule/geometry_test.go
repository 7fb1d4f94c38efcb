package schedule

import "testing"

func TestGeometryRegionAt(t *testing.T) {
	sheet := &fakeSheet{
		cells: map[[2]int]string{},
		regions: []Region{
			{MinRow: 6, MaxRow: 6, MinCol: 4, MaxCol: 6},
			{MinRow: 10, MaxRow: 11, MinCol: 8, MaxCol: 8},
		},
	}
	geo := NewGeometry(sheet)

	region, ok := geo.RegionAt(6, 4)
	if !ok {
		t.Fatal("expected anchor cell to be inside a region")
	}
	if region.MinCol != 4 || region.MaxCol != 6 {
		t.Errorf("unexpected region bounds: %+v", region)
	}

	// Interior cell of the same region.
	region, ok = geo.RegionAt(6, 5)
	if !ok {
		t.Fatal("expected interior cell to be inside a region")
	}
	if region.MinRow != 6 || region.MinCol != 4 {
		t.Errorf("interior lookup returned wrong region: %+v", region)
	}

	// Singleton cell.
	if _, ok := geo.RegionAt(2, 2); ok {
		t.Error("expected singleton cell to report no region")
	}

	// Memoized lookups must return the same answer.
	for i := 0; i < 3; i++ {
		if _, ok := geo.RegionAt(6, 5); !ok {
			t.Fatal("memoized lookup changed its answer")
		}
		if _, ok := geo.RegionAt(2, 2); ok {
			t.Fatal("memoized singleton lookup changed its answer")
		}
	}
}

func TestGeometryIsAnchor(t *testing.T) {
	sheet := &fakeSheet{
		regions: []Region{{MinRow: 6, MaxRow: 7, MinCol: 4, MaxCol: 6}},
	}
	geo := NewGeometry(sheet)

	if !geo.IsAnchor(6, 4) {
		t.Error("top-left cell must be the anchor")
	}
	if geo.IsAnchor(6, 5) || geo.IsAnchor(7, 4) {
		t.Error("non-top-left cells must not be anchors")
	}
	if geo.IsAnchor(1, 1) {
		t.Error("cell outside any region must not be an anchor")
	}
}
