package tiling

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPlaneGuardBandDistinguishesTopAndLeftEdges(t *testing.T) {
	p := NewPlane(16, 16, 0, 0)
	// Above the top edge, not in the left column: 127.
	if got := p.At(4, -1); got != 127 {
		t.Errorf("p.At(4,-1) = %d, want 127 (above top edge)", got)
	}
	// Left of the left edge, not above the top: 129.
	if got := p.At(-1, 4); got != 129 {
		t.Errorf("p.At(-1,4) = %d, want 129 (left of left edge)", got)
	}
	// Top-left corner, where neither neighbor is available: 128.
	if got := p.At(-1, -1); got != 128 {
		t.Errorf("p.At(-1,-1) = %d, want 128 (top-left corner)", got)
	}
}

func TestPlaneSetAtRoundTrips(t *testing.T) {
	p := NewPlane(16, 16, 0, 0)
	p.Set(3, 5, 200)
	if got := p.At(3, 5); got != 200 {
		t.Errorf("p.At(3,5) = %d, want 200", got)
	}
	// Writing one sample must not disturb its neighbors.
	if got := p.At(3, 4); got != 128 {
		t.Errorf("p.At(3,4) = %d, want untouched default 128", got)
	}
}

func TestPlaneRowReturnsVisibleWidth(t *testing.T) {
	p := NewPlane(8, 4, 0, 0)
	for x := 0; x < 8; x++ {
		p.Set(x, 2, uint16(x))
	}
	row := p.Row(2)
	if len(row) != 8 {
		t.Fatalf("len(Row(2)) = %d, want 8", len(row))
	}
	for x, v := range row {
		if v != uint16(x) {
			t.Errorf("Row(2)[%d] = %d, want %d", x, v, x)
		}
	}
}

func TestChromaPlaneGuardBandScalesWithDecimation(t *testing.T) {
	luma := NewPlane(64, 64, 0, 0)
	chroma := NewPlane(32, 32, 1, 1)
	if chroma.Cfg.XOrigin >= luma.Cfg.XOrigin {
		t.Errorf("chroma guard band (%d) should be narrower than luma's (%d)", chroma.Cfg.XOrigin, luma.Cfg.XOrigin)
	}
}

func TestRectAreaToRect(t *testing.T) {
	area := NewRectArea(2, 3, 4, 4)
	got := area.ToRect(0, 0, 64, 64)
	want := Rect{X: 2, Y: 3, Width: 4, Height: 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToRect mismatch (-want +got):\n%s", diff)
	}
}

func TestStartingAtAreaExtendsToParentEdge(t *testing.T) {
	area := NewStartingAtArea(10, 20)
	got := area.ToRect(0, 0, 64, 64)
	want := Rect{X: 10, Y: 20, Width: 54, Height: 44}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToRect mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockRectAreaConvertsMIUnitsToSamples(t *testing.T) {
	area := NewBlockRectArea(2, 3, 8, 8)
	got := area.ToRect(0, 0, 64, 64)
	want := Rect{X: 8, Y: 12, Width: 8, Height: 8}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToRect mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaneRegionBoundsChecking(t *testing.T) {
	p := NewPlane(16, 16, 0, 0)
	if _, err := NewPlaneRegion(p, NewRectArea(0, 0, 16, 16)); err != nil {
		t.Errorf("in-bounds region unexpectedly failed: %v", err)
	}
	if _, err := NewPlaneRegion(p, NewRectArea(0, 0, 17, 16)); err == nil {
		t.Errorf("out-of-bounds region (width 17 > plane width 16) unexpectedly succeeded")
	}
}

func TestPlaneRegionMutSetIsVisibleThroughConstView(t *testing.T) {
	p := NewPlane(16, 16, 0, 0)
	mut, err := NewPlaneRegionMut(p, NewRectArea(4, 4, 8, 8))
	if err != nil {
		t.Fatalf("NewPlaneRegionMut: %v", err)
	}
	mut.Set(1, 1, 77)
	if got := mut.AsConst().At(1, 1); got != 77 {
		t.Errorf("AsConst().At(1,1) = %d, want 77", got)
	}
	if got := p.At(5, 5); got != 77 {
		t.Errorf("underlying plane p.At(5,5) = %d, want 77 (region writes through to the plane)", got)
	}
}
