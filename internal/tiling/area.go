package tiling

// Rect is an absolute, plane-decimation-aware rectangle: x/y are in the
// decimated coordinate space of whichever plane the Rect describes
// (spec §4.1). Grounded verbatim on original_source/src/tiling/
// plane_region.rs's Rect.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Decimated returns the Rect scaled into a plane with the given
// decimation factors, for deriving a chroma-plane rect from a luma one.
func (r Rect) Decimated(xdec, ydec int) Rect {
	return Rect{
		X:      r.X >> xdec,
		Y:      r.Y >> ydec,
		Width:  r.Width >> xdec,
		Height: r.Height >> ydec,
	}
}

// Area is the tagged union of ways to describe a sub-region of a parent
// region: an absolute rect, a top-left corner inheriting the parent's
// remaining extent, or the same two anchored to block (4x4 MI)
// coordinates instead of sample coordinates. Grounded verbatim on
// plane_region.rs's Area enum.
type Area struct {
	kind                int
	X, Y                int
	Width, Height       int
	BlockX, BlockY      int
	HasExplicitExtent   bool
}

const (
	areaRect = iota
	areaStartingAt
	areaBlockRect
	areaBlockStartingAt
)

// NewRectArea builds an Area describing an absolute sample-space rect.
func NewRectArea(x, y, width, height int) Area {
	return Area{kind: areaRect, X: x, Y: y, Width: width, Height: height, HasExplicitExtent: true}
}

// NewStartingAtArea builds an Area anchored at (x, y) that extends to
// the parent region's far edge.
func NewStartingAtArea(x, y int) Area {
	return Area{kind: areaStartingAt, X: x, Y: y}
}

// NewBlockRectArea builds an Area anchored at a block (4x4 MI)
// coordinate with an explicit sample-space width/height.
func NewBlockRectArea(blockX, blockY, width, height int) Area {
	return Area{kind: areaBlockRect, BlockX: blockX, BlockY: blockY, Width: width, Height: height, HasExplicitExtent: true}
}

// NewBlockStartingAtArea builds an Area anchored at a block coordinate
// that extends to the parent region's far edge.
func NewBlockStartingAtArea(blockX, blockY int) Area {
	return Area{kind: areaBlockStartingAt, BlockX: blockX, BlockY: blockY}
}

// ToRect resolves the Area against a parent's decimation factors and
// sample-space extent into an absolute Rect, mirroring plane_region.rs's
// Area::to_rect.
func (a Area) ToRect(xdec, ydec, parentWidth, parentHeight int) Rect {
	switch a.kind {
	case areaRect:
		return Rect{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height}
	case areaStartingAt:
		return Rect{X: a.X, Y: a.Y, Width: parentWidth - a.X, Height: parentHeight - a.Y}
	case areaBlockRect:
		x, y := blockToPlane(a.BlockX, xdec), blockToPlane(a.BlockY, ydec)
		return Rect{X: x, Y: y, Width: a.Width, Height: a.Height}
	case areaBlockStartingAt:
		x, y := blockToPlane(a.BlockX, xdec), blockToPlane(a.BlockY, ydec)
		return Rect{X: x, Y: y, Width: parentWidth - x, Height: parentHeight - y}
	default:
		panic("tiling: invalid Area kind")
	}
}

// blockToPlane converts a 4x4-MI block coordinate into plane-sample
// space at the given decimation.
func blockToPlane(blockCoord, dec int) int {
	return (blockCoord * 4) >> dec
}
