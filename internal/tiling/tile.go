package tiling

// TileRect describes a tile's luma-plane footprint in sample
// coordinates. Grounded on original_source/src/tiling/tile.rs's
// TileRect; this core only ever builds a single tile spanning the whole
// frame, but the type is kept distinct from a bare Rect so a future
// multi-tile encoder has somewhere to put per-tile boundary metadata
// (spec §4.1 single-tile scope; Non-goals exclude multi-tile output,
// not this seam).
type TileRect struct {
	X, Y          int
	Width, Height int
}

// Decimated scales the tile rect into a chroma plane's coordinate space.
func (t TileRect) Decimated(xdec, ydec int) TileRect {
	return TileRect{X: t.X >> xdec, Y: t.Y >> ydec, Width: t.Width >> xdec, Height: t.Height >> ydec}
}

// ToRect converts a TileRect to the Rect a PlaneRegion constructor
// expects.
func (t TileRect) ToRect() Rect {
	return Rect{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}

// Planes is the per-plane sample storage a Tile windows into: index 0
// is luma, 1/2 are chroma (spec §3).
type Planes [3]*Plane

// Tile is a read-only per-plane view over a TileRect, one PlaneRegion
// per plane. Grounded on tile.rs's Tile.
type Tile struct {
	Planes [3]*PlaneRegion
}

// NewTile builds a Tile over lumaRect, deriving each chroma plane's
// window by decimating lumaRect with that plane's own factors.
func NewTile(planes Planes, lumaRect TileRect) (*Tile, error) {
	t := &Tile{}
	for i, p := range planes {
		rect := lumaRect
		if i > 0 {
			rect = lumaRect.Decimated(p.Cfg.XDec, p.Cfg.YDec)
		}
		region, err := NewPlaneRegion(p, NewRectArea(rect.X, rect.Y, rect.Width, rect.Height))
		if err != nil {
			return nil, err
		}
		t.Planes[i] = region
	}
	return t, nil
}

// TileMut is the mutable counterpart of Tile.
type TileMut struct {
	Planes [3]*PlaneRegionMut
}

// NewTileMut builds a mutable Tile over lumaRect.
func NewTileMut(planes Planes, lumaRect TileRect) (*TileMut, error) {
	t := &TileMut{}
	for i, p := range planes {
		rect := lumaRect
		if i > 0 {
			rect = lumaRect.Decimated(p.Cfg.XDec, p.Cfg.YDec)
		}
		region, err := NewPlaneRegionMut(p, NewRectArea(rect.X, rect.Y, rect.Width, rect.Height))
		if err != nil {
			return nil, err
		}
		t.Planes[i] = region
	}
	return t, nil
}

// AsConst returns a read-only view of the same tile.
func (t *TileMut) AsConst() *Tile {
	c := &Tile{}
	for i, p := range t.Planes {
		c.Planes[i] = p.AsConst()
	}
	return c
}
