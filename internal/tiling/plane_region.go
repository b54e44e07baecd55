package tiling

import "github.com/pkg/errors"

// PlaneRegion is a read-only window onto a Plane. Where the Rust
// prototype holds a raw pointer plus a PhantomData borrow, this type
// holds the owning Plane and an absolute Rect and recomputes the linear
// index on every access; bounds are validated once at construction
// instead of being guaranteed by the borrow checker.
type PlaneRegion struct {
	plane *Plane
	rect  Rect
}

// NewPlaneRegion builds a PlaneRegion over area, resolved against
// parent's decimation and visible extent. Mirrors plane_region.rs's
// PlaneRegion::new.
func NewPlaneRegion(parent *Plane, area Area) (*PlaneRegion, error) {
	rect := area.ToRect(parent.Cfg.XDec, parent.Cfg.YDec, parent.Cfg.Width, parent.Cfg.Height)
	if rect.X < 0 || rect.Y < 0 || rect.X+rect.Width > parent.Cfg.Width || rect.Y+rect.Height > parent.Cfg.Height {
		return nil, errors.Wrapf(ErrOutOfBounds, "region %+v in plane %dx%d", rect, parent.Cfg.Width, parent.Cfg.Height)
	}
	return &PlaneRegion{plane: parent, rect: rect}, nil
}

// Rect returns the region's absolute rectangle.
func (r *PlaneRegion) Rect() Rect { return r.rect }

// At returns the sample at region-relative coordinate (x, y).
func (r *PlaneRegion) At(x, y int) uint16 {
	return r.plane.At(r.rect.X+x, r.rect.Y+y)
}

// Row returns the Width-long slice of region-relative row y.
func (r *PlaneRegion) Row(y int) []uint16 {
	start := r.plane.Index(r.rect.X, r.rect.Y+y)
	return r.plane.Data[start : start+r.rect.Width]
}

// Subregion narrows this region further, resolving area against this
// region's own decimation and extent.
func (r *PlaneRegion) Subregion(area Area) (*PlaneRegion, error) {
	rect := area.ToRect(r.plane.Cfg.XDec, r.plane.Cfg.YDec, r.rect.Width, r.rect.Height)
	if rect.X < 0 || rect.Y < 0 || rect.X+rect.Width > r.rect.Width || rect.Y+rect.Height > r.rect.Height {
		return nil, errors.Wrapf(ErrOutOfBounds, "subregion %+v in region %+v", rect, r.rect)
	}
	return &PlaneRegion{plane: r.plane, rect: Rect{X: r.rect.X + rect.X, Y: r.rect.Y + rect.Y, Width: rect.Width, Height: rect.Height}}, nil
}

// PlaneRegionMut is the mutable counterpart of PlaneRegion.
type PlaneRegionMut struct {
	PlaneRegion
}

// NewPlaneRegionMut builds a mutable PlaneRegion over area.
func NewPlaneRegionMut(parent *Plane, area Area) (*PlaneRegionMut, error) {
	ro, err := NewPlaneRegion(parent, area)
	if err != nil {
		return nil, err
	}
	return &PlaneRegionMut{PlaneRegion: *ro}, nil
}

// Set writes the sample at region-relative coordinate (x, y).
func (r *PlaneRegionMut) Set(x, y int, v uint16) {
	r.plane.Set(r.rect.X+x, r.rect.Y+y, v)
}

// RowMut returns the mutable Width-long slice of region-relative row y.
func (r *PlaneRegionMut) RowMut(y int) []uint16 {
	start := r.plane.Index(r.rect.X, r.rect.Y+y)
	return r.plane.Data[start : start+r.rect.Width]
}

// AsConst returns a read-only view of the same window.
func (r *PlaneRegionMut) AsConst() *PlaneRegion {
	return &r.PlaneRegion
}

// SubregionMut narrows this mutable region further.
func (r *PlaneRegionMut) SubregionMut(area Area) (*PlaneRegionMut, error) {
	ro, err := r.Subregion(area)
	if err != nil {
		return nil, err
	}
	return &PlaneRegionMut{PlaneRegion: *ro}, nil
}
