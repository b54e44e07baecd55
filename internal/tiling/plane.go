// Package tiling implements the zero-copy borrowed-window types over
// frame-sized sample planes and block-metadata grids (spec §3, §4.1,
// §4.2): Plane/PlaneRegion, FrameBlocks/BlocksRegion, Tile/TileState.
//
// The Rust prototype these types are rebuilt from (original_source/src/
// tiling/*.rs) encodes a borrowed view as a raw pointer plus a
// PhantomData lifetime, asserting at construction that the borrow never
// escapes its parent. Go has no lifetimes; this package keeps the same
// invariant by construction (every view holds a pointer to its owning
// Plane/FrameBlocks plus a window Rect, and every access recomputes the
// absolute index) rather than through pointer arithmetic, and still
// asserts the invariants that make the windows safe to share (region
// fits in parent, index in bounds).
package tiling

import "github.com/pkg/errors"

// ErrOutOfBounds is returned when a plane or region constructor is asked
// to cover an area that would not fit its parent (spec §7 "Malformed": an
// internal invariant check failed).
var ErrOutOfBounds = errors.New("tiling: region out of bounds")

// MaxSbSize is the largest superblock edge length in samples; the guard
// band reserved around a Plane's visible area must be at least this wide
// so directional prediction can always reach off-edge neighbors (spec
// §4.1).
const MaxSbSize = 64

// PlaneConfig describes a Plane's storage geometry (spec §3).
type PlaneConfig struct {
	Stride      int
	AllocHeight int
	Width       int
	Height      int
	XOrigin     int
	YOrigin     int
	XDec        int
	YDec        int
}

// Plane is a rectangular array of samples with a guard band reserved
// above and left of the visible origin (spec §3, §4.1). Samples are
// stored as uint16 so both 8- and 10-bit content share one
// representation; 8-bit callers simply never exceed 255.
type Plane struct {
	Cfg  PlaneConfig
	Data []uint16
}

// NewPlane allocates a plane of the given visible size with decimation
// factors xdec/ydec (0 or 1) and a guard band of MaxSbSize samples,
// halved when either decimation factor is 1.
func NewPlane(width, height, xdec, ydec int) *Plane {
	origin := MaxSbSize >> xdecMax(xdec, ydec)
	stride := origin + width + origin
	allocHeight := origin + height + origin
	cfg := PlaneConfig{
		Stride:      stride,
		AllocHeight: allocHeight,
		Width:       width,
		Height:      height,
		XOrigin:     origin,
		YOrigin:     origin,
		XDec:        xdec,
		YDec:        ydec,
	}
	data := make([]uint16, stride*allocHeight)
	for r := 0; r < allocHeight; r++ {
		above := r < origin
		for c := 0; c < stride; c++ {
			left := c < origin
			data[r*stride+c] = edgeDefault(above, left)
		}
	}
	return &Plane{
		Cfg:  cfg,
		Data: data,
	}
}

// edgeDefault returns the guard-band sample AV1 uses before any real
// content has been written: 127 above the top edge, 129 left of the
// left edge, 128 where neither neighbor is available (the top-left
// corner) or where both are (ordinary visible samples, overwritten by
// Set before anything reads them).
func edgeDefault(above, left bool) uint16 {
	switch {
	case above && left:
		return 128
	case above:
		return 127
	case left:
		return 129
	default:
		return 128
	}
}

// xdecMax returns the larger of xdec/ydec so luma and chroma guard bands
// stay proportionate to their own decimation.
func xdecMax(xdec, ydec int) int {
	if xdec > ydec {
		return xdec
	}
	return ydec
}

// Index returns the linear storage offset of visible coordinate (x, y).
func (p *Plane) Index(x, y int) int {
	return (p.Cfg.YOrigin+y)*p.Cfg.Stride + p.Cfg.XOrigin + x
}

// At returns the sample at visible coordinate (x, y).
func (p *Plane) At(x, y int) uint16 {
	return p.Data[p.Index(x, y)]
}

// Set writes the sample at visible coordinate (x, y).
func (p *Plane) Set(x, y int, v uint16) {
	p.Data[p.Index(x, y)] = v
}

// Row returns the storage slice for visible row y starting at the
// visible x=0 column, width samples wide.
func (p *Plane) Row(y int) []uint16 {
	start := p.Index(0, y)
	return p.Data[start : start+p.Cfg.Width]
}
