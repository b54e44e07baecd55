package tiling

import (
	"github.com/pkg/errors"
	"github.com/ycho/rav1e/internal/context"
)

// BlocksRegion is a read-only rectangular window (in 4x4 MI units) onto
// a context.FrameBlocks grid, grounded on original_source/src/tiling/
// blocks_region.rs's BlocksRegion. Like PlaneRegion, the Rust raw
// pointer is replaced by an owning *FrameBlocks plus an absolute offset
// and extent.
type BlocksRegion struct {
	blocks *context.FrameBlocks
	x, y   int
	cols   int
	rows   int
}

// NewBlocksRegion windows blocks to the MI rect (x, y, cols, rows).
func NewBlocksRegion(blocks *context.FrameBlocks, x, y, cols, rows int) (*BlocksRegion, error) {
	if x < 0 || y < 0 || x+cols > blocks.Cols || y+rows > blocks.Rows {
		return nil, errors.Wrapf(ErrOutOfBounds, "block region (%d,%d,%d,%d) in grid %dx%d", x, y, cols, rows, blocks.Cols, blocks.Rows)
	}
	return &BlocksRegion{blocks: blocks, x: x, y: y, cols: cols, rows: rows}, nil
}

// At returns the block at region-relative MI coordinate (bx, by).
func (r *BlocksRegion) At(bx, by int) *context.Block {
	return r.blocks.At(r.x+bx, r.y+by)
}

// Cols and Rows report the region's extent in MI units.
func (r *BlocksRegion) Cols() int { return r.cols }
func (r *BlocksRegion) Rows() int { return r.rows }

// BlocksRegionMut is the mutable counterpart of BlocksRegion.
type BlocksRegionMut struct {
	BlocksRegion
}

// NewBlocksRegionMut windows blocks to the MI rect (x, y, cols, rows).
func NewBlocksRegionMut(blocks *context.FrameBlocks, x, y, cols, rows int) (*BlocksRegionMut, error) {
	ro, err := NewBlocksRegion(blocks, x, y, cols, rows)
	if err != nil {
		return nil, err
	}
	return &BlocksRegionMut{BlocksRegion: *ro}, nil
}

// AsConst returns a read-only view of the same window.
func (r *BlocksRegionMut) AsConst() *BlocksRegion {
	return &r.BlocksRegion
}

// ForEach applies f to every block covering the bw x bh (MI units)
// footprint at region-relative (bx, by), matching blocks_region.rs's
// for_each (used to stamp a decided mode/partition across a block's
// whole MI footprint, not just its top-left unit).
func (r *BlocksRegionMut) ForEach(bx, by, bw, bh int, f func(b *context.Block)) {
	for dy := 0; dy < bh; dy++ {
		for dx := 0; dx < bw; dx++ {
			if by+dy >= r.rows || bx+dx >= r.cols {
				continue
			}
			f(r.At(bx+dx, by+dy))
		}
	}
}

// SetCdef stamps a CDEF index across the up-to-16x16-MI superblock
// footprint starting at region-relative (bx, by), clipped to the
// region's extent, mirroring blocks_region.rs's set_cdef.
func (r *BlocksRegionMut) SetCdef(bx, by int, idx uint8) {
	maxX := bx + context.MaxMibSize
	if maxX > r.cols {
		maxX = r.cols
	}
	maxY := by + context.MaxMibSize
	if maxY > r.rows {
		maxY = r.rows
	}
	for y := by; y < maxY; y++ {
		for x := bx; x < maxX; x++ {
			r.At(x, y).CdefIndex = idx
		}
	}
}
