package tiling

import "github.com/ycho/rav1e/internal/context"

// TileState bundles everything a single tile's encode pass touches: its
// input and reconstruction sample windows and its block-metadata window.
// Grounded on original_source/src/tiling/tile_state.rs's TileState, with
// the downscaled input_hres/input_qres planes and the deblocking-filter
// state dropped — both serve lookahead rate control and loop filtering,
// neither of which this single-frame intra-only core performs (spec
// Non-goals).
type TileState struct {
	Input  *TileMut
	Rec    *TileMut
	Blocks *BlocksRegionMut
}

// NewTileState builds a TileState spanning the full frame: a single
// tile, since this core never splits a frame into multiple tiles (spec
// §4.1).
func NewTileState(input, rec Planes, blocks *context.FrameBlocks, width, height int) (*TileState, error) {
	rect := TileRect{X: 0, Y: 0, Width: width, Height: height}
	in, err := NewTileMut(input, rect)
	if err != nil {
		return nil, err
	}
	out, err := NewTileMut(rec, rect)
	if err != nil {
		return nil, err
	}
	bc, err := NewBlocksRegionMut(blocks, 0, 0, blocks.Cols, blocks.Rows)
	if err != nil {
		return nil, err
	}
	return &TileState{Input: in, Rec: out, Blocks: bc}, nil
}
