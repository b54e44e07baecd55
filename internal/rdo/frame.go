// Package rdo implements the recursive partitioning and rate-distortion
// search (spec §4.7): per-superblock mode and partition decisions, and
// the final bitstream emission that replays the decided tree.
//
// Grounded verbatim on original_source/src/lib.rs's search_best_mode,
// search_partition, write_sb, write_b and write_tx_b, translated from
// Rust's reference-and-mutation style into explicit Go pointer receivers
// on FrameState/ContextWriter.
package rdo

import (
	"github.com/ycho/rav1e/internal/context"
	"github.com/ycho/rav1e/internal/tiling"
)

// FrameType mirrors lib.rs's FrameType (spec §6: "ftype in {KEY, INTER,
// INTRA_ONLY, S}"). This core only ever emits KEY frames; the other
// variants mirror lib.rs. The uncompressed header writes its frame-type
// field as the constant 2 and does not read FType.
type FrameType int

const (
	FrameTypeKey FrameType = iota
	FrameTypeInter
	FrameTypeIntraOnly
	FrameTypeSwitching
)

func (t FrameType) String() string {
	switch t {
	case FrameTypeKey:
		return "Key frame"
	case FrameTypeInter:
		return "Inter frame"
	case FrameTypeIntraOnly:
		return "Intra only frame"
	case FrameTypeSwitching:
		return "Switching frame"
	default:
		return "Unknown frame type"
	}
}

// Sequence holds the handful of per-sequence bitstream parameters that
// outlive a single frame (spec §6).
type Sequence struct {
	Profile uint8
}

// FrameInvariants are the per-frame parameters the driver supplies
// before encoding begins (spec §6: "Frame invariants provided by the
// driver").
type FrameInvariants struct {
	QIndex            int
	Width             int
	Height            int
	SBWidth           int
	SBHeight          int
	Number            uint64
	FType             FrameType
	ShowExistingFrame bool

	// MinSplitableBsize is the smallest square block size
	// search_partition is still allowed to recurse below (spec §9 Open
	// Questions: the prototype hardcoded BLOCK_64X64 "for debugging",
	// with BLOCK_8X8 commented out as the production value; this core
	// makes it a frame invariant instead of a compile-time choice).
	MinSplitableBsize context.BlockSize
}

// NewFrameInvariants derives sb_width/sb_height from width/height,
// rounding up to whole 64-sample superblocks (spec §6), and defaults
// MinSplitableBsize to BLOCK_8X8, the prototype's documented production
// value.
func NewFrameInvariants(width, height, qindex int) *FrameInvariants {
	return &FrameInvariants{
		QIndex:            qindex,
		Width:             width,
		Height:            height,
		SBWidth:           (width + 63) / 64,
		SBHeight:          (height + 63) / 64,
		FType:             FrameTypeKey,
		MinSplitableBsize: context.BLOCK_8X8,
	}
}

// Frame is a frame's three sample planes (spec §3): luma at full
// resolution, chroma subsampled 4:2:0.
type Frame struct {
	Planes tiling.Planes
}

// NewFrame allocates a 4:2:0 frame sized width x height luma samples.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Planes: tiling.Planes{
			tiling.NewPlane(width, height, 0, 0),
			tiling.NewPlane(width/2, height/2, 1, 1),
			tiling.NewPlane(width/2, height/2, 1, 1),
		},
	}
}

// FrameState bundles the input (source) and rec (reconstruction) frames
// an encode pass reads from and writes to (spec §4.2). Block metadata
// lives in the ContextWriter's BlockContext, not here, matching lib.rs's
// FrameState{input, rec} (the block grid belongs to the writer that
// decides and emits it).
//
// TS windows Input/Rec as a single tiling.TileState spanning the whole
// frame (spec §4.1 single-tile scope), and every sample read/write in
// the RDO search and emission path goes through TS.Input/TS.Rec rather
// than Input/Rec directly, so a block at a tile edge and a block away
// from one go through the same bounds-checked accessor. TS.Blocks windows
// a FrameBlocks of its own, not the ContextWriter's: the block grid a
// ContextWriter decides and emits into is a distinct concern (context
// selectors, checkpoint/rollback) that FrameState's sample-oriented
// TileState has no need to share.
type FrameState struct {
	Input *Frame
	Rec   *Frame
	TS    *tiling.TileState
}

// NewFrameState allocates input/rec frames sized for fi's padded
// superblock extent.
func NewFrameState(fi *FrameInvariants) *FrameState {
	w := fi.SBWidth * 64
	h := fi.SBHeight * 64
	input := NewFrame(w, h)
	rec := NewFrame(w, h)
	blocks := context.NewFrameBlocks(fi.SBWidth*16, fi.SBHeight*16)
	ts, err := tiling.NewTileState(input.Planes, rec.Planes, blocks, w, h)
	if err != nil {
		panic("rdo: tile state does not cover the padded frame: " + err.Error())
	}
	return &FrameState{
		Input: input,
		Rec:   rec,
		TS:    ts,
	}
}
