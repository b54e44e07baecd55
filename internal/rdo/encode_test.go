package rdo

import (
	"testing"

	"github.com/ycho/rav1e/internal/context"
)

func fillFrame(f *Frame, v uint16) {
	for _, p := range f.Planes {
		for i := range p.Data {
			p.Data[i] = v
		}
	}
}

func TestPlaneOffsetAppliesDecimation(t *testing.T) {
	bo := context.BlockOffset{X: 4, Y: 2}
	x, y := planeOffset(bo, 0, 0)
	if x != 16 || y != 8 {
		t.Errorf("planeOffset (luma) = (%d,%d), want (16,8)", x, y)
	}
	x, y = planeOffset(bo, 1, 1)
	if x != 8 || y != 4 {
		t.Errorf("planeOffset (chroma) = (%d,%d), want (8,4)", x, y)
	}
}

func TestDiff4x4IsZeroWhenPlanesMatch(t *testing.T) {
	fi := NewFrameInvariants(16, 16, 100)
	fs := NewFrameState(fi)
	fillFrame(fs.Input, 50)
	fillFrame(fs.Rec, 50)
	got := diff4x4(fs.Input.Planes[0], fs.Rec.Planes[0], 0, 0)
	var zero [16]int32
	if got != zero {
		t.Errorf("diff4x4(identical planes) = %v, want zero", got)
	}
}

func TestAddResidualClippedSaturatesSampleRange(t *testing.T) {
	fi := NewFrameInvariants(16, 16, 100)
	fs := NewFrameState(fi)
	fillFrame(fs.Rec, 250)
	var residual [16]int32
	for i := range residual {
		residual[i] = 100
	}
	addResidualClipped(fs.Rec.Planes[0], 0, 0, residual)
	if got := fs.Rec.Planes[0].At(0, 0); got != 255 {
		t.Errorf("addResidualClipped overflow = %d, want clamped to 255", got)
	}
}

func TestSearchBestModePicksDCOnAFlatBlock(t *testing.T) {
	fi := NewFrameInvariants(64, 64, 100)
	fs := NewFrameState(fi)
	fillFrame(fs.Input, 128)
	fillFrame(fs.Rec, 128)
	cw := context.NewContextWriter(fi.SBWidth*16, fi.SBHeight*16, 1024)

	out := SearchBestMode(fi, fs, cw, context.BLOCK_8X8, context.BlockOffset{X: 0, Y: 0})
	if out.Mode != context.DC_PRED {
		t.Errorf("SearchBestMode on a flat block chose %v, want DC_PRED (cheapest on uniform content)", out.Mode)
	}
	if out.RDCost < 0 {
		t.Errorf("RDCost = %v, want non-negative", out.RDCost)
	}
}

func TestSearchBestModeRollsBackWriterBetweenTrials(t *testing.T) {
	fi := NewFrameInvariants(64, 64, 100)
	fs := NewFrameState(fi)
	fillFrame(fs.Input, 128)
	fillFrame(fs.Rec, 128)
	cw := context.NewContextWriter(fi.SBWidth*16, fi.SBHeight*16, 1024)

	tellBefore := cw.W.TellFrac()
	SearchBestMode(fi, fs, cw, context.BLOCK_8X8, context.BlockOffset{X: 0, Y: 0})
	// Every trial's checkpoint/rollback pair must leave the writer exactly
	// where it started; only the caller's own winning write advances it.
	if got := cw.W.TellFrac(); got != tellBefore {
		t.Errorf("writer position after SearchBestMode = %d, want unchanged %d (all trials rolled back)", got, tellBefore)
	}
}

func TestEncodeTileProducesNonEmptyBitstream(t *testing.T) {
	fi := NewFrameInvariants(64, 64, 100)
	fi.MinSplitableBsize = context.BLOCK_64X64
	fs := NewFrameState(fi)
	fillFrame(fs.Input, 128)
	fillFrame(fs.Rec, 128)

	out := EncodeTile(fi, fs, 4096)
	if len(out) == 0 {
		t.Fatal("EncodeTile returned an empty payload")
	}
	if out[len(out)-1] != 0 {
		t.Errorf("last byte = %d, want 0 (superframe anti-emulation byte)", out[len(out)-1])
	}
}

func TestEncodeTileReconstructsFlatInputNearLossless(t *testing.T) {
	fi := NewFrameInvariants(64, 64, 10)
	fi.MinSplitableBsize = context.BLOCK_64X64
	fs := NewFrameState(fi)
	fillFrame(fs.Input, 128)
	fillFrame(fs.Rec, 0)

	EncodeTile(fi, fs, 4096)

	// At a low qindex a DC-predicted, all-zero-residual flat block should
	// reconstruct to (very close to) the original sample value.
	got := fs.Rec.Planes[0].At(32, 32)
	if got < 120 || got > 136 {
		t.Errorf("reconstructed flat sample = %d, want close to 128", got)
	}
}
