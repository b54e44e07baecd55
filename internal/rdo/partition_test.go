package rdo

import (
	"testing"

	"github.com/ycho/rav1e/internal/context"
	"github.com/ycho/rav1e/internal/tiling"
)

// fillQuadrants writes four flat regions into p's visible area, one per
// 32x32-luma-equivalent quadrant, scaled by xdec/ydec so a chroma plane
// gets a proportionally sized version of the same pattern.
func fillQuadrants(p *tiling.Plane, xdec, ydec int, tl, tr, bl, br uint16) {
	halfW := 32 >> xdec
	halfH := 32 >> ydec
	for y := 0; y < p.Cfg.Height; y++ {
		for x := 0; x < p.Cfg.Width; x++ {
			var v uint16
			switch {
			case y < halfH && x < halfW:
				v = tl
			case y < halfH:
				v = tr
			case x < halfW:
				v = bl
			default:
				v = br
			}
			p.Set(x, y, v)
		}
	}
}

// S3 (spec §8 scenarios): a 64x64 image split into four solid-color
// 32x32 quadrants should prefer PARTITION_SPLIT over PARTITION_NONE at
// the top level, since any single flat predictor covering all four
// quadrants leaves three of them with large residuals.
func TestSearchPartitionPrefersSplitOnFourQuadrantImage(t *testing.T) {
	fi := NewFrameInvariants(64, 64, 64)
	fs := NewFrameState(fi)

	fillQuadrants(fs.Input.Planes[0], 0, 0, 0, 64, 128, 192)
	fillFrame(fs.Rec, 128)
	for p := 1; p < 3; p++ {
		fillQuadrants(fs.Input.Planes[p], 1, 1, 0, 64, 128, 192)
	}

	cw := context.NewContextWriter(fi.SBWidth*16, fi.SBHeight*16, 4096)
	bo := context.BlockOffset{X: 0, Y: 0}
	SearchPartition(fi, fs, cw, context.BLOCK_64X64, bo)

	if got := cw.Bc.GetPartition(bo); got != context.PARTITION_SPLIT {
		t.Errorf("GetPartition(top-level 64x64 over four quadrants) = %v, want PARTITION_SPLIT", got)
	}
}

// S6 (spec §8 scenarios, and invariant 6: RDO monotonicity): encoding
// the same input at increasing qindex must never increase the emitted
// byte count.
func TestEncodeTileByteCountIsMonotoneNonIncreasingAcrossQindexSweep(t *testing.T) {
	qindices := []int{50, 100, 150, 200}
	prev := -1
	for i, q := range qindices {
		fi := NewFrameInvariants(64, 64, q)
		fs := NewFrameState(fi)

		fillQuadrants(fs.Input.Planes[0], 0, 0, 0, 64, 128, 192)
		fillFrame(fs.Rec, 128)

		out := EncodeTile(fi, fs, 4096)
		if i > 0 && len(out) > prev {
			t.Errorf("qindex %d produced %d bytes, more than qindex %d's %d bytes (want non-increasing)", q, len(out), qindices[i-1], prev)
		}
		prev = len(out)
	}
}
