package rdo

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ycho/rav1e/internal/context"
	"github.com/ycho/rav1e/internal/quantize"
)

// planeSampleReader is the read-only subset of tiling.Plane/
// tiling.PlaneRegion that RDO's distortion measurements need; sseWxH
// works identically over either, so it can run against either a bare
// Plane or a TileState's windowed PlaneRegion.
type planeSampleReader interface {
	At(x, y int) uint16
}

// Output is the result of a mode or partition search: the winning
// decision and its rate-distortion cost, mirroring lib.rs's RDOOutput.
type Output struct {
	RDCost float64
	Mode   context.PredictionMode
}

// sseWxH sums squared sample differences between input and rec over a
// w x h block at sample coordinate (x, y), matching lib.rs's sse_wxh.
// The block's differences are reduced with a single gonum floats.Dot
// rather than a hand-rolled accumulator.
func sseWxH(input, rec planeSampleReader, x, y, w, h int) int64 {
	diff := make([]float64, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			diff[j*w+i] = float64(input.At(x+i, y+j)) - float64(rec.At(x+i, y+j))
		}
	}
	return int64(floats.Dot(diff, diff))
}

// SearchBestMode tries every intra mode in context.RAV1EIntraModes at bo,
// checkpointing the writer before each trial and rolling it back after,
// and keeps the one minimizing D + lambda*R (spec §4.7 step 1). Grounded
// verbatim on lib.rs's search_best_mode.
func SearchBestMode(fi *FrameInvariants, fs *FrameState, cw *context.ContextWriter, bsize context.BlockSize, bo context.BlockOffset) Output {
	lambda := quantize.Lambda(fi.QIndex)

	bestMode := context.DC_PRED
	bestRD := math.MaxFloat64
	tell := cw.W.TellFrac()
	w := bsize.WidthPx()
	h := bsize.HeightPx()

	x, y := planeOffset(bo, 0, 0)

	for _, mode := range context.RAV1EIntraModes {
		cp := cw.Checkpoint()

		writeB(fi, fs, cw, mode, bsize, bo)
		d := sseWxH(fs.TS.Input.Planes[0], fs.TS.Rec.Planes[0], x, y, w, h)
		r := float64(cw.W.TellFrac()-tell) / 8.0

		rd := float64(d) + lambda*r
		if rd < bestRD {
			bestRD = rd
			bestMode = mode
		}

		cw.Rollback(cp)
	}

	return Output{RDCost: bestRD, Mode: bestMode}
}
