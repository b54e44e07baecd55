package rdo

import (
	"github.com/ycho/rav1e/internal/context"
	"github.com/ycho/rav1e/internal/predict"
	"github.com/ycho/rav1e/internal/quantize"
	"github.com/ycho/rav1e/internal/transform"
)

// planeOffset converts a block offset (in 4x4 MI units) into the sample
// coordinates of plane index p, accounting for that plane's chroma
// decimation (spec §4.1/§4.2).
func planeOffset(bo context.BlockOffset, xdec, ydec int) (x, y int) {
	return (bo.X * 4) >> xdec, (bo.Y * 4) >> ydec
}

// planeSampleWriter is the read-write subset of tiling.Plane/
// tiling.PlaneRegionMut the reconstruction path needs; every function
// below runs identically over either, so the production path can window
// through a FrameState's TileState instead of a bare Plane.
type planeSampleWriter interface {
	planeSampleReader
	Set(x, y int, v uint16)
}

// edgeAt reads the above/left/corner reference samples a predictor at
// sample coordinate (x, y) on plane needs, from the reconstruction
// plane (spec §4.5: predictors must read already-reconstructed
// neighbors, not the original input, so the decoder can reproduce the
// same prediction). At a real frame boundary (x==0 or y==0) these reads
// land in the plane's guard band rather than reconstructed content;
// Plane's guard band carries AV1's differentiated unavailable-neighbor
// defaults (127 above, 129 left, 128 at the top-left corner), so no
// extra edge-availability branching is needed here.
func edgeAt(plane planeSampleReader, x, y int) predict.Edge {
	var e predict.Edge
	for i := 0; i < 4; i++ {
		e.Above[i] = plane.At(x+i, y-1)
		e.AboveRight[i] = plane.At(x+4+i, y-1)
		e.Left[i] = plane.At(x-1, y+i)
		e.BelowLeft[i] = plane.At(x-1, y+4+i)
	}
	e.TopLeft = plane.At(x-1, y-1)
	return e
}

// diff4x4 computes input-minus-reconstruction over a 4x4 block at
// sample coordinate (x, y), matching lib.rs's diff_4x4.
func diff4x4(input, rec planeSampleReader, x, y int) [16]int32 {
	var out [16]int32
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			out[j*4+i] = int32(input.At(x+i, y+j)) - int32(rec.At(x+i, y+j))
		}
	}
	return out
}

// addResidualClipped adds residual onto rec at sample coordinate (x, y),
// clipping to the 8-bit sample range, matching lib.rs's iht4x4_add.
func addResidualClipped(rec planeSampleWriter, x, y int, residual [16]int32) {
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			v := int32(rec.At(x+i, y+j)) + residual[j*4+i]
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			rec.Set(x+i, y+j, uint16(v))
		}
	}
}

// writeTxB predicts, differences, forward-transforms, quantizes, emits
// coefficients, then dequantizes and inverse-transforms back onto the
// reconstruction plane so later neighbors predict from lossy samples,
// not the original input (spec §4.7: "the inverse path is essential").
// Grounded verbatim on lib.rs's write_tx_b. bo is in plane p's own MI
// units (writeB already decimates the chroma offset), so no further
// decimation is applied here.
func writeTxB(fi *FrameInvariants, fs *FrameState, cw *context.ContextWriter, p int, bo context.BlockOffset, mode context.PredictionMode, txType context.TxType) {
	input := fs.TS.Input.Planes[p]
	rec := fs.TS.Rec.Planes[p]
	x, y := planeOffset(bo, 0, 0)

	if !cw.Bc.At(bo).IsInter() {
		edge := edgeAt(rec, x, y)
		pred := predict.Predict(mode, edge)
		for j := 0; j < 4; j++ {
			for i := 0; i < 4; i++ {
				rec.Set(x+i, y+j, pred[j*4+i])
			}
		}
	}

	residual := diff4x4(input, rec, x, y)

	tt := transform.Type(txType)
	coeffs := transform.Forward(tt, residual)
	levels := quantize.Quantize(coeffs, fi.QIndex)
	cw.WriteCoeffs(p, bo, levels)

	dequant := quantize.Dequantize(levels, fi.QIndex)
	recon := transform.Inverse(tt, dequant)
	addResidualClipped(rec, x, y, recon)
}

// writeB emits one prediction block's full decision set: mode, skip,
// chroma mode (slaved to luma), tx type, and every 4x4 transform block
// it covers, luma first then chroma. Grounded verbatim on lib.rs's
// write_b, with the chroma block-offset bug fixed per spec §9's Open
// Question decision: the original computed uv_bo from bo.x for both
// axes; here each axis uses its own coordinate.
func writeB(fi *FrameInvariants, fs *FrameState, cw *context.ContextWriter, mode context.PredictionMode, bsize context.BlockSize, bo context.BlockOffset) {
	cw.Bc.At(bo).Mode = mode
	cw.WriteSkip(bo, false)
	cw.WriteIntraModeKf(bo, mode)

	uvMode := mode
	cw.WriteIntraUVMode(uvMode, mode)
	txType := context.DCT_DCT
	cw.WriteTxType(txType, mode)

	bw := bsize.WidthMi()
	bh := bsize.HeightMi()

	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			txBo := context.BlockOffset{X: bo.X + bx, Y: bo.Y + by}
			writeTxB(fi, fs, cw, 0, txBo, mode, txType)
		}
	}

	uvTxType := context.IntraModeToTxType(uvMode)
	chromaPlane := fs.Input.Planes[1]
	uvBo := context.BlockOffset{
		X: bo.X >> chromaPlane.Cfg.XDec,
		Y: bo.Y >> chromaPlane.Cfg.YDec,
	}
	for p := 1; p < 3; p++ {
		for by := 0; by < bh>>1; by++ {
			for bx := 0; bx < bw>>1; bx++ {
				txBo := context.BlockOffset{X: uvBo.X + bx, Y: uvBo.Y + by}
				writeTxB(fi, fs, cw, p, txBo, uvMode, uvTxType)
			}
		}
	}
}

// WriteSB emits the final bitstream symbols for the decided partition
// tree rooted at bo: the partition symbol, then either one prediction
// block (PARTITION_NONE) or four recursive calls over the quadrants
// (PARTITION_SPLIT). Grounded verbatim on lib.rs's write_sb.
func WriteSB(fi *FrameInvariants, fs *FrameState, cw *context.ContextWriter, bsize context.BlockSize, bo context.BlockOffset) {
	bs := bsize.WidthMi()
	hbs := bs >> 1

	partition := cw.Bc.GetPartition(bo)
	subsize := context.GetSubsize(bsize, context.PARTITION_SPLIT)

	cw.WritePartition(bo, partition, bsize)

	switch partition {
	case context.PARTITION_NONE:
		mode := cw.Bc.GetMode(bo)
		writeB(fi, fs, cw, mode, bsize, bo)
	case context.PARTITION_SPLIT:
		WriteSB(fi, fs, cw, subsize, bo)
		WriteSB(fi, fs, cw, subsize, context.BlockOffset{X: bo.X + hbs, Y: bo.Y})
		WriteSB(fi, fs, cw, subsize, context.BlockOffset{X: bo.X, Y: bo.Y + hbs})
		WriteSB(fi, fs, cw, subsize, context.BlockOffset{X: bo.X + hbs, Y: bo.Y + hbs})
	default:
		panic("rdo: invalid partition in decided tree")
	}

	cw.Bc.UpdatePartitionContext(bo, subsize, bsize)
}
