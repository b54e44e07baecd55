package context

import "github.com/ycho/rav1e/internal/ec"

// ContextWriter aggregates a range-coder Writer, a CDFContext, and a
// BlockContext: the sole entry point through which the encoder emits any
// symbol (spec §3, §4.7).
type ContextWriter struct {
	W  *ec.Writer
	Fc *CDFContext
	Bc *BlockContext
}

// NewContextWriter builds a ContextWriter over a cols x rows (MI units)
// block grid, with fresh CDFs and a fresh range coder.
func NewContextWriter(cols, rows, expectedSize int) *ContextWriter {
	return &ContextWriter{
		W:  ec.NewWriter(expectedSize),
		Fc: NewCDFContext(),
		Bc: NewBlockContext(cols, rows),
	}
}

// WriteSkip emits the skip flag for the block at bo.
func (cw *ContextWriter) WriteSkip(bo BlockOffset, skip bool) {
	ctx := 0
	cw.W.WriteSymbol(cw.Fc.SkipCdf[ctx], boolToSym(skip))
	cw.Bc.At(bo).Skip = skip
}

// WriteIntraModeKf emits the keyframe-variant intra luma mode for the
// block at bo, selecting the CDF row via the above/left neighbor mode
// buckets (spec §4.7).
func (cw *ContextWriter) WriteIntraModeKf(bo BlockOffset, mode PredictionMode) {
	aboveCtx, leftCtx := cw.neighborModeBuckets(bo)
	cw.W.WriteSymbol(cw.Fc.KFYModeCdf[aboveCtx][leftCtx], int(mode))
}

// WriteIntraUVMode emits the chroma intra mode. uvMode is presently
// slaved to the luma mode (spec §9 Open Questions: "a conformant encoder
// would run an independent chroma-mode search; the spec permits but does
// not require this").
func (cw *ContextWriter) WriteIntraUVMode(uvMode, lumaMode PredictionMode) {
	cw.W.WriteSymbol(cw.Fc.UVModeCdf[lumaMode], int(uvMode))
}

// WriteTxType emits the transform type chosen for a block predicted with
// mode.
func (cw *ContextWriter) WriteTxType(txType TxType, mode PredictionMode) {
	cw.W.WriteSymbol(cw.Fc.TxTypeCdf[mode], int(txType))
}

// WritePartition emits the partition decision for bsize at bo.
func (cw *ContextWriter) WritePartition(bo BlockOffset, partition PartitionType, bsize BlockSize) {
	ctx := cw.Bc.PartitionContext(bo, bsize)
	cw.W.WriteSymbol(cw.Fc.PartitionCdf[bsize][ctx], int(partition))
}

// planeType maps a plane index to AV1's luma/chroma CDF-table axis (0 for
// luma, 1 for chroma; U and V share chroma statistics).
func planeType(p int) int {
	if p == 0 {
		return 0
	}
	return 1
}

// WriteCoeffs emits the AV1 coefficient token sequence for a quantized
// 4x4 transform block at bo on plane p (spec §4.7): an all-zero flag
// (via the eob=0 symbol), then the coded-position count (eob, one past
// the last nonzero position in scan order), then per-position levels in
// scan order, then the signs of the nonzero levels in the same order.
// It updates the block's left- and
// above-coefficient context strips. Returns whether any coefficient was
// nonzero.
func (cw *ContextWriter) WriteCoeffs(p int, bo BlockOffset, coeffs [16]int32) bool {
	pt := planeType(p)
	ctx := cw.Bc.CoeffContext(p, bo)

	eob := 0
	for i := 15; i >= 0; i-- {
		if coeffs[DefaultScan4x4[i]] != 0 {
			eob = i + 1
			break
		}
	}
	cw.W.WriteSymbol(cw.Fc.EobCdf[pt][ctx], eob)

	for i := 0; i < eob; i++ {
		pos := DefaultScan4x4[i]
		level := coeffs[pos]
		abs := level
		if abs < 0 {
			abs = -abs
		}
		band := coeffBand(i)
		base := abs
		if base > 3 {
			base = 3
		}
		cw.W.WriteSymbol(cw.Fc.CoeffBaseCdf[pt][band][ctx], int(base))
		if base == 3 {
			// Golomb-style extra-level bits: one "continue" (1) symbol
			// per unit above the base-range ceiling, then a terminating
			// 0, mirroring AV1's coeff_br range extension.
			for extra := abs - 3; extra > 0; extra-- {
				cw.W.WriteSymbol(cw.Fc.CoeffBrCdf[pt][ctx], 1)
			}
			cw.W.WriteSymbol(cw.Fc.CoeffBrCdf[pt][ctx], 0)
		}
	}

	for i := 0; i < eob; i++ {
		level := coeffs[DefaultScan4x4[i]]
		if level != 0 {
			sign := 0
			if level < 0 {
				sign = 1
			}
			cw.W.WriteSymbol(cw.Fc.SignCdf[pt], sign)
		}
	}

	nonzero := eob > 0
	cw.Bc.SetCoeffContext(p, bo, nonzero)
	return nonzero
}

// neighborModeBuckets derives the above/left KFYModeCdf row/column
// indices from the neighboring blocks' modes. Out-of-frame neighbors use
// bucket 0 (DC_PRED's bucket), matching the guard-band convention used
// elsewhere for unavailable neighbors (spec §4.5).
func (cw *ContextWriter) neighborModeBuckets(bo BlockOffset) (int, int) {
	above, left := 0, 0
	if bo.Y > 0 {
		above = modeBucket(cw.Bc.Blocks.At(bo.X, bo.Y-1).Mode)
	}
	if bo.X > 0 {
		left = modeBucket(cw.Bc.Blocks.At(bo.X-1, bo.Y).Mode)
	}
	return above, left
}

// modeBucket groups the 13 intra modes into kfModeContexts buckets for
// context selection, mirroring AV1's intra_mode_context table shape.
func modeBucket(mode PredictionMode) int {
	switch mode {
	case DC_PRED:
		return 0
	case V_PRED, D45_PRED, D113_PRED:
		return 1
	case H_PRED, D157_PRED, D203_PRED:
		return 2
	case D135_PRED, D67_PRED:
		return 3
	default:
		return 4
	}
}

func boolToSym(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Checkpoint is an opaque snapshot of the full ContextWriter state: the
// range coder, every adaptive CDF, and the block-context neighbor
// strips (spec §4.7). Checkpointing copies the whole CDFContext, which
// is the dominant cost of speculative search — the reason RDO search
// budgets are kept tight (spec §4.7).
type Checkpoint struct {
	w  ec.Checkpoint
	fc *CDFContext
	bc Snapshot
}

// Checkpoint captures the current state of cw.
func (cw *ContextWriter) Checkpoint() Checkpoint {
	return Checkpoint{
		w:  cw.W.Checkpoint(),
		fc: cw.Fc.Clone(),
		bc: cw.Bc.Checkpoint(),
	}
}

// Rollback restores cw to a prior Checkpoint.
func (cw *ContextWriter) Rollback(cp Checkpoint) {
	cw.W.Rollback(cp.w)
	cw.Fc = cp.fc
	cw.Bc.Rollback(cp.bc)
}
