package rdo

import "github.com/ycho/rav1e/internal/context"

// SearchPartition recursively decides how the bsize block at bo should
// be split, trying PARTITION_NONE always and PARTITION_SPLIT when the
// block is square and at least fi.MinSplitableBsize. It records the
// winning decision into the block grid and returns its RD cost.
// Grounded verbatim on lib.rs's search_partition.
func SearchPartition(fi *FrameInvariants, fs *FrameState, cw *context.ContextWriter, bsize context.BlockSize, bo context.BlockOffset) float64 {
	bestPartition := context.PARTITION_NONE
	bs := bsize.WidthMi()
	hbs := bs >> 1

	rdoNone := SearchBestMode(fi, fs, cw, bsize, bo)
	cw.Bc.SetMode(bo, bsize, rdoNone.Mode)

	bestRDCost := rdoNone.RDCost

	squareBlk := bsize.WidthMi() == bsize.HeightMi()

	if squareBlk && bsize >= fi.MinSplitableBsize {
		cp := cw.Checkpoint()
		subsize := context.GetSubsize(bsize, context.PARTITION_SPLIT)

		rdCost0 := SearchPartition(fi, fs, cw, subsize, bo)
		rdCost1 := SearchPartition(fi, fs, cw, subsize, context.BlockOffset{X: bo.X + hbs, Y: bo.Y})
		rdCost2 := SearchPartition(fi, fs, cw, subsize, context.BlockOffset{X: bo.X, Y: bo.Y + hbs})
		rdCost3 := SearchPartition(fi, fs, cw, subsize, context.BlockOffset{X: bo.X + hbs, Y: bo.Y + hbs})

		cw.Rollback(cp)

		rdCostSum := rdCost0 + rdCost1 + rdCost2 + rdCost3

		if rdCostSum < bestRDCost {
			bestRDCost = rdCostSum
			bestPartition = context.PARTITION_SPLIT
		} else {
			cw.Bc.SetMode(bo, bsize, rdoNone.Mode)
		}
	}

	cw.Bc.SetPartition(bo, bestPartition)

	WriteSB(fi, fs, cw, bsize, bo)

	return bestRDCost
}
