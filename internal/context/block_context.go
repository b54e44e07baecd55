package context

// BlockContext is the running neighbor state consulted while choosing
// context selectors for adaptive symbols: above/left coefficient-nonzero
// strips (one per plane), above/left partition strips, and a borrow of
// the frame's block grid so mode/partition decisions can be read back
// after a speculative write_b (spec §3, §4.7).
type BlockContext struct {
	Blocks *FrameBlocks

	AbovePartitionContext []uint8
	LeftPartitionContext  [MaxMibSize]uint8

	AboveCoeffContext [3][]uint8
	LeftCoeffContext  [3][MaxMibSize]uint8
}

// NewBlockContext allocates a BlockContext over a cols x rows (MI units,
// luma space) block grid.
func NewBlockContext(cols, rows int) *BlockContext {
	bc := &BlockContext{
		Blocks:                NewFrameBlocks(cols, rows),
		AbovePartitionContext: make([]uint8, cols),
	}
	for p := 0; p < 3; p++ {
		bc.AboveCoeffContext[p] = make([]uint8, cols)
	}
	return bc
}

// At returns the block at bo.
func (bc *BlockContext) At(bo BlockOffset) *Block {
	return bc.Blocks.At(bo.X, bo.Y)
}

// SetMode records mode into every MI cell bsize covers starting at bo.
func (bc *BlockContext) SetMode(bo BlockOffset, bsize BlockSize, mode PredictionMode) {
	bc.forEach(bo, bsize, func(b *Block) { b.Mode = mode })
}

// SetPartition records the chosen partition at bo's top-left cell.
func (bc *BlockContext) SetPartition(bo BlockOffset, partition PartitionType) {
	bc.At(bo).Partition = partition
}

// GetPartition reads back the partition decided for bo.
func (bc *BlockContext) GetPartition(bo BlockOffset) PartitionType {
	return bc.At(bo).Partition
}

// GetMode reads back the mode decided for bo.
func (bc *BlockContext) GetMode(bo BlockOffset) PredictionMode {
	return bc.At(bo).Mode
}

func (bc *BlockContext) forEach(bo BlockOffset, bsize BlockSize, f func(*Block)) {
	bw, bh := bsize.WidthMi(), bsize.HeightMi()
	for y := 0; y < bh; y++ {
		for x := 0; x < bw; x++ {
			f(bc.Blocks.At(bo.X+x, bo.Y+y))
		}
	}
}

// ResetLeftCoeffContext clears the left coefficient-context strip for
// plane p, called at the start of every superblock row (spec §4.7's
// per-row reset, mirrored from encode_tile's reset_left_coeff_context).
func (bc *BlockContext) ResetLeftCoeffContext(p int) {
	bc.LeftCoeffContext[p] = [MaxMibSize]uint8{}
}

// ResetLeftPartitionContext clears the left partition-context strip.
func (bc *BlockContext) ResetLeftPartitionContext() {
	bc.LeftPartitionContext = [MaxMibSize]uint8{}
}

// partitionCtxLookup mirrors AV1's partition_context_lookup: the value a
// block of the given size contributes to its neighbors' above/left
// partition-context strips.
var partitionCtxLookup = [...]uint8{
	BLOCK_4X4:   15,
	BLOCK_8X8:   14,
	BLOCK_16X16: 12,
	BLOCK_32X32: 8,
	BLOCK_64X64: 0,
}

// PartitionContext derives the 0..3 context selector for bsize at bo from
// the above/left partition strips (spec §4.7: "partition context =
// f(left_partition_ctx, above_partition_ctx, block_size)").
func (bc *BlockContext) PartitionContext(bo BlockOffset, bsize BlockSize) int {
	above := bc.AbovePartitionContext[bo.X]
	left := bc.LeftPartitionContext[bo.Y%MaxMibSize]
	bsl := partitionCtxLookup[bsize]
	ctx := 0
	if (above>>uint(bsl))&1 != 0 {
		ctx |= 1
	}
	if (left>>uint(bsl))&1 != 0 {
		ctx |= 2
	}
	return ctx
}

// UpdatePartitionContext refreshes the above/left partition strips over
// bsize's footprint at bo after write_sb emits its decision (spec §4.9).
func (bc *BlockContext) UpdatePartitionContext(bo BlockOffset, subsize, bsize BlockSize) {
	bw := bsize.WidthMi()
	v := partitionCtxLookup[subsize]
	for i := 0; i < bw; i++ {
		if bo.X+i < len(bc.AbovePartitionContext) {
			bc.AbovePartitionContext[bo.X+i] = v
		}
		bc.LeftPartitionContext[(bo.Y+i)%MaxMibSize] = v
	}
}

// CoeffContext derives the 0..3 nz-context selector for a transform block
// at bo on plane p from the above/left coefficient-nonzero strips.
func (bc *BlockContext) CoeffContext(p int, bo BlockOffset) int {
	above := int(bc.AboveCoeffContext[p][bo.X])
	left := int(bc.LeftCoeffContext[p][bo.Y%MaxMibSize])
	ctx := above + left
	if ctx > 3 {
		ctx = 3
	}
	return ctx
}

// SetCoeffContext records whether the transform block at bo on plane p
// produced any nonzero coefficient, for subsequent neighbor queries.
func (bc *BlockContext) SetCoeffContext(p int, bo BlockOffset, nonzero bool) {
	v := uint8(0)
	if nonzero {
		v = 1
	}
	bc.AboveCoeffContext[p][bo.X] = v
	bc.LeftCoeffContext[p][bo.Y%MaxMibSize] = v
}

// Snapshot is the opaque checkpoint of BlockContext's mutable neighbor
// strips (spec §4.7: checkpointing copies "a copy of bc neighbor
// strips"). The block grid itself is not snapshotted: search_partition's
// callers explicitly re-set the winning mode/partition after a trial, so
// the grid need not be rolled back (grounded on
// original_source/src/lib.rs's search_partition, which calls
// cw.bc.set_mode again after comparing split vs none costs).
type Snapshot struct {
	abovePartition []uint8
	leftPartition  [MaxMibSize]uint8
	aboveCoeff     [3][]uint8
	leftCoeff      [3][MaxMibSize]uint8
}

// Checkpoint captures the current neighbor-strip state.
func (bc *BlockContext) Checkpoint() Snapshot {
	s := Snapshot{
		abovePartition: append([]uint8(nil), bc.AbovePartitionContext...),
		leftPartition:  bc.LeftPartitionContext,
		leftCoeff:      bc.LeftCoeffContext,
	}
	for p := 0; p < 3; p++ {
		s.aboveCoeff[p] = append([]uint8(nil), bc.AboveCoeffContext[p]...)
	}
	return s
}

// Rollback restores the neighbor-strip state from a Snapshot.
func (bc *BlockContext) Rollback(s Snapshot) {
	copy(bc.AbovePartitionContext, s.abovePartition)
	bc.LeftPartitionContext = s.leftPartition
	bc.LeftCoeffContext = s.leftCoeff
	for p := 0; p < 3; p++ {
		copy(bc.AboveCoeffContext[p], s.aboveCoeff[p])
	}
}
