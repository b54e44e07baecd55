// Package context implements the AV1 block-metadata grid, the fixed
// mode/partition/transform enumerations, and the adaptive entropy models
// (CDFContext) together with the symbol emitter (ContextWriter) that
// consults them.
package context

// BlockSize enumerates the square block sizes this encoder considers.
// Only squares appear because partitioning is restricted to
// PARTITION_NONE and PARTITION_SPLIT (no rectangular splits).
type BlockSize int

const (
	BLOCK_4X4 BlockSize = iota
	BLOCK_8X8
	BLOCK_16X16
	BLOCK_32X32
	BLOCK_64X64
)

// BlockToPlaneShift converts an MI (4x4) grid coordinate into a plane
// sample coordinate: one MI cell spans 1<<BlockToPlaneShift samples.
const BlockToPlaneShift = 2

// MaxMibSize is the number of 4x4 MI cells along one edge of the largest
// superblock this encoder supports (64x64 samples / 4 = 16).
const MaxMibSize = 16

// blockSizeWide/blockSizeHigh give a block's width/height in samples;
// mi_size_wide/mi_size_high give the same in 4x4 MI cells.
var blockSizeWide = [...]int{4, 8, 16, 32, 64}
var blockSizeHigh = [...]int{4, 8, 16, 32, 64}
var miSizeWide = [...]int{1, 2, 4, 8, 16}
var miSizeHigh = [...]int{1, 2, 4, 8, 16}

// WidthPx returns the block's width in samples.
func (b BlockSize) WidthPx() int { return blockSizeWide[b] }

// HeightPx returns the block's height in samples.
func (b BlockSize) HeightPx() int { return blockSizeHigh[b] }

// WidthMi returns the block's width in 4x4 MI cells.
func (b BlockSize) WidthMi() int { return miSizeWide[b] }

// HeightMi returns the block's height in 4x4 MI cells.
func (b BlockSize) HeightMi() int { return miSizeHigh[b] }

// Decimated returns the chroma-plane block size after applying the
// plane's decimation factors.
func (b BlockSize) Decimated(xdec, ydec int) BlockSize {
	w := b.WidthPx() >> xdec
	for i, bs := range blockSizeWide {
		if bs == w {
			return BlockSize(i)
		}
	}
	return b
}

// TxSize is the size of a single transform block. Only 4x4 transforms are
// supported (spec: "reduced_tx mode").
type TxSize int

const TX_4X4 TxSize = 0

// BlockOffset is a coordinate in 4x4 MI units.
type BlockOffset struct {
	X, Y int
}

// SuperBlockOffset is a coordinate in 64x64 superblock units.
type SuperBlockOffset struct {
	X, Y int
}

// BlockOffset converts a superblock-relative MI offset (dx, dy) into an
// absolute BlockOffset.
func (sbo SuperBlockOffset) BlockOffset(dx, dy int) BlockOffset {
	return BlockOffset{X: sbo.X*MaxMibSize + dx, Y: sbo.Y*MaxMibSize + dy}
}

// RefType identifies a reference frame slot. Only intra coding is
// implemented, so every Block carries RefType(NoneFrame) in both slots;
// the field exists so the grid shape matches a full encoder's Block.
type RefType int

const NoneFrame RefType = 0

// MotionVector is a placeholder for inter-prediction motion data. The
// core never computes motion vectors (intra-only); the field is kept on
// Block so the grid matches what loop-restoration and CDEF metadata
// placeholders (spec Non-goals) expect to find.
type MotionVector struct {
	Row, Col int16
}

// Block is one cell of the minimum-inference (MI) grid: a 4x4 sample
// region's metadata. A semantic block larger than 4x4 writes identical
// metadata into every MI cell it covers (spec §3 invariant).
type Block struct {
	Mode             PredictionMode
	UVMode           PredictionMode
	BSize            BlockSize
	N4W, N4H         int
	TxSize           TxSize
	TxType           TxType
	Skip             bool
	SegmentationIdx  uint8
	RefFrames        [2]RefType
	MV               [2]MotionVector
	CdefIndex        uint8
	Partition        PartitionType
}

// IsInter reports whether the block was inter-predicted. Always false:
// this core is intra-only.
func (b *Block) IsInter() bool { return b.RefFrames[0] != NoneFrame }

// FrameBlocks is a 2-D grid of Block, sized ceil(width/4) x ceil(height/4)
// MI cells (spec §3).
type FrameBlocks struct {
	Blocks []Block
	Cols   int
	Rows   int
}

// NewFrameBlocks allocates a grid with the given MI-unit dimensions.
func NewFrameBlocks(cols, rows int) *FrameBlocks {
	return &FrameBlocks{
		Blocks: make([]Block, cols*rows),
		Cols:   cols,
		Rows:   rows,
	}
}

// At returns a pointer to the cell at (x, y) in MI units.
func (fb *FrameBlocks) At(x, y int) *Block {
	return &fb.Blocks[y*fb.Cols+x]
}
