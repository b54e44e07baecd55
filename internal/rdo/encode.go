package rdo

import "github.com/ycho/rav1e/internal/context"

// EncodeTile drives the whole per-frame search and emission pass (spec
// §4.7, §4.9): walk superblocks in raster order, resetting the
// left-coefficient context at the start of each row, run SearchPartition
// (which both decides and emits each superblock's final tree), then
// flush the range coder. Grounded on lib.rs's encode_tile, with one
// deliberate deviation: the prototype calls write_sb a second time after
// search_partition for the same superblock, which would re-emit symbols
// already written by search_partition's own terminal write_sb call;
// that redundant call is dropped here since spec §4.7's four-step
// search/record/emit sequence already ends with the single write_sb
// call search_partition performs.
func EncodeTile(fi *FrameInvariants, fs *FrameState, expectedSize int) []byte {
	cw := context.NewContextWriter(fi.SBWidth*16, fi.SBHeight*16, expectedSize)

	for sby := 0; sby < fi.SBHeight; sby++ {
		for p := 0; p < 3; p++ {
			cw.Bc.ResetLeftCoeffContext(p)
		}
		for sbx := 0; sbx < fi.SBWidth; sbx++ {
			sbo := context.SuperBlockOffset{X: sbx, Y: sby}
			bo := sbo.BlockOffset(0, 0)
			SearchPartition(fi, fs, cw, context.BLOCK_64X64, bo)
		}
	}

	out := cw.W.Done()
	out = append(out, 0) // superframe anti-emulation byte
	return out
}
