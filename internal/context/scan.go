package context

// DefaultScan4x4 orders the 16 coefficient positions of a 4x4 transform
// block for token emission (spec §4.7: "per-position levels in scan
// order (zig-zag for 4x4)"). Grounded on the same diagonal zig-zag
// traversal the teacher's internal/lossy/encode_quant.go uses
// (kReverseZigzag), adapted to AV1's 4x4 default scan.
var DefaultScan4x4 = [16]int{
	0, 1, 4, 8,
	5, 2, 3, 6,
	9, 12, 13, 10,
	7, 11, 14, 15,
}

// coeffBand buckets a scan position into one of coeffBands context
// buckets, used to select which CoeffBaseCdf row a position's level
// emission adapts.
func coeffBand(scanPos int) int {
	switch {
	case scanPos == 0:
		return 0
	case scanPos < 4:
		return 1
	case scanPos < 10:
		return 2
	default:
		return 3
	}
}
