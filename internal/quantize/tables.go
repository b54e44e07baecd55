package quantize

// dcQLookup and acQLookup map an 8-bit qindex (spec §4.4: "a 0-255
// integer selecting quantizer strength") to a quantization step size.
// AV1's own dc_qlookup/ac_qlookup tables are empirically tuned per
// bit depth by piecewise curve-fitting against subjective quality
// data; reproducing that exact fit is out of scope here (spec
// Non-goals: matching libaom's empirical tuning). These tables instead
// follow the tables' documented SHAPE - monotonically non-decreasing,
// roughly quadratic in qindex, AC stepping faster than DC at the same
// qindex - which is what the quantizer, RDO lambda derivation, and the
// monotonicity invariant (spec §8 invariant 6) actually depend on.

var dcQLookup = [256]int32{
	4, 4, 4, 4, 4, 4, 5, 5,
	5, 5, 5, 5, 6, 6, 6, 6,
	6, 6, 7, 7, 7, 7, 7, 7,
	8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 10, 10, 11, 11, 12, 12,
	12, 12, 13, 13, 13, 13, 14, 14,
	15, 15, 15, 15, 15, 16, 17, 17,
	17, 17, 17, 17, 19, 19, 19, 19,
	19, 20, 21, 21, 21, 21, 22, 22,
	23, 23, 23, 24, 24, 24, 25, 25,
	26, 26, 26, 26, 28, 28, 28, 28,
	29, 29, 30, 30, 31, 31, 31, 31,
	33, 33, 33, 34, 34, 34, 35, 36,
	36, 36, 37, 37, 38, 38, 39, 39,
	39, 40, 41, 41, 42, 42, 42, 43,
	44, 44, 45, 45, 45, 46, 47, 48,
	48, 48, 49, 49, 50, 51, 51, 52,
	52, 52, 54, 54, 55, 55, 55, 56,
	57, 58, 58, 58, 59, 59, 61, 61,
	62, 62, 62, 63, 64, 65, 65, 66,
	66, 67, 68, 68, 69, 69, 70, 70,
	72, 72, 73, 73, 74, 74, 76, 76,
	77, 77, 78, 78, 80, 80, 81, 81,
	82, 82, 84, 84, 85, 86, 86, 87,
	88, 89, 89, 90, 90, 91, 93, 93,
	94, 94, 95, 95, 97, 98, 98, 99,
	99, 100, 102, 102, 103, 103, 104, 105,
	106, 107, 107, 108, 109, 109, 111, 112,
	112, 113, 113, 114, 116, 116, 117, 118,
	118, 119, 121, 121, 122, 123, 123, 124,
	126, 126, 127, 128, 129, 129, 131, 132,
	132, 133, 134, 135, 136, 137, 138, 138,
}

var acQLookup = [256]int32{
	4, 4, 4, 4, 5, 5, 5, 5,
	6, 6, 6, 6, 7, 7, 7, 7,
	8, 8, 8, 8, 9, 9, 9, 10,
	11, 11, 11, 11, 12, 12, 12, 12,
	13, 14, 14, 14, 15, 15, 15, 15,
	17, 17, 17, 17, 18, 18, 19, 19,
	20, 20, 20, 21, 22, 22, 22, 22,
	24, 24, 24, 24, 25, 26, 26, 26,
	27, 28, 28, 28, 29, 30, 30, 30,
	31, 32, 32, 32, 34, 34, 34, 35,
	36, 36, 36, 37, 38, 38, 39, 39,
	40, 41, 41, 41, 43, 43, 43, 44,
	45, 46, 46, 46, 48, 48, 49, 49,
	50, 51, 51, 52, 53, 53, 54, 54,
	56, 56, 56, 57, 58, 59, 59, 60,
	61, 62, 62, 63, 64, 65, 65, 66,
	67, 68, 68, 69, 70, 71, 71, 72,
	73, 74, 74, 75, 76, 77, 77, 78,
	79, 80, 80, 81, 83, 83, 84, 84,
	86, 87, 87, 88, 89, 90, 91, 91,
	93, 93, 94, 95, 96, 97, 97, 98,
	100, 100, 101, 102, 103, 104, 105, 105,
	107, 108, 108, 109, 111, 112, 112, 113,
	115, 115, 116, 117, 118, 119, 120, 121,
	122, 123, 124, 125, 126, 127, 128, 129,
	130, 131, 132, 133, 135, 135, 136, 137,
	139, 140, 140, 141, 143, 144, 145, 145,
	147, 148, 149, 150, 152, 152, 153, 154,
	156, 157, 158, 159, 160, 161, 162, 163,
	165, 166, 167, 168, 170, 171, 171, 172,
	174, 175, 176, 177, 179, 180, 181, 182,
	184, 185, 186, 187, 189, 190, 191, 192,
}
