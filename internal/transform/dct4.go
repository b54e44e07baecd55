// Package transform implements the forward and inverse 4x4 hybrid
// transforms (spec §4.3): DCT and ADST butterfly kernels, composed into
// the four 4x4 transform types intra prediction can select
// (DCT_DCT/ADST_DCT/DCT_ADST/ADST_ADST).
//
// Structurally grounded on the teacher's internal/dsp/transforms.go: a
// separable two-pass (columns then rows) integer butterfly, manually
// unrolled per column/row, with a fixed-point multiply-and-shift in
// place of floating point. The butterfly constants themselves are AV1's
// cospi fixed-point cosine table (spec §4.3), not libwebp's
// C1/C2, since the two codecs' basis functions differ.
package transform

// cosBits is the fixed-point precision of the cospi table.
const cosBits = 12

// cospi holds cos(i*pi/128)*4096 for i = 0..63, AV1's shared cosine table
// at the precision the 4-point butterflies use.
var cospi = [64]int32{
	4096, 4095, 4091, 4085, 4076, 4065, 4052, 4036,
	4017, 3996, 3973, 3948, 3920, 3889, 3857, 3822,
	3784, 3745, 3703, 3659, 3612, 3564, 3513, 3461,
	3406, 3349, 3290, 3229, 3166, 3102, 3035, 2967,
	2896, 2824, 2751, 2675, 2598, 2520, 2440, 2359,
	2276, 2191, 2106, 2019, 1931, 1842, 1751, 1660,
	1567, 1474, 1380, 1285, 1189, 1092, 995, 897,
	799, 700, 601, 501, 401, 301, 201, 101,
}

// round2 rounds x right-shifted by n bits to nearest, matching AV1's
// round_shift.
func round2(x int64, n uint) int32 {
	if n == 0 {
		return int32(x)
	}
	return int32((x + (1 << (n - 1))) >> n)
}

// fdct4 computes the forward 4-point DCT-II of in, writing to out.
// Grounded on transformOne's column/row butterfly shape, with AV1's
// cospi[32]/cospi[16]/cospi[48] 4-point basis in place of libwebp's
// C1/C2 pair.
func fdct4(in [4]int32, out *[4]int32) {
	s0 := int64(in[0] + in[3])
	s1 := int64(in[1] + in[2])
	s2 := int64(in[1] - in[2])
	s3 := int64(in[0] - in[3])

	out[0] = round2(s0*int64(cospi[32])+s1*int64(cospi[32]), cosBits)
	out[2] = round2(s0*int64(cospi[32])-s1*int64(cospi[32]), cosBits)
	out[1] = round2(s3*int64(cospi[16])+s2*int64(cospi[48]), cosBits)
	out[3] = round2(s3*int64(cospi[48])-s2*int64(cospi[16]), cosBits)
}

// idct4 computes the inverse 4-point DCT-II of in, writing to out. This
// is fdct4's basis matrix transposed (fdct4's rows are mutually
// orthogonal with equal norm, so its transpose is its inverse up to a
// constant factor the caller's finalInvShift removes), not fdct4's
// butterfly run backward: the DC/Nyquist pair (a, b) must combine with
// the in[1]/in[3] terms (e, f), built with the same cospi[16]/cospi[48]
// pairing fdct4 used to produce them, or the two passes don't cancel for
// any but the DC term.
func idct4(in [4]int32, out *[4]int32) {
	a := int64(in[0])*int64(cospi[32]) + int64(in[2])*int64(cospi[32])
	b := int64(in[0])*int64(cospi[32]) - int64(in[2])*int64(cospi[32])
	e := int64(in[1])*int64(cospi[16]) + int64(in[3])*int64(cospi[48])
	f := int64(in[1])*int64(cospi[48]) - int64(in[3])*int64(cospi[16])

	A := round2(a, cosBits)
	B := round2(b, cosBits)
	E := round2(e, cosBits)
	F := round2(f, cosBits)

	out[0] = A + E
	out[1] = B + F
	out[2] = B - F
	out[3] = A - E
}

// FDCT4x4 performs a separable forward 4x4 DCT: columns then rows, each
// pass an fdct4 butterfly, matching transformOne's two-pass structure.
func FDCT4x4(in [16]int32) [16]int32 {
	var tmp, out [16]int32
	var col, colOut [4]int32
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			col[y] = in[y*4+x]
		}
		fdct4(col, &colOut)
		for y := 0; y < 4; y++ {
			tmp[y*4+x] = colOut[y]
		}
	}
	var row, rowOut [4]int32
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			row[x] = tmp[y*4+x]
		}
		fdct4(row, &rowOut)
		for x := 0; x < 4; x++ {
			out[y*4+x] = rowOut[x]
		}
	}
	return out
}

// finalInvShift is the column-pass output normalization for every
// inverse transform below. fdct4's basis rows are mutually orthogonal
// with equal squared norm 2 (in the cospi[32]/cospi[16]/cospi[48] scale used
// here), so idct4 recovers 2x the original coefficient vector per 1-D
// pass, for every frequency, not just DC. A 4x4 transform runs that
// pass twice (columns then rows, or rows then columns), compounding to
// 4x, so a single round_shift by 2 bits here recovers the original
// block to within ordinary fixed-point rounding, uniformly across all
// sixteen coefficients.
const finalInvShift = 2

// IDCT4x4 performs a separable inverse 4x4 DCT.
func IDCT4x4(in [16]int32) [16]int32 {
	var tmp, out [16]int32
	var row, rowOut [4]int32
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			row[x] = in[y*4+x]
		}
		idct4(row, &rowOut)
		for x := 0; x < 4; x++ {
			tmp[y*4+x] = rowOut[x]
		}
	}
	var col, colOut [4]int32
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			col[y] = tmp[y*4+x]
		}
		idct4(col, &colOut)
		for y := 0; y < 4; y++ {
			out[y*4+x] = round2(int64(colOut[y]), finalInvShift)
		}
	}
	return out
}
