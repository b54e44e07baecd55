package transform

import "testing"

func flatBlock(v int32) [16]int32 {
	var b [16]int32
	for i := range b {
		b[i] = v
	}
	return b
}

func TestZeroBlockIsIdentity(t *testing.T) {
	var zero [16]int32
	for _, tt := range []Type{DctDct, AdstDct, DctAdst, AdstAdst} {
		if got := Forward(tt, zero); got != zero {
			t.Errorf("Forward(%v, zero) = %v, want zero", tt, got)
		}
		if got := Inverse(tt, zero); got != zero {
			t.Errorf("Inverse(%v, zero) = %v, want zero", tt, got)
		}
	}
}

// A flat (constant-valued) block is the dominant case in smooth video
// content and carries only a DC coefficient; round-tripping it through
// FDCT4x4/IDCT4x4 should reproduce the original value exactly.
func TestDCT4x4FlatBlockRoundTrips(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 5, 100, -128, 127} {
		block := flatBlock(v)
		coeffs := FDCT4x4(block)
		for i := 1; i < 16; i++ {
			if coeffs[i] != 0 {
				t.Fatalf("FDCT4x4(flat %d): AC coefficient %d = %d, want 0", v, i, coeffs[i])
			}
		}
		recon := IDCT4x4(coeffs)
		for i, got := range recon {
			if got != v {
				t.Errorf("IDCT4x4(FDCT4x4(flat %d))[%d] = %d, want %d", v, i, got, v)
			}
		}
	}
}

// fadst4 is fdct4 on the reversed input, so a flat block would only
// exercise the same constant DC row the DCT test covers. This checks a
// non-flat block for a property of a linear transform instead: negating
// the input negates every output coefficient.
func TestFADST4x4IsOddSymmetric(t *testing.T) {
	block := [16]int32{-26, 14, -7, 33, 9, -41, 2, 18, -12, 27, -3, 8, -19, 5, 21, -30}
	var negated [16]int32
	for i, v := range block {
		negated[i] = -v
	}
	got := FADST4x4(negated)
	want := FADST4x4(block)
	for i := range want {
		want[i] = -want[i]
	}
	if got != want {
		t.Errorf("FADST4x4(-x) = %v, want %v (= -FADST4x4(x))", got, want)
	}
}

// Regression test for a round-trip bug where idct4 paired in3/in1 with
// the wrong cospi weight: a flat block alone couldn't distinguish a
// correct inverse from one that only preserves the DC term, so this
// checks that a block whose samples vary along each row (every row holds
// the same four values) recovers (spec §8 Testable Property #2: inv(fwd(r)) recovers r to within
// absolute error <= 1).
func TestDCT4x4NonFlatBlockRoundTrips(t *testing.T) {
	row := [4]int32{10, -5, 3, 7}
	var block [16]int32
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			block[y*4+x] = row[x]
		}
	}
	coeffs := FDCT4x4(block)
	recon := IDCT4x4(coeffs)
	for i, got := range recon {
		want := block[i]
		if diff := got - want; diff < -1 || diff > 1 {
			t.Errorf("IDCT4x4(FDCT4x4(block))[%d] = %d, want %d (+/-1)", i, got, want)
		}
	}
}

// A non-flat block, varying along both rows and columns, round-tripped
// through every hybrid
// combination: each combination pairs a forward and inverse kernel per
// axis independently, so this exercises ADST's self-inverse property on
// both axes, not just DCT's.
func TestAllTypesRoundTripNonFlatBlock(t *testing.T) {
	row := [4]int32{10, -5, 3, 7}
	var block [16]int32
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			block[y*4+x] = row[x]*int32(y+1) - int32(x)
		}
	}
	for _, tt := range []Type{DctDct, AdstDct, DctAdst, AdstAdst} {
		coeffs := Forward(tt, block)
		recon := Inverse(tt, coeffs)
		for i, got := range recon {
			want := block[i]
			if diff := got - want; diff < -1 || diff > 1 {
				t.Errorf("type %v: Inverse(Forward(block))[%d] = %d, want %d (+/-1)", tt, i, got, want)
			}
		}
	}
}

func TestForwardInverseDispatchCoversAllTypes(t *testing.T) {
	residual := [16]int32{1, -2, 3, -4, 5, -6, 7, -8, 9, -10, 11, -12, 13, -14, 15, -16}
	for _, tt := range []Type{DctDct, AdstDct, DctAdst, AdstAdst} {
		coeffs := Forward(tt, residual)
		if coeffs == residual {
			t.Errorf("Forward(%v, residual) unexpectedly left the block unchanged", tt)
		}
		// Must not panic on any of the four dispatch branches, and the
		// inverse path must run over the full coefficient range.
		_ = Inverse(tt, coeffs)
	}
}
