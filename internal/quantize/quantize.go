// Package quantize implements AV1's uniform deadzone quantizer (spec
// §4.4): a qindex-driven step size looked up per coefficient position
// (DC vs AC), sign/magnitude rounding with a deadzone bias, and its
// exact dequantizing inverse.
//
// Grounded structurally on the teacher's internal/lossy/encode_quant.go
// quantizeCoeffsGo/dequantCoeffsGo: sign extracted up front, magnitude
// biased and shifted down by a fixed-point divide, dequantize a bare
// multiply. The fixed QFIX=17 shift and [0,2047] level clamp are
// libwebp-specific and are replaced here by AV1's qlookup-table step
// sizes and round-to-nearest-with-deadzone rounding (spec §4.4).
package quantize

// roundBiasNum/roundBiasDen is the deadzone offset, as a fraction of
// the step, added before truncating the quantized magnitude: half a
// step, so a magnitude exactly halfway between two levels rounds up
// (spec §4.4: "sign(coeff) * floor((|coeff| + round_offset) /
// quant_step)").
const roundBiasNum = 1
const roundBiasDen = 2

// DCStep returns the DC quantization step for qindex.
func DCStep(qindex int) int32 {
	return dcQLookup[clampQIndex(qindex)]
}

// ACStep returns the AC quantization step for qindex.
func ACStep(qindex int) int32 {
	return acQLookup[clampQIndex(qindex)]
}

func clampQIndex(q int) int {
	if q < 0 {
		return 0
	}
	if q > 255 {
		return 255
	}
	return q
}

// Quantize quantizes a raster-order 4x4 coefficient block at the given
// qindex: position 0 (DC) uses DCStep, positions 1-15 (AC) use ACStep.
func Quantize(coeffs [16]int32, qindex int) [16]int32 {
	var out [16]int32
	dc := DCStep(qindex)
	ac := ACStep(qindex)
	for i, c := range coeffs {
		step := ac
		if i == 0 {
			step = dc
		}
		out[i] = quantizeOne(c, step)
	}
	return out
}

func quantizeOne(c, step int32) int32 {
	sign := int32(1)
	v := c
	if v < 0 {
		sign = -1
		v = -v
	}
	level := (v*roundBiasDen + step*roundBiasNum) / (step * roundBiasDen)
	return sign * level
}

// Dequantize is the exact inverse multiplication: position 0 uses
// DCStep, positions 1-15 use ACStep.
func Dequantize(levels [16]int32, qindex int) [16]int32 {
	var out [16]int32
	dc := DCStep(qindex)
	ac := ACStep(qindex)
	for i, l := range levels {
		step := ac
		if i == 0 {
			step = dc
		}
		out[i] = l * step
	}
	return out
}

// Lambda computes the RDO Lagrange multiplier for qindex (spec §4.7.1:
// "lambda = dc_q(qindex)^2 * log2(2) / 6"). log2(2) is exactly 1, so
// this reduces to dc_q^2/6, kept as floating point to match the spec's
// literal formula and preserve fractional precision for the D + lambda*R
// comparison.
func Lambda(qindex int) float64 {
	dc := float64(DCStep(qindex))
	return dc * dc / 6.0
}
