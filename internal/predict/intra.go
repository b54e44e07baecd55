// Package predict implements AV1's intra predictors for 4x4 blocks
// (spec §4.5): the non-directional modes (DC, V, H, PAETH, the three
// SMOOTH variants) here, the six directional modes in directional.go.
//
// Grounded structurally on the teacher's internal/dsp/predict_lossy.go:
// each predictor is a small function over explicit above/left reference
// arrays (rather than VP8's implicit buf+off neighbor addressing, since
// this codec's callers hold a tiling.PlaneRegion, not a raw buffer), and
// the averaging/rounding idioms (avg2/avg3-style "+half, shift") carry
// over directly.
package predict

// Edge bundles a 4x4 block's above row, left column, and corner sample,
// the reference pixels every predictor reads (spec §4.5). AboveRight and
// BelowLeft extend the above/left arrays by 4 more samples each for the
// directional predictors' wider reach. The encoder fills every field
// straight from the reconstruction plane, so past a frame edge the
// samples are that plane's guard-band defaults, not a replicated last
// sample.
type Edge struct {
	Above      [4]uint16
	AboveRight [4]uint16
	Left       [4]uint16
	BelowLeft  [4]uint16
	TopLeft    uint16
}

func avg2(a, b uint16) uint16 {
	return uint16((int(a) + int(b) + 1) >> 1)
}

func avg3(a, b, c uint16) uint16 {
	return uint16((int(a) + 2*int(b) + int(c) + 2) >> 2)
}

// DC predicts every sample as the rounded average of the above row and
// left column.
func DC(e Edge) [16]uint16 {
	sum := 0
	for i := 0; i < 4; i++ {
		sum += int(e.Above[i]) + int(e.Left[i])
	}
	v := uint16((sum + 4) >> 3)
	return fill(v)
}

// V replicates the above row down every row of the block.
func V(e Edge) [16]uint16 {
	var out [16]uint16
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			out[y*4+x] = e.Above[x]
		}
	}
	return out
}

// H replicates the left column across every column of the block.
func H(e Edge) [16]uint16 {
	var out [16]uint16
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			out[y*4+x] = e.Left[y]
		}
	}
	return out
}

// Paeth picks, per sample, whichever of (above, left, topleft) is
// closest to the linear predictor above+left-topleft (spec §4.5).
func Paeth(e Edge) [16]uint16 {
	var out [16]uint16
	for y := 0; y < 4; y++ {
		left := int(e.Left[y])
		for x := 0; x < 4; x++ {
			above := int(e.Above[x])
			topLeft := int(e.TopLeft)
			base := above + left - topLeft
			pAbove := absInt(base - above)
			pLeft := absInt(base - left)
			pTopLeft := absInt(base - topLeft)
			var v int
			switch {
			case pAbove <= pLeft && pAbove <= pTopLeft:
				v = above
			case pLeft <= pTopLeft:
				v = left
			default:
				v = topLeft
			}
			out[y*4+x] = uint16(v)
		}
	}
	return out
}

// smoothWeights4 are AV1's 4-tap SMOOTH interpolation weights (spec
// §4.5). Each weight w is paired with 256-w, so a one-axis blend needs
// only a final >>8 and the two-axis blend a final >>9.
var smoothWeights4 = [4]int{255, 149, 85, 64}

// Smooth blends toward the bottom-left and top-right corner samples
// using both axes' smooth weights.
func Smooth(e Edge) [16]uint16 {
	var out [16]uint16
	belowLeft := int(e.Left[3])
	aboveRight := int(e.Above[3])
	for y := 0; y < 4; y++ {
		wy := smoothWeights4[y]
		for x := 0; x < 4; x++ {
			wx := smoothWeights4[x]
			v := wy*int(e.Above[x]) + (256-wy)*belowLeft
			v += wx*int(e.Left[y]) + (256-wx)*aboveRight
			out[y*4+x] = uint16((v + 256) >> 9)
		}
	}
	return out
}

// SmoothV blends only along the vertical axis, toward the bottom-left
// corner sample.
func SmoothV(e Edge) [16]uint16 {
	var out [16]uint16
	belowLeft := int(e.Left[3])
	for y := 0; y < 4; y++ {
		wy := smoothWeights4[y]
		for x := 0; x < 4; x++ {
			v := wy*int(e.Above[x]) + (256-wy)*belowLeft
			out[y*4+x] = uint16((v + 128) >> 8)
		}
	}
	return out
}

// SmoothH blends only along the horizontal axis, toward the top-right
// corner sample.
func SmoothH(e Edge) [16]uint16 {
	var out [16]uint16
	aboveRight := int(e.Above[3])
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			wx := smoothWeights4[x]
			v := wx*int(e.Left[y]) + (256-wx)*aboveRight
			out[y*4+x] = uint16((v + 128) >> 8)
		}
	}
	return out
}

func fill(v uint16) [16]uint16 {
	var out [16]uint16
	for i := range out {
		out[i] = v
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
