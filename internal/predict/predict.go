package predict

import "github.com/ycho/rav1e/internal/context"

// Predict dispatches to the predictor named by mode, the single entry
// point rdo.writeTxB uses (spec §4.5).
func Predict(mode context.PredictionMode, e Edge) [16]uint16 {
	switch mode {
	case context.DC_PRED:
		return DC(e)
	case context.V_PRED:
		return V(e)
	case context.H_PRED:
		return H(e)
	case context.PAETH_PRED:
		return Paeth(e)
	case context.SMOOTH_PRED:
		return Smooth(e)
	case context.SMOOTH_V_PRED:
		return SmoothV(e)
	case context.SMOOTH_H_PRED:
		return SmoothH(e)
	case context.D45_PRED:
		return Directional(e, Angle45)
	case context.D67_PRED:
		return Directional(e, Angle67)
	case context.D113_PRED:
		return Directional(e, Angle113)
	case context.D135_PRED:
		return Directional(e, Angle135)
	case context.D157_PRED:
		return Directional(e, Angle157)
	case context.D203_PRED:
		return Directional(e, Angle203)
	default:
		return DC(e)
	}
}
