package context

// PredictionMode enumerates the closed, small set of intra predictors this
// encoder searches (spec §4.5, §9 "Polymorphic intra predictors"). Kept as
// a tagged variant dispatched by a single switch rather than a table of
// function pointers, per the design note's guidance to avoid dynamic
// dispatch in the RDO hot loop.
type PredictionMode int

const (
	DC_PRED PredictionMode = iota
	V_PRED
	H_PRED
	D45_PRED
	D135_PRED
	D113_PRED
	D157_PRED
	D203_PRED
	D67_PRED
	SMOOTH_PRED
	SMOOTH_V_PRED
	SMOOTH_H_PRED
	PAETH_PRED
)

// RAV1EIntraModes is the fixed candidate list search_best_mode iterates,
// in the order the prototype enumerates them.
var RAV1EIntraModes = []PredictionMode{
	DC_PRED, V_PRED, H_PRED, PAETH_PRED,
	SMOOTH_PRED, SMOOTH_V_PRED, SMOOTH_H_PRED,
	D45_PRED, D135_PRED, D113_PRED, D157_PRED, D203_PRED, D67_PRED,
}

// TxType selects the pair of 1-D bases applied to rows and columns of a
// transform block (spec §4.3).
type TxType int

const (
	DCT_DCT TxType = iota
	ADST_DCT
	DCT_ADST
	ADST_ADST
)

// intraModeToTxType mirrors the prototype's
// exported_intra_mode_to_tx_type_context table: directional intra modes
// favor the transform basis aligned with their prediction direction.
var intraModeToTxType = [...]TxType{
	DC_PRED:       DCT_DCT,
	V_PRED:        ADST_DCT,
	H_PRED:        DCT_ADST,
	D45_PRED:      DCT_DCT,
	D135_PRED:     ADST_ADST,
	D113_PRED:     ADST_DCT,
	D157_PRED:     DCT_ADST,
	D203_PRED:     DCT_ADST,
	D67_PRED:      ADST_DCT,
	SMOOTH_PRED:   ADST_ADST,
	SMOOTH_V_PRED: ADST_DCT,
	SMOOTH_H_PRED: DCT_ADST,
	PAETH_PRED:    DCT_DCT,
}

// IntraModeToTxType maps a prediction mode to its associated transform
// type, used for the chroma transform (which is slaved to the luma mode,
// spec §9 Open Questions).
func IntraModeToTxType(mode PredictionMode) TxType {
	return intraModeToTxType[mode]
}
