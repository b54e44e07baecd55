package context

import "github.com/ycho/rav1e/internal/ec"

const (
	kfModeContexts = 5
	numIntraModes  = 13
	numTxTypes     = 4
	coeffBands     = 4
	coeffCtxs      = 4
)

// CDFContext is the full collection of adaptive multi-symbol CDFs the
// encoder consults (spec §3). Every table is a distinct named field
// holding slices, so a plain struct copy would share the tables; a
// checkpoint uses Clone, which deep-copies each slice. CDF layout and
// adaptation live in internal/ec (the range coder owns the "symbol"
// operation, spec §4.6); this type just names and groups the tables.
type CDFContext struct {
	SkipCdf      [3][]uint16
	PartitionCdf [5][4][]uint16                    // by bsize log2, by above/left ctx (0..3)
	KFYModeCdf   [kfModeContexts][kfModeContexts][]uint16
	UVModeCdf    [numIntraModes][]uint16
	TxTypeCdf    [numIntraModes][]uint16
	EobCdf       [2][coeffCtxs][]uint16            // by plane-type, nz ctx: eob position 0..16
	CoeffBaseCdf [2][coeffBands][coeffCtxs][]uint16 // by plane-type, band, ctx: level in {0,1,2,3+}
	CoeffBrCdf   [2][coeffCtxs][]uint16             // by plane-type, ctx: golomb-style extra-level bit
	SignCdf      [2][]uint16                        // by plane-type
}

// NewCDFContext builds a fresh CDF set with AV1's default (equiprobable)
// starting probabilities. Real encoders seed from tables trained offline;
// equiprobable starts are a documented simplification this core makes
// since it encodes a single frame with no prior context to seed from.
func NewCDFContext() *CDFContext {
	c := &CDFContext{}
	for i := range c.SkipCdf {
		c.SkipCdf[i] = ec.NewCDF(2)
	}
	for bs := range c.PartitionCdf {
		for ctx := range c.PartitionCdf[bs] {
			c.PartitionCdf[bs][ctx] = ec.NewCDF(2)
		}
	}
	for a := 0; a < kfModeContexts; a++ {
		for l := 0; l < kfModeContexts; l++ {
			c.KFYModeCdf[a][l] = ec.NewCDF(numIntraModes)
		}
	}
	for i := range c.UVModeCdf {
		c.UVModeCdf[i] = ec.NewCDF(numIntraModes)
	}
	for i := range c.TxTypeCdf {
		c.TxTypeCdf[i] = ec.NewCDF(numTxTypes)
	}
	for pt := 0; pt < 2; pt++ {
		for ctx := 0; ctx < coeffCtxs; ctx++ {
			c.EobCdf[pt][ctx] = ec.NewCDF(17)
		}
		for band := 0; band < coeffBands; band++ {
			for ctx := 0; ctx < coeffCtxs; ctx++ {
				c.CoeffBaseCdf[pt][band][ctx] = ec.NewCDF(4)
			}
		}
		for ctx := 0; ctx < coeffCtxs; ctx++ {
			c.CoeffBrCdf[pt][ctx] = ec.NewCDF(2)
		}
		c.SignCdf[pt] = ec.NewCDF(2)
	}
	return c
}

// Clone deep-copies every CDF table. This is the dominant cost of
// speculative search (spec §4.7) since checkpointing a ContextWriter must
// copy the whole CDFContext.
func (c *CDFContext) Clone() *CDFContext {
	n := &CDFContext{}
	for i := range c.SkipCdf {
		n.SkipCdf[i] = append([]uint16(nil), c.SkipCdf[i]...)
	}
	for bs := range c.PartitionCdf {
		for ctx := range c.PartitionCdf[bs] {
			n.PartitionCdf[bs][ctx] = append([]uint16(nil), c.PartitionCdf[bs][ctx]...)
		}
	}
	for a := 0; a < kfModeContexts; a++ {
		for l := 0; l < kfModeContexts; l++ {
			n.KFYModeCdf[a][l] = append([]uint16(nil), c.KFYModeCdf[a][l]...)
		}
	}
	for i := range c.UVModeCdf {
		n.UVModeCdf[i] = append([]uint16(nil), c.UVModeCdf[i]...)
	}
	for i := range c.TxTypeCdf {
		n.TxTypeCdf[i] = append([]uint16(nil), c.TxTypeCdf[i]...)
	}
	for pt := 0; pt < 2; pt++ {
		for ctx := 0; ctx < coeffCtxs; ctx++ {
			n.EobCdf[pt][ctx] = append([]uint16(nil), c.EobCdf[pt][ctx]...)
		}
		for band := 0; band < coeffBands; band++ {
			for ctx := 0; ctx < coeffCtxs; ctx++ {
				n.CoeffBaseCdf[pt][band][ctx] = append([]uint16(nil), c.CoeffBaseCdf[pt][band][ctx]...)
			}
		}
		for ctx := 0; ctx < coeffCtxs; ctx++ {
			n.CoeffBrCdf[pt][ctx] = append([]uint16(nil), c.CoeffBrCdf[pt][ctx]...)
		}
		n.SignCdf[pt] = append([]uint16(nil), c.SignCdf[pt]...)
	}
	return n
}
