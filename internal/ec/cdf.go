package ec

// CDFPrecision is the number of bits of cumulative-probability precision
// AV1 CDFs carry (spec §3: "ordered vector of ascending 15-bit cumulative
// probabilities").
const CDFPrecision = precision

// CDFSize is the full probability scale, 1<<CDFPrecision.
const CDFSize = fullRange

// NewCDF builds a CDF for nsyms equiprobable symbols. The layout is
// nsyms-1 ascending cumulative probabilities followed by a trailing
// update-count slot, matching the prototype's description of "an
// ordered vector ... terminated by a sentinel and an update counter"
// (spec §3).
func NewCDF(nsyms int) []uint16 {
	cdf := make([]uint16, nsyms)
	for i := 0; i < nsyms-1; i++ {
		cdf[i] = uint16((i + 1) * CDFSize / nsyms)
	}
	return cdf
}

// UpdateCdf applies the AV1 adaptation recurrence to cdf after observing
// symbol val (spec §4.6): cdf[i] -= (cdf[i] - desired[i]) >> rate, where
// desired[i] is 0 for i < val and CDFSize for i >= val, and
// rate = 3 + (count>>4) + (nsyms>15).
func UpdateCdf(cdf []uint16, val int) {
	nsyms := len(cdf) - 1
	count := cdf[nsyms]
	rate := 3 + int(count>>4)
	if nsyms > 15 {
		rate++
	}
	for i := 0; i < nsyms; i++ {
		if i < val {
			cdf[i] -= cdf[i] >> uint(rate)
		} else {
			cdf[i] += (uint16(CDFSize) - cdf[i]) >> uint(rate)
		}
	}
	if count < 32 {
		cdf[nsyms] = count + 1
	}
}
