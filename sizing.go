package bloom

import "math"

// EstimateParameters maps a target capacity and false-positive rate to the
// bit-array size and hash count of a filter. The size is the textbook
// optimum ceil(-n*ln(p)/ln(2)^2) rounded up to the next multiple of 64 so
// the bit array is word aligned, and the hash count is the matching optimum
// round((m/n)*ln(2)), at least 1.
func EstimateParameters(expectedItems int, falsePositiveRate float64) (sizeInBits uint64, hashCount uint32, err error) {
	if expectedItems <= 0 || !(falsePositiveRate > 0 && falsePositiveRate < 1) {
		return 0, 0, ErrInvalidParameters
	}
	n := float64(expectedItems)
	mRaw := math.Ceil(-n * math.Log(falsePositiveRate) / (math.Ln2 * math.Ln2))
	sizeInBits = (uint64(mRaw) + wordBits - 1) / wordBits * wordBits
	k := math.Round(float64(sizeInBits) / n * math.Ln2)
	if k < 1 {
		k = 1
	}
	return sizeInBits, uint32(k), nil
}
