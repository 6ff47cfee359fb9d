package bloom

import "github.com/cespare/xxhash"

// stepMultiplier drives the index recurrence. It is the first murmur64
// finalizer constant; any fixed odd 64-bit multiplier works.
const stepMultiplier = 0xff51afd7ed558ccd

// loDomain separates the low lane of HashBytes from the plain xxhash sum.
var loDomain = []byte{0xb1}

// HashBytes derives a Hash128 from raw bytes with xxhash: the high half is
// the plain sum, the low half a domain-separated sum of the same bytes.
// Callers with their own 128-bit hash can construct Hash128 directly.
func HashBytes(b []byte) Hash128 {
	d := xxhash.New()
	d.Write(loDomain)
	d.Write(b)
	return Hash128{Hi: xxhash.Sum64(b), Lo: d.Sum64()}
}

// HashString is HashBytes for a string.
func HashString(s string) Hash128 {
	d := xxhash.New()
	d.Write(loDomain)
	d.Write([]byte(s))
	return Hash128{Hi: xxhash.Sum64String(s), Lo: d.Sum64()}
}

// indexSeed prepares the recurrence deriving bit positions from h. The high
// half seeds the state and the low half is the additive step, forced odd
// when m is a power of two so the recurrence covers every residue.
func indexSeed(h Hash128, m uint64) (state, step uint64) {
	step = h.Lo
	if m&(m-1) == 0 {
		step |= 1
	}
	return h.Hi, step
}

// nextIndex emits the next position in [0, m) and advances the state.
// Identical (h, m, k) inputs always produce the identical sequence, across
// calls and across processes; repeated positions are possible and harmless.
func nextIndex(state *uint64, step, m uint64) uint64 {
	pos := *state % m
	*state = *state*stepMultiplier + step
	return pos
}
