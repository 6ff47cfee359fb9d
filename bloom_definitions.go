package bloom

import "errors"

// Filter is a Bloom filter over caller-hashed 128-bit values. SizeInBits is
// always a positive multiple of 64 and HashCount is at least 1; both are
// fixed at construction. Bits is the only mutable state.
//
// A Filter is not internally synchronized. Any number of goroutines may run
// read-only operations (Contains, comparisons, ApproxItems, Save) on a
// filter that no goroutine is mutating; mutation requires external mutual
// exclusion.
type Filter struct {
	SizeInBits uint64
	HashCount  uint32
	Bits       *Bitset
}

// Hash128 carries a caller-supplied 128-bit hashed value as two unsigned
// 64-bit halves. Signed values map through their two's-complement bit
// pattern; the filter never inspects provenance, only bits.
type Hash128 struct {
	Hi uint64
	Lo uint64
}

var (
	// ErrInvalidParameters is returned by construction when expectedItems is
	// not positive or falsePositiveRate is outside (0, 1) exclusive.
	ErrInvalidParameters = errors.New("bloom: expectedItems must be positive and falsePositiveRate in (0, 1)")

	// ErrIncompatibleFilters is returned by binary set operations and
	// comparisons between filters that differ in SizeInBits or HashCount.
	ErrIncompatibleFilters = errors.New("bloom: filters differ in size or hash count")

	// ErrIndexOutOfRange is returned by Bitset accessors for positions past
	// the end of the bit array.
	ErrIndexOutOfRange = errors.New("bloom: bit position out of range")

	// ErrLengthMismatch is returned by Bitset combinators when the operands
	// differ in length.
	ErrLengthMismatch = errors.New("bloom: bitsets differ in length")

	// ErrCorruptData is returned by Load for malformed or truncated bytes.
	ErrCorruptData = errors.New("bloom: corrupt or truncated filter data")
)
