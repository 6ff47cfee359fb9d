// Package bloom implements a Bloom filter over caller-hashed 128-bit
// values: a probabilistic set-membership structure with zero false
// negatives and a configurable false-positive rate, O(1) space and
// O(HashCount) time per operation.
//
// The package never hashes arbitrary objects itself; callers supply
// already-hashed values as Hash128, or use the HashBytes/HashString
// conveniences at the boundary.
package bloom

import (
	"fmt"
	"math"
)

// New creates an empty filter sized for expectedItems entries at the given
// target false-positive rate.
func New(expectedItems int, falsePositiveRate float64) (*Filter, error) {
	m, k, err := EstimateParameters(expectedItems, falsePositiveRate)
	if err != nil {
		return nil, err
	}
	return &Filter{SizeInBits: m, HashCount: k, Bits: NewBitset(m)}, nil
}

// Add inserts a hashed value. Adding the same value again leaves the filter
// unchanged.
func (f *Filter) Add(h Hash128) {
	state, step := indexSeed(h, f.SizeInBits)
	for i := uint32(0); i < f.HashCount; i++ {
		f.Bits.Set(nextIndex(&state, step, f.SizeInBits))
	}
}

// Contains reports whether h was possibly added. A false result is
// definitive; a true result is wrong with probability near the configured
// false-positive rate.
func (f *Filter) Contains(h Hash128) bool {
	state, step := indexSeed(h, f.SizeInBits)
	for i := uint32(0); i < f.HashCount; i++ {
		set, _ := f.Bits.Test(nextIndex(&state, step, f.SizeInBits))
		if !set {
			return false
		}
	}
	return true
}

// ApproxItems estimates the number of distinct values added from the
// occupancy of the bit array. It is an estimate, not a count, and returns
// +Inf for a completely full filter, where the true count is only bounded
// from below.
func (f *Filter) ApproxItems() float64 {
	x := f.Bits.OnesCount()
	if x == 0 {
		return 0
	}
	if x == f.SizeInBits {
		return math.Inf(1)
	}
	m := float64(f.SizeInBits)
	return -(m / float64(f.HashCount)) * math.Log(1-float64(x)/m)
}

// IsEmpty reports whether no value has been added since creation or the
// last Clear.
func (f *Filter) IsEmpty() bool {
	return f.Bits.OnesCount() == 0
}

// Clear resets the filter to empty in place.
func (f *Filter) Clear() {
	f.Bits.ClearAll()
}

// Copy returns an independent filter with identical parameters and a
// snapshot of the bits; later mutation of either side is invisible to the
// other.
func (f *Filter) Copy() *Filter {
	return &Filter{SizeInBits: f.SizeInBits, HashCount: f.HashCount, Bits: f.Bits.Clone()}
}

// Compatible reports whether two filters share identical parameters, the
// precondition for every binary set operation and comparison.
func (f *Filter) Compatible(other *Filter) bool {
	return f.SizeInBits == other.SizeInBits && f.HashCount == other.HashCount
}

func (f *Filter) checkCompatible(others []*Filter) error {
	for _, o := range others {
		if !f.Compatible(o) {
			return ErrIncompatibleFilters
		}
	}
	return nil
}

// Update ORs the bits of every operand into the receiver, the in-place
// union. Operands may include the receiver itself.
func (f *Filter) Update(others ...*Filter) error {
	if err := f.checkCompatible(others); err != nil {
		return err
	}
	for _, o := range others {
		if err := f.Bits.OrWith(o.Bits); err != nil {
			return err
		}
	}
	return nil
}

// UpdateHashes adds every hashed value in the sequence; it is the
// hash-sequence operand form of Update.
func (f *Filter) UpdateHashes(hashes ...Hash128) {
	for _, h := range hashes {
		f.Add(h)
	}
}

// Union returns a new filter containing every value in the receiver or any
// operand.
func (f *Filter) Union(others ...*Filter) (*Filter, error) {
	out := f.Copy()
	if err := out.Update(others...); err != nil {
		return nil, err
	}
	return out, nil
}

// IntersectionUpdate ANDs the bits of every operand into the receiver, the
// in-place intersection. The result approximates the intersection of the
// represented sets but can carry more false positives than either operand:
// filters with disjoint contents may still share collision bits. That is a
// property of intersecting bit arrays, not a defect of either filter.
func (f *Filter) IntersectionUpdate(others ...*Filter) error {
	if err := f.checkCompatible(others); err != nil {
		return err
	}
	for _, o := range others {
		if err := f.Bits.AndWith(o.Bits); err != nil {
			return err
		}
	}
	return nil
}

// IntersectionUpdateHashes intersects the receiver with a filter of
// identical parameters containing exactly the given hashed values; it is
// the hash-sequence operand form of IntersectionUpdate.
func (f *Filter) IntersectionUpdateHashes(hashes ...Hash128) {
	other := &Filter{SizeInBits: f.SizeInBits, HashCount: f.HashCount, Bits: NewBitset(f.SizeInBits)}
	other.UpdateHashes(hashes...)
	f.Bits.AndWith(other.Bits)
}

// Intersection returns a new filter approximating the values common to the
// receiver and every operand. See IntersectionUpdate for the accuracy
// caveat.
func (f *Filter) Intersection(others ...*Filter) (*Filter, error) {
	out := f.Copy()
	if err := out.IntersectionUpdate(others...); err != nil {
		return nil, err
	}
	return out, nil
}

// Equal reports bit-exact equality. Filters with different parameters are
// never equal.
func (f *Filter) Equal(other *Filter) bool {
	return f.Compatible(other) && f.Bits.Equal(other.Bits)
}

// IsSubset reports whether every set bit of the receiver is also set in
// other. The bit comparison is exact; what it implies about the underlying
// logical sets carries the filters' false-positive uncertainty.
func (f *Filter) IsSubset(other *Filter) (bool, error) {
	if !f.Compatible(other) {
		return false, ErrIncompatibleFilters
	}
	return f.Bits.SubsetOf(other.Bits)
}

// IsSuperset reports whether every set bit of other is also set in the
// receiver.
func (f *Filter) IsSuperset(other *Filter) (bool, error) {
	return other.IsSubset(f)
}

// IsStrictSubset is IsSubset excluding bit-exact equality.
func (f *Filter) IsStrictSubset(other *Filter) (bool, error) {
	ok, err := f.IsSubset(other)
	if err != nil {
		return false, err
	}
	return ok && !f.Bits.Equal(other.Bits), nil
}

// IsStrictSuperset is IsSuperset excluding bit-exact equality.
func (f *Filter) IsStrictSuperset(other *Filter) (bool, error) {
	return other.IsStrictSubset(f)
}

func (f *Filter) String() string {
	return fmt.Sprintf("Bloom{SizeInBits: %d, ApproxItems: %.1f}", f.SizeInBits, f.ApproxItems())
}
