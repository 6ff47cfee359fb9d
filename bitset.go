package bloom

import "math/bits"

const wordBits = 64

// Bitset is a fixed-capacity array of single-bit flags backed by 64-bit
// words. Bit i lives at Words[i/64], bit i%64 counting from the least
// significant end.
type Bitset struct {
	Words []uint64
}

// NewBitset allocates a zeroed bitset of sizeInBits positions. sizeInBits
// must be a multiple of 64.
func NewBitset(sizeInBits uint64) *Bitset {
	return &Bitset{Words: make([]uint64, sizeInBits/wordBits)}
}

// Len returns the number of addressable bit positions.
func (b *Bitset) Len() uint64 {
	return uint64(len(b.Words)) * wordBits
}

// Test reports whether the bit at pos is set.
func (b *Bitset) Test(pos uint64) (bool, error) {
	if pos >= b.Len() {
		return false, ErrIndexOutOfRange
	}
	return b.Words[pos>>6]&(1<<(pos&63)) != 0, nil
}

// Set sets the bit at pos. Setting an already-set bit is a no-op.
func (b *Bitset) Set(pos uint64) error {
	if pos >= b.Len() {
		return ErrIndexOutOfRange
	}
	b.Words[pos>>6] |= 1 << (pos & 63)
	return nil
}

// ClearAll resets every bit to zero in place.
func (b *Bitset) ClearAll() {
	for i := range b.Words {
		b.Words[i] = 0
	}
}

// OnesCount returns the number of set bits.
func (b *Bitset) OnesCount() uint64 {
	var n int
	for _, w := range b.Words {
		n += bits.OnesCount64(w)
	}
	return uint64(n)
}

// OrWith ORs other into b in place. The operands must have equal length.
func (b *Bitset) OrWith(other *Bitset) error {
	if len(b.Words) != len(other.Words) {
		return ErrLengthMismatch
	}
	for i, w := range other.Words {
		b.Words[i] |= w
	}
	return nil
}

// AndWith ANDs other into b in place. The operands must have equal length.
func (b *Bitset) AndWith(other *Bitset) error {
	if len(b.Words) != len(other.Words) {
		return ErrLengthMismatch
	}
	for i, w := range other.Words {
		b.Words[i] &= w
	}
	return nil
}

// SubsetOf reports whether every set bit of b is also set in other.
func (b *Bitset) SubsetOf(other *Bitset) (bool, error) {
	if len(b.Words) != len(other.Words) {
		return false, ErrLengthMismatch
	}
	for i, w := range b.Words {
		if w&other.Words[i] != w {
			return false, nil
		}
	}
	return true, nil
}

// Equal reports word-wise equality. Bitsets of different length are never
// equal.
func (b *Bitset) Equal(other *Bitset) bool {
	if len(b.Words) != len(other.Words) {
		return false
	}
	for i, w := range other.Words {
		if b.Words[i] != w {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of b.
func (b *Bitset) Clone() *Bitset {
	words := make([]uint64, len(b.Words))
	copy(words, b.Words)
	return &Bitset{Words: words}
}
