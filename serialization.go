package bloom

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Serialized layout, little endian throughout:
//
//	[SizeInBits: 8 bytes][HashCount: 4 bytes][words: SizeInBits/8 bytes]
//
// for a total of SizeInBits/8 + 12 bytes. This is the only durable format.
const headerBytes = 12

// Save writes the filter to w in little endian format.
func (f *Filter) Save(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, f.SizeInBits); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, f.HashCount); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, f.Bits.Words)
}

// Load reads a filter from r in the Save layout. Bytes past the payload
// are left unread. Malformed or truncated input yields ErrCorruptData.
func Load(r io.Reader) (*Filter, error) {
	var header [headerBytes]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrCorruptData, err)
	}
	sizeInBits := binary.LittleEndian.Uint64(header[0:8])
	hashCount := binary.LittleEndian.Uint32(header[8:12])
	if sizeInBits == 0 || sizeInBits%wordBits != 0 {
		return nil, fmt.Errorf("%w: size %d is not a positive multiple of 64", ErrCorruptData, sizeInBits)
	}
	if hashCount == 0 {
		return nil, fmt.Errorf("%w: zero hash count", ErrCorruptData)
	}
	f := &Filter{SizeInBits: sizeInBits, HashCount: hashCount, Bits: NewBitset(sizeInBits)}
	if err := binary.Read(r, binary.LittleEndian, f.Bits.Words); err != nil {
		return nil, fmt.Errorf("%w: reading %d payload bytes: %v", ErrCorruptData, sizeInBits/8, err)
	}
	return f, nil
}

// SaveBytes returns the filter serialized to a fresh byte slice.
func (f *Filter) SaveBytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, headerBytes+len(f.Bits.Words)*8))
	f.Save(buf)
	return buf.Bytes()
}

// LoadBytes parses a filter from b, which must hold exactly one serialized
// filter.
func LoadBytes(b []byte) (*Filter, error) {
	f, err := Load(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	if want := headerBytes + int(f.SizeInBits/8); len(b) != want {
		return nil, fmt.Errorf("%w: %d bytes after payload", ErrCorruptData, len(b)-want)
	}
	return f, nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the Save layout.
func (f *Filter) MarshalBinary() ([]byte, error) {
	return f.SaveBytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (f *Filter) UnmarshalBinary(data []byte) error {
	loaded, err := LoadBytes(data)
	if err != nil {
		return err
	}
	*f = *loaded
	return nil
}
