package bloom

import (
	"bytes"
	"math/bits"
)

// Filter is a Bloom filter over caller supplied 64 bit fingerprints.
//
// All state lives in one buffer laid out exactly as the serialized format:
// header, then hashCount seed words, then ceil(bitCount/64) bit words. The
// seeds and bits fields are views into that buffer.
//
// A Filter is not safe for concurrent use. Callers serialize Add against any
// other call.
//
// The zero value holds no buffer and is only useful as an UnmarshalBinary
// target. Its Header is the zero Header and its ByteSize is zero.
type Filter struct {
	buf       []byte
	hashCount uint64
	bitCount  uint64
	seeds     words
	bits      words
}

// New creates a zeroed filter with hashCount hash functions over bitCount bits.
//
// seeds must hold exactly hashCount values, one per hash function. Distinct, well
// distributed seeds keep the hash functions independent; see NewSeeds.
//
// hashCount may be zero, in which case Contains accepts every fingerprint.
//
// Errors: ErrBadBitCount and ErrSeedCount report bad arguments and wrap neither
// ErrAllocation nor ErrFormat. ErrTooLarge wraps ErrAllocation and is returned
// when the counts exceed MaxHashCount or MaxBitCount. Within those bounds the
// buffer is obtained with make, and a request larger than the memory available
// to the process is still a fatal runtime error, not an error result.
func New(hashCount uint64, bitCount uint64, seeds []uint64) (*Filter, error) {
	if bitCount == 0 {
		return nil, ErrBadBitCount
	}
	size, err := allocSize(hashCount, bitCount)
	if err != nil {
		return nil, err
	}
	if uint64(len(seeds)) != hashCount {
		return nil, ErrSeedCount
	}

	buf := make([]byte, size)
	if err := EncodeHeader(buf, newHeader(hashCount, bitCount)); err != nil {
		return nil, err
	}
	f := wrap(buf, hashCount, bitCount)
	for i, s := range seeds {
		f.seeds.Set(uint64(i), s)
	}
	return f, nil
}

// FromBytes validates data and returns a filter backed by a private copy of
// it. The checks are made in order: length covers the header, signature, major
// version, a non zero bit count, counts in range, and finally that the length
// is exactly ByteSize of the header counts. data is never modified or retained.
func FromBytes(data []byte) (*Filter, error) {
	h, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}
	if err := CheckHeader(h); err != nil {
		return nil, err
	}
	if ByteSize(h.HashCount, h.BitCount) != uint64(len(data)) {
		return nil, ErrSizeMismatch
	}
	return wrap(bytes.Clone(data), h.HashCount, h.BitCount), nil
}

// wrap builds the typed views over buf. buf must already be validated.
func wrap(buf []byte, hashCount uint64, bitCount uint64) *Filter {
	off := bitsOff(hashCount)
	return &Filter{
		buf:       buf,
		hashCount: hashCount,
		bitCount:  bitCount,
		seeds:     words(buf[HeaderBytes:off:off]),
		bits:      words(buf[off:]),
	}
}

// Add sets the addressed bits for hash64.
//
// It returns true if any of the bits was previously clear. A false result
// means hash64 was very likely added before, but collisions with other
// fingerprints can also produce it.
func (f *Filter) Add(hash64 uint64) bool {
	changed := false
	for i := uint64(0); i < f.hashCount; i++ {
		if f.bits.setBit(bitAddr(f.seeds.At(i), hash64, f.bitCount)) {
			changed = true
		}
	}
	return changed
}

// Contains returns false if hash64 is definitely not in the filter and true if
// it may be.
func (f *Filter) Contains(hash64 uint64) bool {
	for i := uint64(0); i < f.hashCount; i++ {
		if !f.bits.testBit(bitAddr(f.seeds.At(i), hash64, f.bitCount)) {
			return false
		}
	}
	return true
}

// ByteSize returns the length of the filter's serialized form.
func (f *Filter) ByteSize() uint64 {
	if len(f.buf) == 0 {
		return 0
	}
	return ByteSize(f.hashCount, f.bitCount)
}

// Bytes returns the backing buffer. It is the serialized form of the filter
// and aliases it: copy it before the filter is next modified if a stable
// snapshot is needed.
func (f *Filter) Bytes() []byte {
	return f.buf
}

// Clone returns an independent copy of f.
func (f *Filter) Clone() *Filter {
	return wrap(bytes.Clone(f.buf), f.hashCount, f.bitCount)
}

func (f *Filter) HashCount() uint64 { return f.hashCount }
func (f *Filter) BitCount() uint64  { return f.bitCount }

// Header returns the decoded header.
func (f *Filter) Header() Header {
	if len(f.buf) < HeaderBytes {
		return Header{}
	}
	return Header{
		Signature:    readU64LE(f.buf[0:8]),
		VersionMajor: readI32LE(f.buf[8:12]),
		VersionMinor: readI32LE(f.buf[12:16]),
		HashCount:    f.hashCount,
		BitCount:     f.bitCount,
	}
}

// Seeds returns a copy of the seeds.
func (f *Filter) Seeds() []uint64 {
	seeds := make([]uint64, f.seeds.Len())
	for i := range seeds {
		seeds[i] = f.seeds.At(uint64(i))
	}
	return seeds
}

// Words returns a copy of the bit array words.
func (f *Filter) Words() []uint64 {
	w := make([]uint64, f.bits.Len())
	for i := range w {
		w[i] = f.bits.At(uint64(i))
	}
	return w
}

// PopCount returns the number of set bits.
func (f *Filter) PopCount() uint64 {
	var n uint64
	for i := uint64(0); i < f.bits.Len(); i++ {
		n += uint64(bits.OnesCount64(f.bits.At(i)))
	}
	return n
}

// Equal reports whether f and other have identical serialized forms.
func (f *Filter) Equal(other *Filter) bool {
	if other == nil {
		return false
	}
	return bytes.Equal(f.buf, other.buf)
}

// MarshalBinary returns a copy of the serialized form.
func (f *Filter) MarshalBinary() ([]byte, error) {
	return bytes.Clone(f.buf), nil
}

// UnmarshalBinary replaces f with a validated copy of data. f is left
// unchanged on error.
func (f *Filter) UnmarshalBinary(data []byte) error {
	g, err := FromBytes(data)
	if err != nil {
		return err
	}
	*f = *g
	return nil
}
