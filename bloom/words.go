package bloom

// words is a typed view of a region of little-endian uint64 words within a
// filter's buffer. It never owns memory.
type words []byte

func (w words) Len() uint64 { return uint64(len(w)) / WordBytes }

func (w words) At(i uint64) uint64 { return readU64LE(w[i*WordBytes:]) }

func (w words) Set(i uint64, v uint64) { writeU64LE(w[i*WordBytes:], v) }

// bitAddr returns the bit address for one seed.
func bitAddr(seed uint64, hash64 uint64, bitCount uint64) uint64 {
	return (seed ^ hash64) % bitCount
}

// setBit sets bit pos and reports whether it was previously clear.
func (w words) setBit(pos uint64) bool {
	i := pos / BitsPerWord
	mask := uint64(1) << (pos % BitsPerWord)
	v := w.At(i)
	if v&mask != 0 {
		return false
	}
	w.Set(i, v|mask)
	return true
}

func (w words) testBit(pos uint64) bool {
	return w.At(pos/BitsPerWord)&(uint64(1)<<(pos%BitsPerWord)) != 0
}
