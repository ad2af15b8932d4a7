package bloom

import "math"

// WordCount returns ceil(bitCount/64), the number of words in the bits region.
func WordCount(bitCount uint64) uint64 {
	return bitCount/BitsPerWord + min(bitCount%BitsPerWord, 1)
}

// ByteSize returns the exact byte length of a filter:
//
//	HeaderBytes + (hashCount + ceil(bitCount/64)) * 8
//
// The result may wrap for counts outside MaxHashCount and MaxBitCount. CheckCounts
// can be used to check these conditions first.
func ByteSize(hashCount uint64, bitCount uint64) uint64 {
	return HeaderBytes + (hashCount+WordCount(bitCount))*WordBytes
}

// CheckCounts reports whether hashCount and bitCount are small enough for
// ByteSize to be computed without overflow.
func CheckCounts(hashCount uint64, bitCount uint64) bool {
	return hashCount <= MaxHashCount && bitCount <= MaxBitCount
}

// bitsOff is the byte offset of the bits region. The seeds region starts at
// HeaderBytes.
func bitsOff(hashCount uint64) uint64 {
	return HeaderBytes + hashCount*WordBytes
}

// allocSize returns ByteSize as an int, or ErrTooLarge when the filter can not
// be addressed on this platform.
func allocSize(hashCount uint64, bitCount uint64) (int, error) {
	if !CheckCounts(hashCount, bitCount) {
		return 0, ErrTooLarge
	}
	size := ByteSize(hashCount, bitCount)
	if size > math.MaxInt {
		return 0, ErrTooLarge
	}
	return int(size), nil
}
