package bloom

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// NewSeeds reads n seeds from r, one little-endian word each.
//
// Passing a deterministic reader (for example a math/rand/v2 ChaCha8 with a
// fixed seed) produces reproducible filters.
func NewSeeds(r io.Reader, n uint64) ([]uint64, error) {
	if n > MaxHashCount {
		return nil, ErrTooLarge
	}
	buf := make([]byte, n*WordBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrSeedSource
		}
		return nil, fmt.Errorf("bloom: reading seeds: %w", err)
	}
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = readU64LE(buf[i*WordBytes:])
	}
	return seeds, nil
}

// RandomSeeds returns n seeds from crypto/rand.
func RandomSeeds(n uint64) ([]uint64, error) {
	return NewSeeds(rand.Reader, n)
}
