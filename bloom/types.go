package bloom

import (
	"errors"
	"fmt"
)

const (
	// Signature identifies the format. Little-endian it spells "MozBloom".
	Signature uint64 = 0x6D6F6F6C427A6F4D

	VersionMajor int32 = 1
	VersionMinor int32 = 0

	// HeaderBytes is the fixed header size: signature, major, minor,
	// hash count and bit count.
	HeaderBytes = 32

	WordBytes   = 8
	BitsPerWord = 64

	// MaxHashCount and MaxBitCount bound the header fields accepted by New and
	// FromBytes. Within these bounds ByteSize can not overflow a uint64 and a
	// filter is at most 128 GiB of bits.
	MaxHashCount uint64 = 1 << 24
	MaxBitCount  uint64 = 1 << 40
)

// The two error kinds. Allocation and load failures wrap one of these.
//
// Argument errors (ErrBadBitCount, ErrSeedCount, ErrSeedSource) wrap neither.
var (
	ErrAllocation = errors.New("bloom: allocation failed")
	ErrFormat     = errors.New("bloom: invalid format")
)

var (
	ErrBadBitCount = errors.New("bloom: bit count must be greater than zero")
	ErrSeedCount   = errors.New("bloom: seed count does not match hash count")
	ErrSeedSource  = errors.New("bloom: seed source exhausted")

	ErrTooLarge = fmt.Errorf("%w: filter size exceeds supported range", ErrAllocation)

	ErrTooShort     = fmt.Errorf("%w: data shorter than header", ErrFormat)
	ErrBadSignature = fmt.Errorf("%w: header signature invalid", ErrFormat)
	ErrBadVersion   = fmt.Errorf("%w: header major version unsupported", ErrFormat)
	ErrNoBits       = fmt.Errorf("%w: header bit count is zero", ErrFormat)
	ErrSizeOverflow = fmt.Errorf("%w: header counts exceed supported range", ErrFormat)
	ErrSizeMismatch = fmt.Errorf("%w: data length does not match header", ErrFormat)
)

// Header is the decoded fixed header of a filter.
type Header struct {
	Signature    uint64
	VersionMajor int32
	VersionMinor int32
	HashCount    uint64
	BitCount     uint64
}
