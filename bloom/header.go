package bloom

// DecodeHeader decodes the fixed header at the start of data.
//
// Only the signature and the major version are checked. The counts are
// returned as read; the caller decides whether to trust them.
func DecodeHeader(data []byte) (Header, error) {
	if len(data) < HeaderBytes {
		return Header{}, ErrTooShort
	}

	h := Header{
		Signature:    readU64LE(data[0:8]),
		VersionMajor: readI32LE(data[8:12]),
		VersionMinor: readI32LE(data[12:16]),
		HashCount:    readU64LE(data[16:24]),
		BitCount:     readU64LE(data[24:32]),
	}
	if h.Signature != Signature {
		return Header{}, ErrBadSignature
	}
	if h.VersionMajor != VersionMajor {
		return Header{}, ErrBadVersion
	}
	return h, nil
}

// CheckHeader reports whether the counts of a decoded header describe a filter
// that can be loaded: a non zero bit count, and counts within MaxHashCount and
// MaxBitCount so that ByteSize(h.HashCount, h.BitCount) does not wrap.
func CheckHeader(h Header) error {
	if h.BitCount == 0 {
		return ErrNoBits
	}
	if !CheckCounts(h.HashCount, h.BitCount) {
		return ErrSizeOverflow
	}
	return nil
}

// EncodeHeader writes h into the first HeaderBytes of data.
//
// The signature and versions are written as given, so tests can produce
// headers the decoder rejects.
func EncodeHeader(data []byte, h Header) error {
	if len(data) < HeaderBytes {
		return ErrTooShort
	}
	writeU64LE(data[0:8], h.Signature)
	writeI32LE(data[8:12], h.VersionMajor)
	writeI32LE(data[12:16], h.VersionMinor)
	writeU64LE(data[16:24], h.HashCount)
	writeU64LE(data[24:32], h.BitCount)
	return nil
}

// newHeader returns the header New writes for a fresh filter.
func newHeader(hashCount uint64, bitCount uint64) Header {
	return Header{
		Signature:    Signature,
		VersionMajor: VersionMajor,
		VersionMinor: VersionMinor,
		HashCount:    hashCount,
		BitCount:     bitCount,
	}
}
