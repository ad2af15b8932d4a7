// Package codec provides compact encodings of a bloom filter's serialized
// form. Every encoding wraps the raw bytes returned by bloom.Filter.Bytes, and
// every decoding ends in bloom.FromBytes, so the format checks there apply.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/forestrie/go-bloomfilter/bloom"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the compressor used by Encode. Its value is stored as
// the first byte of the encoded frame.
type Compression uint8

const (
	None Compression = iota
	Zlib
	Zstd
	LZ4
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Zlib:
		return "zlib"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

var (
	ErrBadEncoding    = errors.New("codec: malformed encoding")
	ErrBadCompression = fmt.Errorf("%w: unknown compression", ErrBadEncoding)
	ErrEmptyFrame     = fmt.Errorf("%w: empty frame", ErrBadEncoding)
)

// Encode returns a frame holding f's serialized form compressed with c.
func Encode(f *bloom.Filter, c Compression) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(byte(c))
	if err := compress(&buf, c, f.Bytes()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reverses Encode. The frame is not retained.
//
// The decompressed size is bounded by the header: no more than ByteSize of the
// header counts (plus one byte to detect trailing data) is ever decompressed.
func Decode(frame []byte) (*bloom.Filter, error) {
	if len(frame) == 0 {
		return nil, ErrEmptyFrame
	}
	return decode(Compression(frame[0]), frame[1:])
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func newCompressor(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopCloser{w}, nil
	case Zlib:
		return zlib.NewWriter(w), nil
	case Zstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, err
		}
		return enc, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, ErrBadCompression
	}
}

func compress(w io.Writer, c Compression, raw []byte) error {
	zw, err := newCompressor(w, c)
	if err != nil {
		return err
	}
	if _, err := zw.Write(raw); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

func decode(c Compression, data []byte) (*bloom.Filter, error) {
	var r io.Reader
	switch c {
	case None:
		return bloom.FromBytes(data)
	case Zlib:
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadEncoding, err)
		}
		defer zr.Close()
		r = zr
	case Zstd:
		dec, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadEncoding, err)
		}
		defer dec.Close()
		r = dec
	case LZ4:
		r = lz4.NewReader(bytes.NewReader(data))
	default:
		return nil, ErrBadCompression
	}
	return readFilter(c, r)
}

// readFilter reads one serialized filter from r. The header is read and
// checked first, then exactly the remainder it describes. One extra byte is
// requested so trailing data is reported as a size mismatch.
func readFilter(c Compression, r io.Reader) (*bloom.Filter, error) {
	raw, err := io.ReadAll(io.LimitReader(r, bloom.HeaderBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadEncoding, c, err)
	}
	h, err := bloom.DecodeHeader(raw)
	if err != nil {
		return nil, err
	}
	if err := bloom.CheckHeader(h); err != nil {
		return nil, err
	}

	rest := bloom.ByteSize(h.HashCount, h.BitCount) - bloom.HeaderBytes
	body, err := io.ReadAll(io.LimitReader(r, int64(rest)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadEncoding, c, err)
	}
	if uint64(len(body)) != rest {
		return nil, bloom.ErrSizeMismatch
	}
	return bloom.FromBytes(append(raw, body...))
}
