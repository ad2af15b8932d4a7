package codec

import (
	"encoding/base64"
	"fmt"

	"github.com/forestrie/go-bloomfilter/bloom"
)

// EncodeText returns the zlib compressed serialized form of f as standard
// base64 on a single line.
func EncodeText(f *bloom.Filter) (string, error) {
	frame, err := Encode(f, Zlib)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(frame[1:]), nil
}

// DecodeText reverses EncodeText.
func DecodeText(s string) (*bloom.Filter, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadEncoding, err)
	}
	return decode(Zlib, data)
}
