package bloom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	region := make([]byte, HeaderBytes)
	want := newHeader(3, 1000)
	require.NoError(t, EncodeHeader(region, want))

	// "MozBloom" in the first 8 bytes.
	assert.Equal(t, "MozBloom", string(region[0:8]))

	got, err := DecodeHeader(region)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, VersionMinor, got.VersionMinor)
}

func TestDecodeHeaderRejects(t *testing.T) {
	tests := []struct {
		name   string
		region func() []byte
		err    error
	}{
		{
			name:   "short",
			region: func() []byte { return make([]byte, HeaderBytes-1) },
			err:    ErrTooShort,
		},
		{
			name:   "zero filled",
			region: func() []byte { return make([]byte, HeaderBytes) },
			err:    ErrBadSignature,
		},
		{
			name: "wrong major",
			region: func() []byte {
				b := make([]byte, HeaderBytes)
				h := newHeader(1, 1)
				h.VersionMajor = VersionMajor + 1
				_ = EncodeHeader(b, h)
				return b
			},
			err: ErrBadVersion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeHeader(tt.region())
			require.ErrorIs(t, err, tt.err)
			require.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestDecodeHeaderIgnoresMinor(t *testing.T) {
	b := make([]byte, HeaderBytes)
	h := newHeader(1, 1)
	h.VersionMinor = 7
	require.NoError(t, EncodeHeader(b, h))

	got, err := DecodeHeader(b)
	require.NoError(t, err)
	require.Equal(t, int32(7), got.VersionMinor)
}

func TestEncodeHeaderShortRegion(t *testing.T) {
	require.ErrorIs(t, EncodeHeader(make([]byte, 8), newHeader(1, 1)), ErrTooShort)
}

func TestCheckHeader(t *testing.T) {
	require.NoError(t, CheckHeader(newHeader(0, 1)))
	require.NoError(t, CheckHeader(newHeader(MaxHashCount, MaxBitCount)))

	require.ErrorIs(t, CheckHeader(newHeader(1, 0)), ErrNoBits)
	require.ErrorIs(t, CheckHeader(newHeader(MaxHashCount+1, 64)), ErrSizeOverflow)
	require.ErrorIs(t, CheckHeader(newHeader(1, MaxBitCount+1)), ErrSizeOverflow)
	require.ErrorIs(t, CheckHeader(newHeader(1<<61-1, 1)), ErrFormat)
}
