package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockPosRoundTrip(t *testing.T) {
	cases := []BlockPos{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 1},
		{X: -1, Y: -1, Z: -1},
		{X: 33554431, Y: 2047, Z: 33554431},   // max positive (2^25-1)
		{X: -33554432, Y: -2048, Z: -33554432}, // min negative (-2^25)
	}
	for _, c := range cases {
		got, n, err := DecodeBlockPos(EncodeBlockPos(nil, c))
		require.NoError(t, err)
		assert.Equal(t, 8, n)
		assert.Equal(t, c, got)
	}
}

func TestBlockPosKnownEncoding(t *testing.T) {
	// 64 55 0 -> well known wiki.vg worked example.
	pos := BlockPos{X: 64, Y: 0, Z: 55}
	enc := EncodeBlockPos(nil, pos)
	// (64 << 38) | (55 << 12) | 0
	require.Equal(t, []byte{0x00, 0x00, 0x10, 0x00, 0x00, 0x03, 0x70, 0x00}, enc)
	got, _, err := DecodeBlockPos(enc)
	require.NoError(t, err)
	assert.Equal(t, pos, got)
}
