package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarIntRoundTrip(t *testing.T) {
	tests := []struct {
		value    int32
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{255, []byte{0xFF, 0x01}},
		{25565, []byte{0xDD, 0xC7, 0x01}},
		{2097151, []byte{0xFF, 0xFF, 0x7F}},
		{2147483647, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x07}},
		{-1, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
		{-2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	}

	for _, tt := range tests {
		got := EncodeVarInt(nil, tt.value)
		assert.Equal(t, tt.expected, got)
		assert.Equal(t, len(tt.expected), VarIntSize(tt.value))

		value, n, err := DecodeVarInt(tt.expected)
		require.NoError(t, err)
		assert.Equal(t, tt.value, value)
		assert.Equal(t, len(tt.expected), n)
		assert.True(t, n >= 1 && n <= 5)
	}
}

func TestVarIntTooBig(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}
	_, _, err := DecodeVarInt(buf)
	require.ErrorIs(t, err, ErrVarIntTooBig)
}

func TestVarIntEndOfBuffer(t *testing.T) {
	_, _, err := DecodeVarInt([]byte{0x80})
	require.ErrorIs(t, err, ErrEndOfBuffer)
}

func TestVarLongRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 127, 128, 9223372036854775807, -9223372036854775808}
	for _, v := range values {
		enc := EncodeVarLong(nil, v)
		assert.GreaterOrEqual(t, len(enc), 1)
		assert.LessOrEqual(t, len(enc), 10)

		got, n, err := DecodeVarLong(enc)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, len(enc), n)
	}
}
