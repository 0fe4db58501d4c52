package codec

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRoundTrip(t *testing.T) {
	samples := []string{"", "localhost", "héllo wörld", strings.Repeat("a", 1000)}
	for _, s := range samples {
		enc := EncodeString(nil, s)
		got, n, err := DecodeString(enc)
		require.NoError(t, err)
		assert.Equal(t, s, got)
		assert.Equal(t, len(enc), n)
	}
}

func TestStringTooLong(t *testing.T) {
	s := strings.Repeat("a", MaxStringChars+1)
	enc := EncodeString(nil, s)
	_, _, err := DecodeString(enc)
	require.ErrorIs(t, err, ErrStringTooLong)
}

func TestStringInvalidUTF8(t *testing.T) {
	buf := EncodeVarInt(nil, 3)
	buf = append(buf, 0xff, 0xfe, 0xfd)
	_, _, err := DecodeString(buf)
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestBoolRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		enc := EncodeBool(nil, v)
		got, n, err := DecodeBool(enc)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, 1, n)
	}
}

func TestFixedWidthRoundTrip(t *testing.T) {
	u16, _, _ := (func() (uint16, int, error) { return DecodeU16(EncodeU16(nil, 25565)) })()
	assert.Equal(t, uint16(25565), u16)

	i32, _, _ := DecodeI32(EncodeI32(nil, -12345))
	assert.Equal(t, int32(-12345), i32)

	i64, _, _ := DecodeI64(EncodeI64(nil, -6574177734957711742))
	assert.Equal(t, int64(-6574177734957711742), i64)

	f32, _, _ := DecodeF32(EncodeF32(nil, 0.1))
	assert.InDelta(t, float32(0.1), f32, 1e-6)

	f64, _, _ := DecodeF64(EncodeF64(nil, 20.0))
	assert.Equal(t, 20.0, f64)
}

func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.New()
	got, n, err := DecodeUUID(EncodeUUID(nil, id))
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, 16, n)
}
