package codec

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxStringChars is the maximum rune length of an MCString, per spec.
const MaxStringChars = 32767

// DecodeString reads a VarInt-length-prefixed UTF-8 string from buf.
func DecodeString(buf []byte) (string, int, error) {
	length, n, err := DecodeVarInt(buf)
	if err != nil {
		return "", 0, err
	}
	if length < 0 {
		return "", 0, ErrInvalidUTF8
	}
	end := n + int(length)
	if end > len(buf) {
		return "", 0, ErrEndOfBuffer
	}
	raw := buf[n:end]
	if !utf8.Valid(raw) {
		return "", 0, ErrInvalidUTF8
	}
	if utf8.RuneCount(raw) > MaxStringChars {
		return "", 0, ErrStringTooLong
	}
	return string(raw), end, nil
}

// EncodeString appends the MCString encoding of s to dst.
func EncodeString(dst []byte, s string) []byte {
	dst = EncodeVarInt(dst, int32(len(s)))
	return append(dst, s...)
}

// DecodeBool reads a single-byte boolean from buf.
func DecodeBool(buf []byte) (bool, int, error) {
	if len(buf) < 1 {
		return false, 0, ErrEndOfBuffer
	}
	return buf[0] != 0, 1, nil
}

// EncodeBool appends a single-byte boolean to dst.
func EncodeBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 1)
	}
	return append(dst, 0)
}

// DecodeU8 reads an unsigned byte from buf.
func DecodeU8(buf []byte) (uint8, int, error) {
	if len(buf) < 1 {
		return 0, 0, ErrEndOfBuffer
	}
	return buf[0], 1, nil
}

// EncodeU8 appends an unsigned byte to dst.
func EncodeU8(dst []byte, v uint8) []byte { return append(dst, v) }

// DecodeI8 reads a signed byte from buf.
func DecodeI8(buf []byte) (int8, int, error) {
	v, n, err := DecodeU8(buf)
	return int8(v), n, err
}

// EncodeI8 appends a signed byte to dst.
func EncodeI8(dst []byte, v int8) []byte { return append(dst, byte(v)) }

// DecodeU16 reads a big-endian unsigned 16-bit integer from buf.
func DecodeU16(buf []byte) (uint16, int, error) {
	if len(buf) < 2 {
		return 0, 0, ErrEndOfBuffer
	}
	return binary.BigEndian.Uint16(buf[:2]), 2, nil
}

// EncodeU16 appends a big-endian unsigned 16-bit integer to dst.
func EncodeU16(dst []byte, v uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return append(dst, b[:]...)
}

// DecodeI16 reads a big-endian signed 16-bit integer from buf.
func DecodeI16(buf []byte) (int16, int, error) {
	v, n, err := DecodeU16(buf)
	return int16(v), n, err
}

// EncodeI16 appends a big-endian signed 16-bit integer to dst.
func EncodeI16(dst []byte, v int16) []byte { return EncodeU16(dst, uint16(v)) }

// DecodeI32 reads a big-endian signed 32-bit integer from buf.
func DecodeI32(buf []byte) (int32, int, error) {
	if len(buf) < 4 {
		return 0, 0, ErrEndOfBuffer
	}
	return int32(binary.BigEndian.Uint32(buf[:4])), 4, nil
}

// EncodeI32 appends a big-endian signed 32-bit integer to dst.
func EncodeI32(dst []byte, v int32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return append(dst, b[:]...)
}

// DecodeI64 reads a big-endian signed 64-bit integer from buf.
func DecodeI64(buf []byte) (int64, int, error) {
	if len(buf) < 8 {
		return 0, 0, ErrEndOfBuffer
	}
	return int64(binary.BigEndian.Uint64(buf[:8])), 8, nil
}

// EncodeI64 appends a big-endian signed 64-bit integer to dst.
func EncodeI64(dst []byte, v int64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return append(dst, b[:]...)
}

// DecodeU64 reads a big-endian unsigned 64-bit integer from buf.
func DecodeU64(buf []byte) (uint64, int, error) {
	v, n, err := DecodeI64(buf)
	return uint64(v), n, err
}

// EncodeU64 appends a big-endian unsigned 64-bit integer to dst.
func EncodeU64(dst []byte, v uint64) []byte { return EncodeI64(dst, int64(v)) }

// DecodeF32 reads a big-endian IEEE-754 single-precision float from buf.
func DecodeF32(buf []byte) (float32, int, error) {
	v, n, err := DecodeI32(buf)
	return math.Float32frombits(uint32(v)), n, err
}

// EncodeF32 appends a big-endian IEEE-754 single-precision float to dst.
func EncodeF32(dst []byte, v float32) []byte {
	return EncodeI32(dst, int32(math.Float32bits(v)))
}

// DecodeF64 reads a big-endian IEEE-754 double-precision float from buf.
func DecodeF64(buf []byte) (float64, int, error) {
	v, n, err := DecodeI64(buf)
	return math.Float64frombits(uint64(v)), n, err
}

// EncodeF64 appends a big-endian IEEE-754 double-precision float to dst.
func EncodeF64(dst []byte, v float64) []byte {
	return EncodeI64(dst, int64(math.Float64bits(v)))
}

// DecodeUUID reads a 128-bit big-endian UUID from buf.
func DecodeUUID(buf []byte) (uuid.UUID, int, error) {
	if len(buf) < 16 {
		return uuid.UUID{}, 0, ErrEndOfBuffer
	}
	var id uuid.UUID
	copy(id[:], buf[:16])
	return id, 16, nil
}

// EncodeUUID appends the 16 big-endian bytes of id to dst.
func EncodeUUID(dst []byte, id uuid.UUID) []byte {
	return append(dst, id[:]...)
}
