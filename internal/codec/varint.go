// Package codec implements the primitive on-wire types of protocol 767:
// VarInt, VarLong, MCString, fixed-width big-endian integers, Bool, UUID
// and BlockPos. Every decoder is a pure function over a byte slice: it
// either returns a value plus the number of bytes consumed, or a sentinel
// error from errors.go. Nothing here touches a socket.
package codec

// DecodeVarInt reads a signed 32-bit VarInt from the front of buf.
// It returns the decoded value and the number of bytes consumed.
func DecodeVarInt(buf []byte) (int32, int, error) {
	var value uint32
	var shift uint
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		value |= uint32(b&0x7F) << shift
		shift += 7
		if b&0x80 == 0 {
			return int32(value), i + 1, nil
		}
		if shift >= 32 {
			return 0, 0, ErrVarIntTooBig
		}
	}
	return 0, 0, ErrEndOfBuffer
}

// EncodeVarInt appends the VarInt encoding of value to dst and returns the
// extended slice.
func EncodeVarInt(dst []byte, value int32) []byte {
	uval := uint32(value)
	for {
		if uval&^uint32(0x7F) == 0 {
			return append(dst, byte(uval))
		}
		dst = append(dst, byte(uval&0x7F)|0x80)
		uval >>= 7
	}
}

// VarIntSize returns the number of bytes EncodeVarInt would emit for value.
func VarIntSize(value int32) int {
	uval := uint32(value)
	n := 1
	for uval&^uint32(0x7F) != 0 {
		uval >>= 7
		n++
	}
	return n
}

// DecodeVarLong reads a signed 64-bit VarLong from the front of buf.
func DecodeVarLong(buf []byte) (int64, int, error) {
	var value uint64
	var shift uint
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		value |= uint64(b&0x7F) << shift
		shift += 7
		if b&0x80 == 0 {
			return int64(value), i + 1, nil
		}
		if shift >= 64 {
			return 0, 0, ErrVarIntTooBig
		}
	}
	return 0, 0, ErrEndOfBuffer
}

// EncodeVarLong appends the VarLong encoding of value to dst.
func EncodeVarLong(dst []byte, value int64) []byte {
	uval := uint64(value)
	for {
		if uval&^uint64(0x7F) == 0 {
			return append(dst, byte(uval))
		}
		dst = append(dst, byte(uval&0x7F)|0x80)
		uval >>= 7
	}
}
