package codec

import "errors"

// Sentinel errors returned by the decode side of the codec. Callers should
// use errors.Is against these rather than matching strings.
var (
	// ErrEndOfBuffer is returned when a decoder runs out of bytes before a
	// value is fully read.
	ErrEndOfBuffer = errors.New("codec: end of buffer")

	// ErrVarIntTooBig is returned when a VarInt/VarLong exceeds its maximum
	// encoded width (5 bytes / 10 bytes) without terminating.
	ErrVarIntTooBig = errors.New("codec: varint too big")

	// ErrInvalidUTF8 is returned when a decoded MCString is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("codec: invalid utf-8")

	// ErrStringTooLong is returned when a decoded MCString exceeds the
	// 32767 character limit.
	ErrStringTooLong = errors.New("codec: string too long")

	// ErrFrameTooLarge is returned by the stream decoder when a declared
	// frame length exceeds the configured maximum buffer size.
	ErrFrameTooLarge = errors.New("codec: frame too large")
)
