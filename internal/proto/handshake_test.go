package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StoreStation/blockserver/internal/codec"
)

func TestDecodeHandshakeWikiVGExample(t *testing.T) {
	var payload []byte
	payload = codec.EncodeVarInt(payload, 767)
	payload = codec.EncodeString(payload, "localhost")
	payload = codec.EncodeU16(payload, 25565)
	payload = codec.EncodeVarInt(payload, NextStateStatus)

	h, err := DecodeHandshake(payload)
	require.NoError(t, err)
	assert.EqualValues(t, 767, h.ProtocolVersion)
	assert.Equal(t, "localhost", h.ServerAddress)
	assert.EqualValues(t, 25565, h.ServerPort)
	assert.Equal(t, NextStateStatus, h.NextState)
}

func TestDecodeHandshakeTruncated(t *testing.T) {
	_, err := DecodeHandshake([]byte{0x01})
	assert.Error(t, err)
}
