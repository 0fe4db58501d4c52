package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStatusRequestEmpty(t *testing.T) {
	r, err := DecodeStatusRequest(nil)
	require.NoError(t, err)
	assert.Equal(t, StatusRequest{}, r)
}

func TestPingRoundTrips(t *testing.T) {
	payload := []byte{0, 0, 0, 0, 0, 0, 0, 0x2a}
	p, err := DecodePing(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, p.Payload[:])

	pong := PongResponse{Payload: p.Payload}
	assert.Equal(t, payload, pong.Encode())
}

func TestDecodePingTooShort(t *testing.T) {
	_, err := DecodePing([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestStatusResponseEncode(t *testing.T) {
	r := StatusResponse{JSON: `{"version":{}}`}
	out := r.Encode()
	assert.NotEmpty(t, out)
}
