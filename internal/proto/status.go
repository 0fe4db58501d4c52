package proto

import "github.com/StoreStation/blockserver/internal/codec"

// Status phase packet ids.
const (
	StatusIDStatusRequest  int32 = 0x00 // serverbound
	StatusIDPing           int32 = 0x01 // serverbound
	StatusIDStatusResponse int32 = 0x00 // clientbound
	StatusIDPongResponse   int32 = 0x01 // clientbound
)

// StatusRequest carries no fields.
type StatusRequest struct{}

// DecodeStatusRequest returns the empty request; any payload bytes are
// ignored.
func DecodeStatusRequest(payload []byte) (StatusRequest, error) {
	return StatusRequest{}, nil
}

// Ping carries an opaque 8-byte payload the server must echo verbatim.
type Ping struct {
	Payload [8]byte
}

// DecodePing parses a Ping packet payload.
func DecodePing(payload []byte) (Ping, error) {
	var p Ping
	if len(payload) < 8 {
		return p, errDecode(PhaseStatus, "ping payload", codec.ErrEndOfBuffer)
	}
	copy(p.Payload[:], payload[:8])
	return p, nil
}

// StatusResponse carries the server-status JSON document.
type StatusResponse struct {
	JSON string
}

// Encode renders the clientbound StatusResponse payload.
func (r StatusResponse) Encode() []byte {
	return codec.EncodeString(nil, r.JSON)
}

// PongResponse echoes the Ping payload back to the client.
type PongResponse struct {
	Payload [8]byte
}

// Encode renders the clientbound PongResponse payload.
func (r PongResponse) Encode() []byte {
	return append([]byte{}, r.Payload[:]...)
}
