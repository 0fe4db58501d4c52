package proto

import "github.com/StoreStation/blockserver/internal/codec"

// Handshake packet ids (serverbound only; this phase has no clientbound
// traffic).
const (
	HandshakeIDHandshake int32 = 0x00
)

// NextState values carried by the Handshake packet.
const (
	NextStateStatus    int32 = 1
	NextStateLogin     int32 = 2
	NextStateTransfer  int32 = 3
)

// Handshake is the sole serverbound packet of the handshake phase.
type Handshake struct {
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	NextState       int32
}

// DecodeHandshake parses a Handshake packet payload.
func DecodeHandshake(payload []byte) (Handshake, error) {
	var h Handshake
	protocolVersion, n, err := codec.DecodeVarInt(payload)
	if err != nil {
		return h, errDecode(PhaseHandshake, "protocol_version", err)
	}
	payload = payload[n:]

	addr, n, err := codec.DecodeString(payload)
	if err != nil {
		return h, errDecode(PhaseHandshake, "server_address", err)
	}
	payload = payload[n:]

	port, n, err := codec.DecodeU16(payload)
	if err != nil {
		return h, errDecode(PhaseHandshake, "server_port", err)
	}
	payload = payload[n:]

	nextState, _, err := codec.DecodeVarInt(payload)
	if err != nil {
		return h, errDecode(PhaseHandshake, "next_state", err)
	}

	h.ProtocolVersion = protocolVersion
	h.ServerAddress = addr
	h.ServerPort = port
	h.NextState = nextState
	return h, nil
}
