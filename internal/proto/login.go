package proto

import (
	"github.com/google/uuid"

	"github.com/StoreStation/blockserver/internal/codec"
)

// Login phase packet ids.
const (
	LoginIDLoginStart           int32 = 0x00 // serverbound
	LoginIDLoginPluginResponse  int32 = 0x02 // serverbound
	LoginIDLoginAcknowledged    int32 = 0x03 // serverbound
	LoginIDLoginSuccess         int32 = 0x02 // clientbound
)

// LoginStart is the first packet of the login phase.
type LoginStart struct {
	Name string
	UUID uuid.UUID
}

// DecodeLoginStart parses a LoginStart packet payload.
func DecodeLoginStart(payload []byte) (LoginStart, error) {
	var l LoginStart
	name, n, err := codec.DecodeString(payload)
	if err != nil {
		return l, errDecode(PhaseLogin, "name", err)
	}
	payload = payload[n:]

	id, _, err := codec.DecodeUUID(payload)
	if err != nil {
		return l, errDecode(PhaseLogin, "uuid", err)
	}

	l.Name = name
	l.UUID = id
	return l, nil
}

// LoginPluginResponse answers a server-initiated plugin-message request.
// This server never sends such a request, but must still parse the
// response shape if a client sends one unprompted.
type LoginPluginResponse struct {
	MessageID int32
	Success   bool
	Data      []byte
}

// DecodeLoginPluginResponse parses a LoginPluginResponse packet payload.
func DecodeLoginPluginResponse(payload []byte) (LoginPluginResponse, error) {
	var r LoginPluginResponse
	id, n, err := codec.DecodeVarInt(payload)
	if err != nil {
		return r, errDecode(PhaseLogin, "message_id", err)
	}
	payload = payload[n:]

	success, n, err := codec.DecodeBool(payload)
	if err != nil {
		return r, errDecode(PhaseLogin, "success", err)
	}
	payload = payload[n:]

	r.MessageID = id
	r.Success = success
	if success {
		r.Data = append([]byte{}, payload...)
	}
	return r, nil
}

// LoginAcknowledged carries no fields; it gates the Login -> Configuration
// transition.
type LoginAcknowledged struct{}

// DecodeLoginAcknowledged returns the empty acknowledgement; any payload
// bytes are ignored.
func DecodeLoginAcknowledged(payload []byte) (LoginAcknowledged, error) {
	return LoginAcknowledged{}, nil
}

// LoginSuccess is the clientbound reply to a successful LoginStart.
type LoginSuccess struct {
	UUID        uuid.UUID
	Name        string
	StrictError bool
}

// Encode renders the clientbound LoginSuccess payload.
func (r LoginSuccess) Encode() []byte {
	buf := codec.EncodeUUID(nil, r.UUID)
	buf = codec.EncodeString(buf, r.Name)
	buf = codec.EncodeVarInt(buf, 0) // property_count, always 0
	buf = codec.EncodeBool(buf, r.StrictError)
	return buf
}
