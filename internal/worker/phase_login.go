package worker

import "github.com/StoreStation/blockserver/internal/proto"

func (w *Worker) handleLoginPacket(decoded interface{}) error {
	switch p := decoded.(type) {
	case proto.LoginStart:
		w.player.Name = p.Name
		w.player.UUID = p.UUID
		resp := proto.LoginSuccess{UUID: p.UUID, Name: p.Name, StrictError: false}
		w.sendPacket(proto.LoginIDLoginSuccess, resp.Encode())

	case proto.LoginPluginResponse:
		// This server never issues a plugin-message request, so an
		// unsolicited response has nothing to act on.

	case proto.LoginAcknowledged:
		w.phase = proto.PhaseConfiguration

	default:
		return &proto.ProtocolError{Phase: proto.PhaseLogin, Reason: "unexpected decoded type"}
	}
	return nil
}
