package worker

import "github.com/StoreStation/blockserver/internal/proto"

func (w *Worker) handleHandshakePacket(decoded interface{}) error {
	h, ok := decoded.(proto.Handshake)
	if !ok {
		return &proto.ProtocolError{Phase: proto.PhaseHandshake, Reason: "unexpected decoded type"}
	}
	if h.ProtocolVersion != proto.ProtocolVersion {
		return &proto.ProtocolError{Phase: proto.PhaseHandshake, Reason: "unsupported protocol version"}
	}

	switch h.NextState {
	case proto.NextStateStatus:
		w.phase = proto.PhaseStatus
	case proto.NextStateLogin:
		w.phase = proto.PhaseLogin
	case proto.NextStateTransfer:
		// Accepted but terminal: transfer semantics are left undefined and
		// out of scope here.
		w.phase = proto.PhaseTransfer
	default:
		return &proto.ProtocolError{Phase: proto.PhaseHandshake, Reason: "invalid next_state"}
	}
	return nil
}
