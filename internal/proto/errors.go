package proto

import "fmt"

// ProtocolError is returned whenever a serverbound packet is malformed for
// its declared id, or arrives in a phase that does not expect it.
type ProtocolError struct {
	Phase   Phase
	Reason  string
	Wrapped error
}

func (e *ProtocolError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("protocol error in %s phase: %s: %v", e.Phase, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("protocol error in %s phase: %s", e.Phase, e.Reason)
}

func (e *ProtocolError) Unwrap() error { return e.Wrapped }

func errUnknownPacket(phase Phase, id int32) error {
	return &ProtocolError{Phase: phase, Reason: fmt.Sprintf("unexpected packet id 0x%02X for current phase", id)}
}

func errDecode(phase Phase, reason string, err error) error {
	return &ProtocolError{Phase: phase, Reason: reason, Wrapped: err}
}
