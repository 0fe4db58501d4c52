package proto

// DecodeFunc decodes one packet payload into its typed value, returned as
// interface{} so a single dispatch table can hold every variant of a
// phase's sum type.
type DecodeFunc func(payload []byte) (interface{}, error)

func wrap[T any](f func([]byte) (T, error)) DecodeFunc {
	return func(payload []byte) (interface{}, error) {
		return f(payload)
	}
}

// HandshakeDispatch is the id -> decoder table for serverbound Handshake
// packets. Handshake has exactly one variant, but the table shape is kept
// uniform with the other phases.
var HandshakeDispatch = map[int32]DecodeFunc{
	HandshakeIDHandshake: wrap(DecodeHandshake),
}

// StatusDispatch is the id -> decoder table for serverbound Status packets.
var StatusDispatch = map[int32]DecodeFunc{
	StatusIDStatusRequest: wrap(DecodeStatusRequest),
	StatusIDPing:          wrap(DecodePing),
}

// LoginDispatch is the id -> decoder table for serverbound Login packets.
var LoginDispatch = map[int32]DecodeFunc{
	LoginIDLoginStart:          wrap(DecodeLoginStart),
	LoginIDLoginPluginResponse: wrap(DecodeLoginPluginResponse),
	LoginIDLoginAcknowledged:   wrap(DecodeLoginAcknowledged),
}

// ConfigurationDispatch is the id -> decoder table for serverbound
// Configuration packets.
var ConfigurationDispatch = map[int32]DecodeFunc{
	ConfigurationIDClientInformation:     wrap(DecodeClientInformation),
	ConfigurationIDPluginMessage:         wrap(DecodePluginMessage),
	ConfigurationIDFinishAck:             wrap(DecodeFinishConfigurationAck),
	ConfigurationIDServerBoundKnownPacks: wrap(DecodeServerBoundKnownPacks),
}

// PlayDispatch is the id -> decoder table for serverbound Play packets.
var PlayDispatch = map[int32]DecodeFunc{
	PlayIDConfirmTeleportation:      wrap(DecodeConfirmTeleportation),
	PlayIDChatCommand:               wrap(DecodeChatCommand),
	PlayIDChatMessage:               wrap(DecodeChatMessage),
	PlayIDClientInformation:         wrap(DecodeClientInformation),
	PlayIDCloseContainer:            wrap(DecodeCloseContainer),
	PlayIDDebugSampleSubscription:   wrap(DecodeDebugSampleSubscription),
	PlayIDSetPlayerPosition:         wrap(DecodeSetPlayerPosition),
	PlayIDSetPlayerPositionRotation: wrap(DecodeSetPlayerPositionAndRotation),
	PlayIDSetPlayerRotation:         wrap(DecodeSetPlayerRotation),
	PlayIDSetPlayerOnGround:         wrap(DecodeSetPlayerOnGround),
	PlayIDPingRequest:               wrap(DecodePingRequest),
	PlayIDPlayerAbilitiesSB:         wrap(DecodePlayerAbilitiesSB),
	PlayIDPlayerAction:              wrap(DecodePlayerAction),
	PlayIDPlayerCommand:             wrap(DecodePlayerCommand),
	PlayIDSetHeldItemSB:             wrap(DecodeSetHeldItemSB),
	PlayIDSetCreativeModeSlot:       wrap(DecodeSetCreativeModeSlot),
	PlayIDSwingArm:                  wrap(DecodeSwingArm),
	PlayIDUseItemOn:                 wrap(DecodeUseItemOn),
	PlayIDUseItem:                   wrap(DecodeUseItem),
}

// Dispatch decodes payload using the table for the given phase, returning a
// ProtocolError if id has no entry — the state-machine-safety property from
// ("no serverbound packet from phase P != current_phase is ever
// accepted") is enforced by callers only ever consulting the table for
// their own current phase.
func Dispatch(phase Phase, id int32, payload []byte) (interface{}, error) {
	var table map[int32]DecodeFunc
	switch phase {
	case PhaseHandshake:
		table = HandshakeDispatch
	case PhaseStatus:
		table = StatusDispatch
	case PhaseLogin:
		table = LoginDispatch
	case PhaseConfiguration:
		table = ConfigurationDispatch
	case PhasePlay:
		table = PlayDispatch
	default:
		return nil, errUnknownPacket(phase, id)
	}
	decode, ok := table[id]
	if !ok {
		return nil, errUnknownPacket(phase, id)
	}
	return decode(payload)
}
