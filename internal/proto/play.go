package proto

import "github.com/StoreStation/blockserver/internal/codec"

// Serverbound play packet ids.
const (
	PlayIDConfirmTeleportation      int32 = 0x00
	PlayIDChatCommand               int32 = 0x04
	PlayIDChatMessage               int32 = 0x06
	PlayIDClientInformation         int32 = 0x0A
	PlayIDCloseContainer            int32 = 0x0F
	PlayIDDebugSampleSubscription   int32 = 0x13
	PlayIDSetPlayerPosition         int32 = 0x1A
	PlayIDSetPlayerPositionRotation int32 = 0x1B
	PlayIDSetPlayerRotation         int32 = 0x1C
	PlayIDSetPlayerOnGround         int32 = 0x1D
	PlayIDPingRequest               int32 = 0x21
	PlayIDPlayerAbilitiesSB         int32 = 0x23
	PlayIDPlayerAction              int32 = 0x24
	PlayIDPlayerCommand             int32 = 0x25
	PlayIDSetHeldItemSB             int32 = 0x2F
	PlayIDSetCreativeModeSlot       int32 = 0x32
	PlayIDSwingArm                  int32 = 0x36
	PlayIDUseItemOn                int32 = 0x38
	PlayIDUseItem                  int32 = 0x39
)

// Clientbound play packet ids.
const (
	PlayIDAcknowledgeBlockChange int32 = 0x05
	PlayIDBlockUpdate            int32 = 0x09
	PlayIDChangeDifficulty       int32 = 0x0B
	PlayIDCommands               int32 = 0x11
	PlayIDDisguisedChatMessage   int32 = 0x1E
	PlayIDEntityEvent            int32 = 0x1F
	PlayIDChunkDataAndLight      int32 = 0x27
	PlayIDLogin                  int32 = 0x2B
	PlayIDPingResponse           int32 = 0x36
	PlayIDPlayerAbilitiesCB      int32 = 0x38
	PlayIDPlayerChatMessage      int32 = 0x39
	PlayIDSyncPlayerPosition     int32 = 0x40
	PlayIDSetHeldItemCB          int32 = 0x53
	PlayIDSetTickingState        int32 = 0x71
	PlayIDStepTick               int32 = 0x72
	PlayIDEntityEffect           int32 = 0x76
)

// ---- serverbound ----

// ConfirmTeleportation acknowledges a SyncPlayerPosition by echoing its id.
type ConfirmTeleportation struct {
	TeleportID int32
}

func DecodeConfirmTeleportation(payload []byte) (ConfirmTeleportation, error) {
	id, _, err := codec.DecodeVarInt(payload)
	if err != nil {
		return ConfirmTeleportation{}, errDecode(PhasePlay, "teleport_id", err)
	}
	return ConfirmTeleportation{TeleportID: id}, nil
}

// ChatCommand is a `/`-prefixed command line, sent without the slash.
type ChatCommand struct {
	Command string
}

func DecodeChatCommand(payload []byte) (ChatCommand, error) {
	text, _, err := codec.DecodeString(payload)
	if err != nil {
		return ChatCommand{}, errDecode(PhasePlay, "command", err)
	}
	return ChatCommand{Command: text}, nil
}

// ChatMessage is a plain chat line; the signature fields are parsed only to
// stay framed correctly, since this server never verifies signatures.
type ChatMessage struct {
	Message   string
	Timestamp int64
	Salt      int64
	HasSig    bool
	Signature [256]byte
	AckCount  int32
	AckBitset [3]byte
}

func DecodeChatMessage(payload []byte) (ChatMessage, error) {
	var m ChatMessage
	var n int
	var err error

	m.Message, n, err = codec.DecodeString(payload)
	if err != nil {
		return m, errDecode(PhasePlay, "message", err)
	}
	payload = payload[n:]

	m.Timestamp, n, err = codec.DecodeI64(payload)
	if err != nil {
		return m, errDecode(PhasePlay, "timestamp", err)
	}
	payload = payload[n:]

	m.Salt, n, err = codec.DecodeI64(payload)
	if err != nil {
		return m, errDecode(PhasePlay, "salt", err)
	}
	payload = payload[n:]

	m.HasSig, n, err = codec.DecodeBool(payload)
	if err != nil {
		return m, errDecode(PhasePlay, "has_signature", err)
	}
	payload = payload[n:]

	if m.HasSig {
		if len(payload) < 256 {
			return m, errDecode(PhasePlay, "signature", codec.ErrEndOfBuffer)
		}
		copy(m.Signature[:], payload[:256])
		payload = payload[256:]
	}

	m.AckCount, n, err = codec.DecodeVarInt(payload)
	if err != nil {
		return m, errDecode(PhasePlay, "ack_count", err)
	}
	payload = payload[n:]

	if len(payload) < 3 {
		return m, errDecode(PhasePlay, "ack_bitset", codec.ErrEndOfBuffer)
	}
	copy(m.AckBitset[:], payload[:3])
	return m, nil
}

// CloseContainer is sent when the client closes any inventory window.
type CloseContainer struct {
	WindowID uint8
}

func DecodeCloseContainer(payload []byte) (CloseContainer, error) {
	id, _, err := codec.DecodeU8(payload)
	if err != nil {
		return CloseContainer{}, errDecode(PhasePlay, "window_id", err)
	}
	return CloseContainer{WindowID: id}, nil
}

// DebugSampleSubscription requests a stream of debug profiler samples.
// This server never sends any; the packet is parsed only for framing.
type DebugSampleSubscription struct {
	SampleType int32
}

func DecodeDebugSampleSubscription(payload []byte) (DebugSampleSubscription, error) {
	t, _, err := codec.DecodeVarInt(payload)
	if err != nil {
		return DebugSampleSubscription{}, errDecode(PhasePlay, "sample_type", err)
	}
	return DebugSampleSubscription{SampleType: t}, nil
}

// SetPlayerPosition reports a new position with the existing rotation.
type SetPlayerPosition struct {
	X, Y, Z  float64
	OnGround bool
}

func DecodeSetPlayerPosition(payload []byte) (SetPlayerPosition, error) {
	var p SetPlayerPosition
	var n int
	var err error
	p.X, n, err = codec.DecodeF64(payload)
	if err != nil {
		return p, errDecode(PhasePlay, "x", err)
	}
	payload = payload[n:]
	p.Y, n, err = codec.DecodeF64(payload)
	if err != nil {
		return p, errDecode(PhasePlay, "y", err)
	}
	payload = payload[n:]
	p.Z, n, err = codec.DecodeF64(payload)
	if err != nil {
		return p, errDecode(PhasePlay, "z", err)
	}
	payload = payload[n:]
	p.OnGround, _, err = codec.DecodeBool(payload)
	if err != nil {
		return p, errDecode(PhasePlay, "on_ground", err)
	}
	return p, nil
}

// SetPlayerPositionAndRotation reports a new position and rotation.
type SetPlayerPositionAndRotation struct {
	X, Y, Z     float64
	Yaw, Pitch  float32
	OnGround    bool
}

func DecodeSetPlayerPositionAndRotation(payload []byte) (SetPlayerPositionAndRotation, error) {
	var p SetPlayerPositionAndRotation
	var n int
	var err error
	p.X, n, err = codec.DecodeF64(payload)
	if err != nil {
		return p, errDecode(PhasePlay, "x", err)
	}
	payload = payload[n:]
	p.Y, n, err = codec.DecodeF64(payload)
	if err != nil {
		return p, errDecode(PhasePlay, "y", err)
	}
	payload = payload[n:]
	p.Z, n, err = codec.DecodeF64(payload)
	if err != nil {
		return p, errDecode(PhasePlay, "z", err)
	}
	payload = payload[n:]
	p.Yaw, n, err = codec.DecodeF32(payload)
	if err != nil {
		return p, errDecode(PhasePlay, "yaw", err)
	}
	payload = payload[n:]
	p.Pitch, n, err = codec.DecodeF32(payload)
	if err != nil {
		return p, errDecode(PhasePlay, "pitch", err)
	}
	payload = payload[n:]
	p.OnGround, _, err = codec.DecodeBool(payload)
	if err != nil {
		return p, errDecode(PhasePlay, "on_ground", err)
	}
	return p, nil
}

// SetPlayerRotation reports a new rotation with the existing position.
type SetPlayerRotation struct {
	Yaw, Pitch float32
	OnGround   bool
}

func DecodeSetPlayerRotation(payload []byte) (SetPlayerRotation, error) {
	var p SetPlayerRotation
	var n int
	var err error
	p.Yaw, n, err = codec.DecodeF32(payload)
	if err != nil {
		return p, errDecode(PhasePlay, "yaw", err)
	}
	payload = payload[n:]
	p.Pitch, n, err = codec.DecodeF32(payload)
	if err != nil {
		return p, errDecode(PhasePlay, "pitch", err)
	}
	payload = payload[n:]
	p.OnGround, _, err = codec.DecodeBool(payload)
	if err != nil {
		return p, errDecode(PhasePlay, "on_ground", err)
	}
	return p, nil
}

// SetPlayerOnGround reports only the on-ground flag.
type SetPlayerOnGround struct {
	OnGround bool
}

func DecodeSetPlayerOnGround(payload []byte) (SetPlayerOnGround, error) {
	v, _, err := codec.DecodeBool(payload)
	if err != nil {
		return SetPlayerOnGround{}, errDecode(PhasePlay, "on_ground", err)
	}
	return SetPlayerOnGround{OnGround: v}, nil
}

// PingRequest carries an opaque payload the server echoes as PingResponse.
type PingRequest struct {
	Payload uint64
}

func DecodePingRequest(payload []byte) (PingRequest, error) {
	v, _, err := codec.DecodeU64(payload)
	if err != nil {
		return PingRequest{}, errDecode(PhasePlay, "payload", err)
	}
	return PingRequest{Payload: v}, nil
}

// PlayerAbilitiesSB reports client-toggled ability flags (e.g. flying).
type PlayerAbilitiesSB struct {
	Flags uint8
}

func DecodePlayerAbilitiesSB(payload []byte) (PlayerAbilitiesSB, error) {
	v, _, err := codec.DecodeU8(payload)
	if err != nil {
		return PlayerAbilitiesSB{}, errDecode(PhasePlay, "flags", err)
	}
	return PlayerAbilitiesSB{Flags: v}, nil
}

// PlayerAction reports a digging/building-adjacent action against a block.
type PlayerAction struct {
	Status   int32
	Location codec.BlockPos
	Face     uint8
	Sequence int32
}

func DecodePlayerAction(payload []byte) (PlayerAction, error) {
	var a PlayerAction
	var n int
	var err error
	a.Status, n, err = codec.DecodeVarInt(payload)
	if err != nil {
		return a, errDecode(PhasePlay, "status", err)
	}
	payload = payload[n:]
	a.Location, n, err = codec.DecodeBlockPos(payload)
	if err != nil {
		return a, errDecode(PhasePlay, "location", err)
	}
	payload = payload[n:]
	a.Face, n, err = codec.DecodeU8(payload)
	if err != nil {
		return a, errDecode(PhasePlay, "face", err)
	}
	payload = payload[n:]
	a.Sequence, _, err = codec.DecodeVarInt(payload)
	if err != nil {
		return a, errDecode(PhasePlay, "sequence", err)
	}
	return a, nil
}

// PlayerCommand reports sneak/sprint/jump-boost style entity actions.
type PlayerCommand struct {
	EntityID  int32
	ActionID  int32
	JumpBoost int32
}

func DecodePlayerCommand(payload []byte) (PlayerCommand, error) {
	var c PlayerCommand
	var n int
	var err error
	c.EntityID, n, err = codec.DecodeVarInt(payload)
	if err != nil {
		return c, errDecode(PhasePlay, "entity_id", err)
	}
	payload = payload[n:]
	c.ActionID, n, err = codec.DecodeVarInt(payload)
	if err != nil {
		return c, errDecode(PhasePlay, "action_id", err)
	}
	payload = payload[n:]
	c.JumpBoost, _, err = codec.DecodeVarInt(payload)
	if err != nil {
		return c, errDecode(PhasePlay, "jump_boost", err)
	}
	return c, nil
}

// SetHeldItemSB reports the hotbar slot the client has selected.
type SetHeldItemSB struct {
	Slot uint16
}

func DecodeSetHeldItemSB(payload []byte) (SetHeldItemSB, error) {
	v, _, err := codec.DecodeU16(payload)
	if err != nil {
		return SetHeldItemSB{}, errDecode(PhasePlay, "slot", err)
	}
	return SetHeldItemSB{Slot: v}, nil
}

// SetCreativeModeSlot reports a creative-mode inventory edit. Item-stack
// contents are inventory semantics, a non-goal of this server (see
// non-goal): the slot index is parsed for completeness, the item payload
// is intentionally left unexamined.
type SetCreativeModeSlot struct {
	Slot uint16
}

func DecodeSetCreativeModeSlot(payload []byte) (SetCreativeModeSlot, error) {
	v, _, err := codec.DecodeU16(payload)
	if err != nil {
		return SetCreativeModeSlot{}, errDecode(PhasePlay, "slot", err)
	}
	return SetCreativeModeSlot{Slot: v}, nil
}

// SwingArm reports an arm-swing animation.
type SwingArm struct {
	OffHand bool
}

func DecodeSwingArm(payload []byte) (SwingArm, error) {
	handID, _, err := codec.DecodeVarInt(payload)
	if err != nil {
		return SwingArm{}, errDecode(PhasePlay, "hand", err)
	}
	return SwingArm{OffHand: handID == 1}, nil
}

// UseItemOn reports a right-click against a specific block face.
type UseItemOn struct {
	OffHand     bool
	Location    codec.BlockPos
	Face        int32
	CursorX     float32
	CursorY     float32
	CursorZ     float32
	InsideBlock bool
	Sequence    int32
}

func DecodeUseItemOn(payload []byte) (UseItemOn, error) {
	var u UseItemOn
	var n int
	var err error
	handID, n, err := codec.DecodeVarInt(payload)
	if err != nil {
		return u, errDecode(PhasePlay, "hand", err)
	}
	u.OffHand = handID == 1
	payload = payload[n:]

	u.Location, n, err = codec.DecodeBlockPos(payload)
	if err != nil {
		return u, errDecode(PhasePlay, "location", err)
	}
	payload = payload[n:]

	u.Face, n, err = codec.DecodeVarInt(payload)
	if err != nil {
		return u, errDecode(PhasePlay, "face", err)
	}
	payload = payload[n:]

	u.CursorX, n, err = codec.DecodeF32(payload)
	if err != nil {
		return u, errDecode(PhasePlay, "cursor_x", err)
	}
	payload = payload[n:]
	u.CursorY, n, err = codec.DecodeF32(payload)
	if err != nil {
		return u, errDecode(PhasePlay, "cursor_y", err)
	}
	payload = payload[n:]
	u.CursorZ, n, err = codec.DecodeF32(payload)
	if err != nil {
		return u, errDecode(PhasePlay, "cursor_z", err)
	}
	payload = payload[n:]

	u.InsideBlock, n, err = codec.DecodeBool(payload)
	if err != nil {
		return u, errDecode(PhasePlay, "inside_block", err)
	}
	payload = payload[n:]

	u.Sequence, _, err = codec.DecodeVarInt(payload)
	if err != nil {
		return u, errDecode(PhasePlay, "sequence", err)
	}
	return u, nil
}

// UseItem reports a right-click in the air.
type UseItem struct {
	OffHand  bool
	Sequence int32
	Yaw      float32
	Pitch    float32
}

func DecodeUseItem(payload []byte) (UseItem, error) {
	var u UseItem
	var n int
	var err error
	handID, n, err := codec.DecodeVarInt(payload)
	if err != nil {
		return u, errDecode(PhasePlay, "hand", err)
	}
	u.OffHand = handID == 1
	payload = payload[n:]

	u.Sequence, n, err = codec.DecodeVarInt(payload)
	if err != nil {
		return u, errDecode(PhasePlay, "sequence", err)
	}
	payload = payload[n:]

	u.Yaw, n, err = codec.DecodeF32(payload)
	if err != nil {
		return u, errDecode(PhasePlay, "yaw", err)
	}
	payload = payload[n:]

	u.Pitch, _, err = codec.DecodeF32(payload)
	if err != nil {
		return u, errDecode(PhasePlay, "pitch", err)
	}
	return u, nil
}

// ---- clientbound ----

// AcknowledgeBlockChange confirms a client-predicted block edit sequence.
type AcknowledgeBlockChange struct {
	SequenceID int32
}

func (p AcknowledgeBlockChange) Encode() []byte {
	return codec.EncodeVarInt(nil, p.SequenceID)
}

// BlockUpdate announces a single block's new state id.
type BlockUpdate struct {
	Location codec.BlockPos
	StateID  int32
}

func (p BlockUpdate) Encode() []byte {
	buf := codec.EncodeBlockPos(nil, p.Location)
	return codec.EncodeVarInt(buf, p.StateID)
}

// ChangeDifficulty announces the world difficulty.
type ChangeDifficulty struct {
	Difficulty uint8
	Locked     bool
}

func (p ChangeDifficulty) Encode() []byte {
	buf := codec.EncodeU8(nil, p.Difficulty)
	return codec.EncodeBool(buf, p.Locked)
}

// DisguisedChatMessage is the chat-broadcast shape emitted by the server
// core's fan-out: an NBT message component wrapped with a chat type and an
// NBT sender-name component.
type DisguisedChatMessage struct {
	Message    []byte // NBT text component
	ChatType   int32
	SenderName []byte // NBT text component
	HasTarget  bool
}

func (p DisguisedChatMessage) Encode() []byte {
	buf := append([]byte{}, p.Message...)
	buf = codec.EncodeVarInt(buf, p.ChatType)
	buf = append(buf, p.SenderName...)
	return codec.EncodeBool(buf, p.HasTarget)
}

// EntityEvent triggers a client-side visual/sound effect for an entity.
type EntityEvent struct {
	EntityID     int32
	EntityStatus uint8
}

func (p EntityEvent) Encode() []byte {
	buf := codec.EncodeI32(nil, p.EntityID)
	return codec.EncodeU8(buf, p.EntityStatus)
}

// PingResponse echoes a PingRequest payload.
type PingResponse struct {
	Payload uint64
}

func (p PingResponse) Encode() []byte {
	return codec.EncodeU64(nil, p.Payload)
}

// PlayerAbilitiesCB announces ability flags and movement speeds.
type PlayerAbilitiesCB struct {
	Flags       uint8
	FlySpeed    float32
	FOVModifier float32
}

func (p PlayerAbilitiesCB) Encode() []byte {
	buf := codec.EncodeU8(nil, p.Flags)
	buf = codec.EncodeF32(buf, p.FlySpeed)
	return codec.EncodeF32(buf, p.FOVModifier)
}

// PlayerChatMessage is the signed-chat clientbound shape; this server
// always sends it unsigned.
type PlayerChatMessage struct {
	SenderUUID     [16]byte
	Index          int32
	MessageSigPresent bool
	Message        string
	Timestamp      int64
	Salt           int64
	PrevMessages   int32
	UnsignedPresent bool
	FilterPass     bool // not encoded: Encode always writes filter type PASS
	ChatType       int32
	SenderName     []byte // NBT text component
	HasTarget      bool
}

func (p PlayerChatMessage) Encode() []byte {
	buf := append([]byte{}, p.SenderUUID[:]...)
	buf = codec.EncodeVarInt(buf, p.Index)
	buf = codec.EncodeBool(buf, p.MessageSigPresent)
	buf = codec.EncodeString(buf, p.Message)
	buf = codec.EncodeI64(buf, p.Timestamp)
	buf = codec.EncodeI64(buf, p.Salt)
	buf = codec.EncodeVarInt(buf, p.PrevMessages)
	buf = codec.EncodeBool(buf, p.UnsignedPresent)
	buf = codec.EncodeVarInt(buf, 0) // filter type: PASS
	buf = codec.EncodeVarInt(buf, p.ChatType)
	buf = append(buf, p.SenderName...)
	return codec.EncodeBool(buf, p.HasTarget)
}

// SyncPlayerPosition corrects the client's authoritative position.
type SyncPlayerPosition struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	Flags      uint8
	TeleportID int32
}

func (p SyncPlayerPosition) Encode() []byte {
	buf := codec.EncodeF64(nil, p.X)
	buf = codec.EncodeF64(buf, p.Y)
	buf = codec.EncodeF64(buf, p.Z)
	buf = codec.EncodeF32(buf, p.Yaw)
	buf = codec.EncodeF32(buf, p.Pitch)
	buf = codec.EncodeU8(buf, p.Flags)
	return codec.EncodeVarInt(buf, p.TeleportID)
}

// Position-correction relative/absolute flag bits.
const (
	TeleportFlagRelX     uint8 = 0x01
	TeleportFlagRelY     uint8 = 0x02
	TeleportFlagRelZ     uint8 = 0x04
	TeleportFlagRelYaw   uint8 = 0x08
	TeleportFlagRelPitch uint8 = 0x10
)

// SetHeldItemCB announces the server's view of the held hotbar slot.
type SetHeldItemCB struct {
	Slot uint8
}

func (p SetHeldItemCB) Encode() []byte {
	return codec.EncodeU8(nil, p.Slot)
}

// SetTickingState announces the game's tick rate and frozen state.
type SetTickingState struct {
	TickRate float32
	Frozen   bool
}

func (p SetTickingState) Encode() []byte {
	buf := codec.EncodeF32(nil, p.TickRate)
	return codec.EncodeBool(buf, p.Frozen)
}

// StepTick advances the client's tick counter by the given number of steps.
type StepTick struct {
	Steps int32
}

func (p StepTick) Encode() []byte {
	return codec.EncodeVarInt(nil, p.Steps)
}

// EntityEffect applies a status-effect icon/particle to an entity.
type EntityEffect struct {
	EntityID   int32
	EffectID   int32
	Amplifier  int32
	Duration   int32
	Flags      uint8
}

func (p EntityEffect) Encode() []byte {
	buf := codec.EncodeVarInt(nil, p.EntityID)
	buf = codec.EncodeVarInt(buf, p.EffectID)
	buf = codec.EncodeVarInt(buf, p.Amplifier)
	buf = codec.EncodeVarInt(buf, p.Duration)
	return codec.EncodeU8(buf, p.Flags)
}
