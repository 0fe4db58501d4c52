package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StoreStation/blockserver/internal/codec"
)

func TestConfirmTeleportationDecode(t *testing.T) {
	payload := codec.EncodeVarInt(nil, 7)
	c, err := DecodeConfirmTeleportation(payload)
	require.NoError(t, err)
	assert.EqualValues(t, 7, c.TeleportID)
}

func TestSetPlayerPositionDecode(t *testing.T) {
	var payload []byte
	payload = codec.EncodeF64(payload, 0)
	payload = codec.EncodeF64(payload, -120)
	payload = codec.EncodeF64(payload, 0)
	payload = codec.EncodeBool(payload, false)

	p, err := DecodeSetPlayerPosition(payload)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, -120.0, p.Y)
	assert.False(t, p.OnGround)
}

func TestChatCommandDecode(t *testing.T) {
	payload := codec.EncodeString(nil, "place 5")
	c, err := DecodeChatCommand(payload)
	require.NoError(t, err)
	assert.Equal(t, "place 5", c.Command)
}

func TestChatMessageDecodeNoSignature(t *testing.T) {
	var payload []byte
	payload = codec.EncodeString(payload, "hi")
	payload = codec.EncodeI64(payload, 1000)
	payload = codec.EncodeI64(payload, 42)
	payload = codec.EncodeBool(payload, false)
	payload = codec.EncodeVarInt(payload, 0)
	payload = append(payload, 0, 0, 0)

	m, err := DecodeChatMessage(payload)
	require.NoError(t, err)
	assert.Equal(t, "hi", m.Message)
	assert.EqualValues(t, 1000, m.Timestamp)
	assert.False(t, m.HasSig)
}

func TestSyncPlayerPositionEncode(t *testing.T) {
	p := SyncPlayerPosition{X: 0, Y: -64, Z: 0, Flags: TeleportFlagRelX | TeleportFlagRelZ | TeleportFlagRelYaw | TeleportFlagRelPitch, TeleportID: 0}
	out := p.Encode()
	// 8+8+8+4+4+1 + varint(1)
	assert.Equal(t, 34, len(out))
}

func TestLoginPlayEncodeFieldOrder(t *testing.T) {
	l := Login{
		EntityID:           42,
		DimensionNames:     []string{"minecraft:overworld"},
		MaxPlayers:         20,
		ViewDistance:       8,
		SimulationDistance: 8,
		DimensionName:      "minecraft:overworld",
		HashedSeed:         DefaultHashedSeed,
		GameMode:           GameModeCreative,
		PreviousGameMode:   NoPreviousGameMode,
		PortalCooldown:     0,
	}
	out := l.Encode()
	assert.NotEmpty(t, out)

	id, n, err := codec.DecodeI32(out)
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)
	_ = n
}

func TestEntityEffectEncode(t *testing.T) {
	e := EntityEffect{EntityID: 1, EffectID: 15, Amplifier: 1, Duration: 127, Flags: 0x07}
	out := e.Encode()
	assert.NotEmpty(t, out)
}
