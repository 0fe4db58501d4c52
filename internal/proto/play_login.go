package proto

import "github.com/StoreStation/blockserver/internal/codec"

// Login is the clientbound packet that finalizes the Play transition. Field
// order and default values match the play-mode initialization burst
// exactly.
type Login struct {
	EntityID            int32
	IsHardcore          bool
	DimensionNames      []string
	MaxPlayers          int32
	ViewDistance        int32
	SimulationDistance  int32
	ReducedDebugInfo    bool
	EnableRespawnScreen bool
	DoLimitedCrafting   bool
	DimensionTypeID     int32
	DimensionName       string
	HashedSeed          int64
	GameMode            uint8
	PreviousGameMode    int8
	IsDebug             bool
	IsFlat              bool
	HasDeathLocation    bool
	PortalCooldown      int32
	EnforcesSecureChat  bool
}

// Encode renders the clientbound Login payload.
func (p Login) Encode() []byte {
	buf := codec.EncodeI32(nil, p.EntityID)
	buf = codec.EncodeBool(buf, p.IsHardcore)

	buf = codec.EncodeVarInt(buf, int32(len(p.DimensionNames)))
	for _, d := range p.DimensionNames {
		buf = codec.EncodeString(buf, d)
	}

	buf = codec.EncodeVarInt(buf, p.MaxPlayers)
	buf = codec.EncodeVarInt(buf, p.ViewDistance)
	buf = codec.EncodeVarInt(buf, p.SimulationDistance)
	buf = codec.EncodeBool(buf, p.ReducedDebugInfo)
	buf = codec.EncodeBool(buf, p.EnableRespawnScreen)
	buf = codec.EncodeBool(buf, p.DoLimitedCrafting)
	buf = codec.EncodeVarInt(buf, p.DimensionTypeID)
	buf = codec.EncodeString(buf, p.DimensionName)
	buf = codec.EncodeI64(buf, p.HashedSeed)
	buf = codec.EncodeU8(buf, p.GameMode)
	buf = codec.EncodeI8(buf, p.PreviousGameMode)
	buf = codec.EncodeBool(buf, p.IsDebug)
	buf = codec.EncodeBool(buf, p.IsFlat)
	buf = codec.EncodeBool(buf, p.HasDeathLocation)
	// HasDeathLocation is always false in this server; the dimension/position
	// fields that would follow are omitted accordingly.
	buf = codec.EncodeVarInt(buf, p.PortalCooldown)
	return codec.EncodeBool(buf, p.EnforcesSecureChat)
}

// DefaultHashedSeed is the fixed hashed-seed constant this server reports.
const DefaultHashedSeed int64 = -6574177734957711742

// GameModeCreative is the only gamemode this server ever announces.
const GameModeCreative uint8 = 1

// NoPreviousGameMode is the sentinel "no previous gamemode" value.
const NoPreviousGameMode int8 = -1
