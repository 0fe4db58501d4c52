package proto

import (
	"github.com/StoreStation/blockserver/internal/codec"
	"github.com/StoreStation/blockserver/internal/nbt"
	"github.com/StoreStation/blockserver/internal/worldsrc"
)

// ChunkDataAndUpdateLight carries one full chunk column. Heightmaps are
// sent as an empty compound rather than computed (lighting is explicitly
// leaves lighting/heightmap computation out of scope); the light
// sections are sent as empty bitsets, which a 1.21 client accepts and
// falls back to full-bright client-side lighting for.
type ChunkDataAndUpdateLight struct {
	ChunkX, ChunkZ int32
	Chunk          *worldsrc.Chunk
	BlockDirectBits int
	BiomeDirectBits int
}

func (p ChunkDataAndUpdateLight) Encode() []byte {
	var out []byte
	out = codec.EncodeI32(out, p.ChunkX)
	out = codec.EncodeI32(out, p.ChunkZ)
	out = append(out, nbt.EmptyCompound()...)

	data := worldsrc.EncodeChunk(p.Chunk, p.BlockDirectBits, p.BiomeDirectBits)
	out = codec.EncodeVarInt(out, int32(len(data)))
	out = append(out, data...)

	out = codec.EncodeVarInt(out, 0) // block_entity_count

	out = codec.EncodeVarInt(out, 0) // sky_light_mask length
	out = codec.EncodeVarInt(out, 0) // block_light_mask length
	out = codec.EncodeVarInt(out, 0) // empty_sky_light_mask length
	out = codec.EncodeVarInt(out, 0) // empty_block_light_mask length

	out = codec.EncodeVarInt(out, 0) // sky_light_array_count
	out = codec.EncodeVarInt(out, 0) // block_light_array_count
	return out
}
