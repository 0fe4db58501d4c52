package worldsrc

import (
	"math/bits"

	"github.com/StoreStation/blockserver/internal/codec"
)

// Paletted-container bit bounds per protocol 767. Block-state sections use
// an indirect palette up to 8 bits per entry before falling back to the
// registry-wide direct encoding; biome sections up to 3 bits.
const (
	blockMinBits    = 4
	blockMaxIndirect = 8
	biomeMinBits    = 1
	biomeMaxIndirect = 3
)

func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// encodePalettedContainer writes one paletted container (the format shared
// by block-state and biome sections): an unsigned-byte bits-per-entry, then
// either the single value as a VarInt and an empty data array
// (single-valued), a VarInt palette followed by packed indices (indirect),
// or packed values directly (direct, global palette).
func encodePalettedContainer(values []int32, minBits, maxIndirectBits, directBits int) []byte {
	palette := make([]int32, 0, 16)
	seen := make(map[int32]int)
	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = len(palette)
			palette = append(palette, v)
		}
	}

	var out []byte
	if len(palette) == 1 {
		out = append(out, 0)
		out = codec.EncodeVarInt(out, palette[0])
		out = append(out, packEntries(values, 0)...)
		return out
	}

	bitsPerEntry := ceilLog2(len(palette))
	if bitsPerEntry < minBits {
		bitsPerEntry = minBits
	}

	if bitsPerEntry > maxIndirectBits {
		// Direct encoding: no palette, every entry is the global id packed
		// at directBits width.
		out = append(out, byte(directBits))
		out = append(out, packEntries(values, directBits)...)
		return out
	}

	out = append(out, byte(bitsPerEntry))
	out = codec.EncodeVarInt(out, int32(len(palette)))
	for _, v := range palette {
		out = codec.EncodeVarInt(out, v)
	}
	indices := make([]int32, len(values))
	for i, v := range values {
		indices[i] = int32(seen[v])
	}
	out = append(out, packEntries(indices, bitsPerEntry)...)
	return out
}

// packEntries bit-packs values into big-endian int64 longs, entriesPerLong
// = 64/bitsPerEntry, with no value spanning a long boundary (the unused
// high bits of a partially-filled long are left zero).
func packEntries(values []int32, bitsPerEntry int) []byte {
	if bitsPerEntry == 0 {
		return codec.EncodeVarInt(nil, 0)
	}
	entriesPerLong := 64 / bitsPerEntry
	numLongs := (len(values) + entriesPerLong - 1) / entriesPerLong

	longs := make([]uint64, numLongs)
	mask := uint64(1)<<uint(bitsPerEntry) - 1
	for i, v := range values {
		longIdx := i / entriesPerLong
		slot := i % entriesPerLong
		longs[longIdx] |= (uint64(v) & mask) << uint(slot*bitsPerEntry)
	}

	out := codec.EncodeVarInt(nil, int32(numLongs))
	for _, l := range longs {
		out = codec.EncodeI64(out, int64(l))
	}
	return out
}

// countNonAir reports how many of the 4096 block states in a section are
// not the air state (id 0), the value written as the section's
// block_count.
func countNonAir(states [BlocksPerSection]int32) int16 {
	var n int16
	for _, s := range states {
		if s != 0 {
			n++
		}
	}
	return n
}

// EncodeSection serializes one chunk section: a 16-bit non-air block
// count, the block-state paletted container, then the biome paletted
// container.
func EncodeSection(sec Section, blockDirectBits, biomeDirectBits int) []byte {
	var out []byte
	out = codec.EncodeI16(out, countNonAir(sec.BlockStates))
	out = append(out, encodePalettedContainer(sec.BlockStates[:], blockMinBits, blockMaxIndirect, blockDirectBits)...)
	out = append(out, encodePalettedContainer(sec.Biomes[:], biomeMinBits, biomeMaxIndirect, biomeDirectBits)...)
	return out
}

// EncodeChunk concatenates every section's encoding into the
// ChunkDataAndUpdateLight packet's network_data payload.
func EncodeChunk(c *Chunk, blockDirectBits, biomeDirectBits int) []byte {
	var out []byte
	for _, sec := range c.Sections {
		out = append(out, EncodeSection(sec, blockDirectBits, biomeDirectBits)...)
	}
	return out
}
