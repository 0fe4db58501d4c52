package worldsrc

import (
	"context"
	"sync"

	"github.com/StoreStation/blockserver/internal/registry"
)

// Layer is one horizontal band of the superflat world, bottom to top.
type Layer struct {
	BlockID   string
	Thickness int
}

// DefaultLayers reproduces the classic bedrock/dirt/grass superflat
// preset, minus the legacy block-id/metadata encoding.
var DefaultLayers = []Layer{
	{BlockID: "minecraft:bedrock", Thickness: 1},
	{BlockID: "minecraft:dirt", Thickness: 2},
	{BlockID: "minecraft:grass_block", Thickness: 1},
}

// FlatSource is the default worldsrc.Source: every chunk is an identical
// superflat column resolved against a block-state table, generated once
// and cached.
type FlatSource struct {
	blocks *registry.BlockStateTable
	biomes *registry.Registry
	layers []Layer
	biome  string

	mu     sync.RWMutex
	cached *Chunk
}

// NewFlatSource builds a FlatSource. biomeRegistry may be nil, in which
// case every biome cell resolves to 0.
func NewFlatSource(blocks *registry.BlockStateTable, biomeRegistry *registry.Registry, layers []Layer, biome string) *FlatSource {
	if layers == nil {
		layers = DefaultLayers
	}
	return &FlatSource{blocks: blocks, biomes: biomeRegistry, layers: layers, biome: biome}
}

// Chunk implements Source. Every column is identical, so the generated
// template is built once and stamped with the requested coordinates.
func (s *FlatSource) Chunk(ctx context.Context, x, z int32) (*Chunk, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()

	if cached == nil {
		cached = s.generate()
		s.mu.Lock()
		s.cached = cached
		s.mu.Unlock()
	}

	out := *cached
	out.X, out.Z = x, z
	return &out, nil
}

func (s *FlatSource) generate() *Chunk {
	c := &Chunk{}

	biomeID := int32(0)
	if s.biomes != nil {
		if idx := s.biomes.IndexOf(s.biome); idx >= 0 {
			biomeID = int32(idx)
		}
	}

	// Resolve layer -> [startY, endY) once.
	type resolvedLayer struct {
		stateID  int32
		startY   int32
		endY     int32 // exclusive
	}
	var resolved []resolvedLayer
	y := int32(MinY)
	for _, l := range s.layers {
		state := s.blocks.DefaultStateID(l.BlockID)
		resolved = append(resolved, resolvedLayer{stateID: state, startY: y, endY: y + int32(l.Thickness)})
		y += int32(l.Thickness)
	}

	for secIdx := 0; secIdx < SectionsPerChunk; secIdx++ {
		sec := &c.Sections[secIdx]
		for i := range sec.Biomes {
			sec.Biomes[i] = biomeID
		}
		baseY := int32(MinY) + int32(secIdx)*SectionHeight
		for ly := 0; ly < SectionHeight; ly++ {
			worldY := baseY + int32(ly)
			state := int32(0) // air
			for _, rl := range resolved {
				if worldY >= rl.startY && worldY < rl.endY {
					state = rl.stateID
					break
				}
			}
			for lz := 0; lz < SectionHeight; lz++ {
				for lx := 0; lx < SectionHeight; lx++ {
					sec.BlockStates[blockIndex(lx, ly, lz)] = state
				}
			}
		}
	}
	return c
}
