package worldsrc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StoreStation/blockserver/internal/registry"
)

func buildTestBlocks() *registry.BlockStateTable {
	t := registry.NewBlockStateTable()
	t.AddBlock("minecraft:bedrock", []registry.BlockState{{ID: 10, Default: true}})
	t.AddBlock("minecraft:dirt", []registry.BlockState{{ID: 20, Default: true}})
	t.AddBlock("minecraft:grass_block", []registry.BlockState{{ID: 30, Default: true}})
	return t
}

func TestFlatSourceLayering(t *testing.T) {
	src := NewFlatSource(buildTestBlocks(), nil, nil, "minecraft:plains")

	c, err := src.Chunk(context.Background(), 3, -2)
	require.NoError(t, err)
	assert.Equal(t, int32(3), c.X)
	assert.Equal(t, int32(-2), c.Z)

	bottomSection := c.Sections[0]
	bedrockState := int32(blockIndex(0, 0, 0))
	_ = bedrockState
	assert.Equal(t, int32(10), bottomSection.BlockStates[blockIndex(0, 0, 0)])
	assert.Equal(t, int32(20), bottomSection.BlockStates[blockIndex(0, 1, 0)])
	assert.Equal(t, int32(30), bottomSection.BlockStates[blockIndex(0, 3, 0)])
	assert.Equal(t, int32(0), bottomSection.BlockStates[blockIndex(0, 4, 0)])
}

func TestFlatSourceCachesTemplate(t *testing.T) {
	src := NewFlatSource(buildTestBlocks(), nil, nil, "minecraft:plains")
	a, err := src.Chunk(context.Background(), 0, 0)
	require.NoError(t, err)
	b, err := src.Chunk(context.Background(), 5, 5)
	require.NoError(t, err)
	assert.Equal(t, a.Sections[0].BlockStates, b.Sections[0].BlockStates)
	assert.NotEqual(t, a.X, b.X)
}
