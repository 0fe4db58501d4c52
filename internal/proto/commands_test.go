package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StoreStation/blockserver/internal/codec"
)

func TestBuiltinCommandGraphStructure(t *testing.T) {
	out := BuiltinCommandGraph()
	require.NotEmpty(t, out)

	count, n, err := codec.DecodeVarInt(out)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	out = out[n:]

	// Root node: flags = NodeTypeRoot (0), one child.
	assert.Equal(t, byte(NodeTypeRoot), out[0])
	out = out[1:]
	childCount, n, err := codec.DecodeVarInt(out)
	require.NoError(t, err)
	assert.EqualValues(t, 1, childCount)
}

func TestEncodeCommandGraphTrailingRootIndex(t *testing.T) {
	nodes := []CommandNode{{Type: NodeTypeRoot}}
	out := EncodeCommandGraph(nodes)
	// trailing VarInt(0) is the last byte
	assert.Equal(t, byte(0), out[len(out)-1])
}

func TestIntegerBoundsFlags(t *testing.T) {
	n := CommandNode{
		Type:      NodeTypeArgument,
		Name:      "value",
		ParserID:  ParserInteger,
		IntegerBounds: &IntegerBounds{HasMin: true, Min: 0},
	}
	out := EncodeCommandGraph([]CommandNode{n})
	assert.NotEmpty(t, out)
}

// A brigadier:integer argument with no bounds must still emit the
// mandatory flags byte (0x00), or the following bytes (name string length,
// trailing root index) shift left and the client misparses the packet.
func TestIntegerArgumentWithoutBoundsStillEmitsFlagsByte(t *testing.T) {
	nodes := []CommandNode{
		{Type: NodeTypeRoot, Children: []int32{1}},
		{Type: NodeTypeArgument, Name: "value", Executable: true, ParserID: ParserInteger},
	}
	out := EncodeCommandGraph(nodes)

	_, n, err := codec.DecodeVarInt(out) // node count
	require.NoError(t, err)
	out = out[n:]

	out = out[1:] // root flags byte
	childCount, n, err := codec.DecodeVarInt(out)
	require.NoError(t, err)
	require.EqualValues(t, 1, childCount)
	out = out[n:]
	_, n, err = codec.DecodeVarInt(out) // child index
	require.NoError(t, err)
	out = out[n:]

	out = out[1:] // argument flags byte
	_, n, err = codec.DecodeVarInt(out) // children count (0)
	require.NoError(t, err)
	out = out[n:]
	name, n, err := codec.DecodeString(out)
	require.NoError(t, err)
	require.Equal(t, "value", name)
	out = out[n:]

	parserID, n, err := codec.DecodeVarInt(out)
	require.NoError(t, err)
	require.EqualValues(t, ParserInteger, parserID)
	out = out[n:]

	require.NotEmpty(t, out, "integer properties flags byte must be present")
	assert.Equal(t, byte(0), out[0], "no bounds means neither has_min nor has_max bit set")
	out = out[1:]

	rootIndex, _, err := codec.DecodeVarInt(out)
	require.NoError(t, err)
	assert.EqualValues(t, 0, rootIndex)
}
