package proto

import "github.com/StoreStation/blockserver/internal/codec"

// Command graph node types (the low 2 bits of a node's flags byte).
const (
	NodeTypeRoot     byte = 0
	NodeTypeLiteral  byte = 1
	NodeTypeArgument byte = 2
)

const (
	flagExecutable  byte = 0x04
	flagHasRedirect byte = 0x08
	flagHasSuggestions byte = 0x10
)

// Brigadier parser ids used by the built-in command graph. Only the three
// kinds the original command builder distinguished (integer, string, bool)
// are implemented; the rest of vanilla's parser catalogue is not needed by
// any built-in command.
const (
	ParserBool    int32 = 0
	ParserInteger int32 = 3
	ParserString  int32 = 5
)

// StringParserMode is the brigadier:string parser's single property.
type StringParserMode int32

const (
	StringSingleWord    StringParserMode = 0
	StringQuotablePhrase StringParserMode = 1
	StringGreedyPhrase  StringParserMode = 2
)

// IntegerBounds is the optional min/max pair carried by brigadier:integer
// (and, in general, any bounded numeric parser).
type IntegerBounds struct {
	HasMin, HasMax bool
	Min, Max       int32
}

// CommandNode is one node of the command graph, kept as a flat
// index-addressed slice rather than a pointer graph (a "no cyclic
// ownership" note).
type CommandNode struct {
	Type            byte
	Executable      bool
	Children        []int32
	RedirectTo      *int32
	Name            string
	ParserID        int32
	HasParser       bool
	IntegerBounds   *IntegerBounds
	StringMode      *StringParserMode
	SuggestionsType string
}

func (n CommandNode) flags() byte {
	f := n.Type & 0x03
	if n.Executable {
		f |= flagExecutable
	}
	if n.RedirectTo != nil {
		f |= flagHasRedirect
	}
	if n.SuggestionsType != "" {
		f |= flagHasSuggestions
	}
	return f
}

// EncodeCommandGraph serializes a Commands (0x11) packet body: the node
// list followed by the trailing root-index VarInt, which is always 0 since
// node 0 is always the graph root.
func EncodeCommandGraph(nodes []CommandNode) []byte {
	var out []byte
	out = codec.EncodeVarInt(out, int32(len(nodes)))
	for _, n := range nodes {
		out = append(out, n.flags())
		out = codec.EncodeVarInt(out, int32(len(n.Children)))
		for _, c := range n.Children {
			out = codec.EncodeVarInt(out, c)
		}
		if n.RedirectTo != nil {
			out = codec.EncodeVarInt(out, *n.RedirectTo)
		}
		if n.Type == NodeTypeLiteral || n.Type == NodeTypeArgument {
			out = codec.EncodeString(out, n.Name)
		}
		if n.Type == NodeTypeArgument {
			out = codec.EncodeVarInt(out, n.ParserID)
			switch n.ParserID {
			case ParserInteger:
				out = append(out, encodeIntegerBoundsFlags(n.IntegerBounds))
				if n.IntegerBounds != nil && n.IntegerBounds.HasMin {
					out = codec.EncodeI32(out, n.IntegerBounds.Min)
				}
				if n.IntegerBounds != nil && n.IntegerBounds.HasMax {
					out = codec.EncodeI32(out, n.IntegerBounds.Max)
				}
			case ParserString:
				mode := StringSingleWord
				if n.StringMode != nil {
					mode = *n.StringMode
				}
				out = codec.EncodeVarInt(out, int32(mode))
			}
		}
		if n.SuggestionsType != "" {
			out = codec.EncodeString(out, n.SuggestionsType)
		}
	}
	out = codec.EncodeVarInt(out, 0)
	return out
}

// encodeIntegerBoundsFlags returns the brigadier:integer/float properties
// byte (bit0=has_min, bit1=has_max). A nil bounds means neither bit is set,
// but the byte itself is still mandatory on the wire.
func encodeIntegerBoundsFlags(b *IntegerBounds) byte {
	if b == nil {
		return 0
	}
	var f byte
	if b.HasMin {
		f |= 0x01
	}
	if b.HasMax {
		f |= 0x02
	}
	return f
}

// BuiltinCommandGraph is the "place <value>" graph advertised by
// Play-mode initialization: root -> literal "place" -> argument "value"
// (brigadier:integer, executable).
func BuiltinCommandGraph() []byte {
	nodes := []CommandNode{
		{Type: NodeTypeRoot, Children: []int32{1}},
		{Type: NodeTypeLiteral, Name: "place", Children: []int32{2}},
		{Type: NodeTypeArgument, Name: "value", Executable: true, ParserID: ParserInteger, HasParser: true},
	}
	return EncodeCommandGraph(nodes)
}
