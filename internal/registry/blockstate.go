package registry

import "sort"

// BlockState is one entry of a block identifier's state list: its property
// map, its numeric id, and whether it is the block's default state.
type BlockState struct {
	Properties map[string]string
	ID         int32
	Default    bool
}

// blockEntry holds every state of one block identifier.
type blockEntry struct {
	States       []BlockState
	DefaultState int32
}

// BlockStateTable maps (block identifier, property map) to a numeric state
// id. A lookup miss returns 0 ("minecraft:air").
type BlockStateTable struct {
	blocks     map[string]*blockEntry
	maxStateID int32
}

// NewBlockStateTable returns an empty table; use AddBlock to populate it.
func NewBlockStateTable() *BlockStateTable {
	return &BlockStateTable{blocks: make(map[string]*blockEntry)}
}

// AddBlock registers every state of one block identifier. Exactly one
// state must have Default set; that state's id becomes DefaultStateID's
// result for this block.
func (t *BlockStateTable) AddBlock(blockID string, states []BlockState) {
	entry := &blockEntry{States: states}
	for _, s := range states {
		if s.Default {
			entry.DefaultState = s.ID
		}
		if s.ID > t.maxStateID {
			t.maxStateID = s.ID
		}
	}
	t.blocks[blockID] = entry
}

// MaxStateID returns the highest numeric state id registered across every
// block, or 0 if the table is empty. Used to size the chunk section
// encoder's direct-palette bit width.
func (t *BlockStateTable) MaxStateID() int32 {
	return t.maxStateID
}

// DefaultStateID returns the default state id for blockID, or 0 ("air")
// if the block identifier is unknown.
func (t *BlockStateTable) DefaultStateID(blockID string) int32 {
	e, ok := t.blocks[blockID]
	if !ok {
		return 0
	}
	return e.DefaultState
}

// StateID resolves a block identifier plus an exact property map to a
// numeric state id. All of the block's declared properties must match
// exactly; a partial or empty map that doesn't uniquely match a state
// falls back to the default state. Unknown block identifiers return 0.
func (t *BlockStateTable) StateID(blockID string, properties map[string]string) int32 {
	e, ok := t.blocks[blockID]
	if !ok {
		return 0
	}
	if len(properties) == 0 {
		return e.DefaultState
	}
	for _, s := range e.States {
		if propsEqual(s.Properties, properties) {
			return s.ID
		}
	}
	return e.DefaultState
}

func propsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// BlockIDs returns every registered block identifier in sorted order.
func (t *BlockStateTable) BlockIDs() []string {
	ids := make([]string, 0, len(t.blocks))
	for id := range t.blocks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
