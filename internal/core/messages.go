package core

import (
	"github.com/StoreStation/blockserver/internal/registry"
	"github.com/StoreStation/blockserver/internal/worldsrc"
)

// Request is a message a connection worker sends to the core.
type Request interface{ isRequest() }

// Response is a message the core sends back to a connection worker.
type Response interface{ isResponse() }

// RequestRegistryInfo asks the core to emit RegistryInfo for every
// registry, followed by RegistryInfoFinished.
type RequestRegistryInfo struct{}

func (RequestRegistryInfo) isRequest() {}

// RequestTagInfo asks the core for the full tag set.
type RequestTagInfo struct{}

func (RequestTagInfo) isRequest() {}

// RequestChunk asks the core to load or generate the chunk at (X, Z).
type RequestChunk struct {
	X, Z int32
}

func (RequestChunk) isRequest() {}

// ChatMessage flows both ways: a worker sends one to report a chat line
// from its player, and receives one back (fanned out to every worker,
// including the sender) to display.
type ChatMessage struct {
	Player    string
	Text      string
	Timestamp int64
	Salt      int64
}

func (ChatMessage) isRequest()  {}
func (ChatMessage) isResponse() {}

// RegistryInfo carries one registry's ordered entry list. The core sends
// one per registry, in RegistryOrder.
type RegistryInfo struct {
	ID      string
	Entries []registry.Entry
}

func (RegistryInfo) isResponse() {}

// RegistryInfoFinished marks the end of the RegistryInfo burst.
type RegistryInfoFinished struct{}

func (RegistryInfoFinished) isResponse() {}

// TagInfo carries every tag group known to the server.
type TagInfo struct {
	Groups []registry.TagGroup
}

func (TagInfo) isResponse() {}

// ChunkData answers a RequestChunk. Chunk is nil if the world source
// failed to produce one; the worker is expected to skip that chunk rather
// than treat it as fatal.
type ChunkData struct {
	X, Z  int32
	Chunk *worldsrc.Chunk
}

func (ChunkData) isResponse() {}
