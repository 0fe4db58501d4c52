package worker

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/StoreStation/blockserver/internal/worldsrc"
)

// MinViewDistance and MaxViewDistance bound the clamp applied to a
// client's requested view distance.
const (
	MinViewDistance = 2
	MaxViewDistance = 12

	// EvictionMargin is added to view distance to get the Chebyshev
	// distance beyond which a loaded chunk is evicted.
	EvictionMargin = 3
)

// Player is connection-local state: nothing here is shared with the
// server core or any other worker.
type Player struct {
	EntityID int32
	Name     string
	UUID     uuid.UUID

	X, Y, Z    float64
	Yaw, Pitch float32
	OnGround   bool

	ViewDistance int32

	teleportCounter     int32
	outstandingTeleport *int32

	loadedChunks map[worldsrc.Pos]struct{}
}

func newPlayer() Player {
	return Player{
		EntityID:     rand.Int31(),
		ViewDistance: MaxViewDistance,
		loadedChunks: make(map[worldsrc.Pos]struct{}),
	}
}

// clampViewDistance narrows a client-reported view distance to [2, 12].
func clampViewDistance(v int8) int32 {
	vd := int32(v)
	if vd < MinViewDistance {
		return MinViewDistance
	}
	if vd > MaxViewDistance {
		return MaxViewDistance
	}
	return vd
}

// chunkCoords converts a world position to chunk coordinates, with the
// floor correction negative coordinates need (Go's integer division
// truncates toward zero).
func chunkCoords(x, z float64) (int32, int32) {
	return int32(math.Floor(x / 16)), int32(math.Floor(z / 16))
}

// nextTeleportID returns the next monotonically increasing teleport-confirm
// counter value and records it as outstanding.
func (p *Player) nextTeleportID() int32 {
	id := p.teleportCounter
	p.teleportCounter++
	p.outstandingTeleport = &id
	return id
}

// confirmTeleport clears the outstanding teleport id if it matches.
func (p *Player) confirmTeleport(id int32) {
	if p.outstandingTeleport != nil && *p.outstandingTeleport == id {
		p.outstandingTeleport = nil
	}
}
