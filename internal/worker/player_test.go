package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextTeleportIDIncrementsAndTracksOutstanding(t *testing.T) {
	p := newPlayer()

	first := p.nextTeleportID()
	assert.Equal(t, int32(0), first)
	assert.NotNil(t, p.outstandingTeleport)

	second := p.nextTeleportID()
	assert.Equal(t, int32(1), second)
}

func TestConfirmTeleportClearsOnlyMatchingID(t *testing.T) {
	p := newPlayer()
	id := p.nextTeleportID()

	p.confirmTeleport(id + 1)
	assert.NotNil(t, p.outstandingTeleport)

	p.confirmTeleport(id)
	assert.Nil(t, p.outstandingTeleport)
}

func TestChunkCoordsFloorsNegativeCoordinates(t *testing.T) {
	x, z := chunkCoords(-1, -17)
	assert.Equal(t, int32(-1), x)
	assert.Equal(t, int32(-2), z)
}
