package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/StoreStation/blockserver/internal/worldsrc"
)

func TestComputeChunkDeltaRequestsEverythingWithinRadiusSortedByDistance(t *testing.T) {
	delta := computeChunkDelta(0, 0, 2, map[worldsrc.Pos]struct{}{})

	wantCount := (2*2 + 1) * (2*2 + 1)
	assert.Len(t, delta.toRequest, wantCount)
	assert.Empty(t, delta.evicted)

	assert.Equal(t, worldsrc.Pos{X: 0, Z: 0}, delta.toRequest[0])
	for i := 1; i < len(delta.toRequest); i++ {
		assert.LessOrEqual(t, chebyshev(delta.toRequest[i-1].X, delta.toRequest[i-1].Z),
			chebyshev(delta.toRequest[i].X, delta.toRequest[i].Z))
	}
}

func TestComputeChunkDeltaSkipsAlreadyLoaded(t *testing.T) {
	loaded := map[worldsrc.Pos]struct{}{{X: 0, Z: 0}: {}, {X: 1, Z: 0}: {}}
	delta := computeChunkDelta(0, 0, 1, loaded)

	for _, pos := range delta.toRequest {
		assert.NotEqual(t, worldsrc.Pos{X: 0, Z: 0}, pos)
		assert.NotEqual(t, worldsrc.Pos{X: 1, Z: 0}, pos)
	}
	assert.Len(t, delta.toRequest, (3*3)-2)
}

func TestComputeChunkDeltaEvictsBeyondViewDistancePlusMargin(t *testing.T) {
	viewDistance := int32(4)
	loaded := map[worldsrc.Pos]struct{}{
		{X: 0, Z: 0}:                                      {},
		{X: viewDistance + EvictionMargin, Z: 0}:           {},
		{X: viewDistance + EvictionMargin + 1, Z: 0}:       {},
	}
	delta := computeChunkDelta(0, 0, viewDistance, loaded)

	assert.Contains(t, delta.evicted, worldsrc.Pos{X: viewDistance + EvictionMargin + 1, Z: 0})
	assert.NotContains(t, delta.evicted, worldsrc.Pos{X: 0, Z: 0})
	assert.NotContains(t, delta.evicted, worldsrc.Pos{X: viewDistance + EvictionMargin, Z: 0})
}

func TestChebyshevDistance(t *testing.T) {
	assert.Equal(t, int32(0), chebyshev(0, 0))
	assert.Equal(t, int32(3), chebyshev(-3, 2))
	assert.Equal(t, int32(5), chebyshev(4, -5))
}

func TestClampViewDistance(t *testing.T) {
	assert.Equal(t, int32(MinViewDistance), clampViewDistance(-1))
	assert.Equal(t, int32(MinViewDistance), clampViewDistance(0))
	assert.Equal(t, int32(8), clampViewDistance(8))
	assert.Equal(t, int32(MaxViewDistance), clampViewDistance(100))
}
