package worker

import (
	"sort"

	"github.com/StoreStation/blockserver/internal/core"
	"github.com/StoreStation/blockserver/internal/worldsrc"
)

type chunkDelta struct {
	toRequest []worldsrc.Pos
	evicted   []worldsrc.Pos
}

// computeChunkDelta computes which chunks should newly be requested and
// which loaded ones have fallen out of range, as a pure function separated
// from I/O so it can be tested without a socket.
func computeChunkDelta(px, pz, viewDistance int32, loaded map[worldsrc.Pos]struct{}) chunkDelta {
	type candidate struct {
		pos  worldsrc.Pos
		dist int32
	}
	var candidates []candidate
	for dx := -viewDistance; dx <= viewDistance; dx++ {
		for dz := -viewDistance; dz <= viewDistance; dz++ {
			pos := worldsrc.Pos{X: px + dx, Z: pz + dz}
			if _, ok := loaded[pos]; ok {
				continue
			}
			candidates = append(candidates, candidate{pos: pos, dist: chebyshev(dx, dz)})
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })

	var delta chunkDelta
	for _, c := range candidates {
		delta.toRequest = append(delta.toRequest, c.pos)
	}

	evictDist := viewDistance + EvictionMargin
	for pos := range loaded {
		if chebyshev(pos.X-px, pos.Z-pz) > evictDist {
			delta.evicted = append(delta.evicted, pos)
		}
	}
	return delta
}

func chebyshev(dx, dz int32) int32 {
	if dx < 0 {
		dx = -dx
	}
	if dz < 0 {
		dz = -dz
	}
	if dx > dz {
		return dx
	}
	return dz
}

// runChunkLoading is the play-phase periodic duty that requests newly
// visible chunks and evicts far ones.
func (w *Worker) runChunkLoading() {
	px, pz := chunkCoords(w.player.X, w.player.Z)
	delta := computeChunkDelta(px, pz, w.player.ViewDistance, w.player.loadedChunks)

	for _, pos := range delta.toRequest {
		w.player.loadedChunks[pos] = struct{}{}
		w.sendRequest(core.RequestChunk{X: pos.X, Z: pos.Z})
	}
	for _, pos := range delta.evicted {
		delete(w.player.loadedChunks, pos)
	}
}
