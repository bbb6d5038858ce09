// Package world stores the tile map and the entities placed on it.
//
// All world data lives in a single arena. Chunks, portals and mobiles are
// records in spatial pools keyed by their position, so lookups by coordinate
// walk a single hash bucket and never allocate.
package world

import (
	"fmt"

	"github.com/lixenwraith/tilesight/arena"
	"github.com/lixenwraith/tilesight/spatial"
	"github.com/lixenwraith/tilesight/vmath"
)

// Options sizes the spatial pools of a Map. Every value must be a power of
// two.
type Options struct {
	ChunkBuckets  int
	PortalBuckets int
	PortalCell    int
	MobBuckets    int
	MobCell       int
}

// DefaultOptions returns the pool sizing used by the game.
func DefaultOptions() Options {
	return Options{
		ChunkBuckets:  4,
		PortalBuckets: 4,
		PortalCell:    1,
		MobBuckets:    32,
		MobCell:       16,
	}
}

// Map is the world: terrain chunks, portals and mobiles sharing one arena.
type Map struct {
	arena   *arena.Arena
	chunks  *spatial.Pool[Chunk]
	portals *spatial.Pool[Portal]
	mobs    *spatial.Pool[Mobile]
}

// New creates an empty map allocating from a. Panics when an option is not a
// power of two.
func New(a *arena.Arena, opts Options) *Map {
	for _, v := range []int{opts.ChunkBuckets, opts.PortalBuckets, opts.PortalCell, opts.MobBuckets, opts.MobCell} {
		if !vmath.IsPow2(v) {
			panic(fmt.Errorf("world: pool parameter %d is not a power of two", v))
		}
	}
	return &Map{
		arena:   a,
		chunks:  spatial.NewPool[Chunk]("chunks", opts.ChunkBuckets, 1, a),
		portals: spatial.NewPool[Portal]("portals", opts.PortalBuckets, opts.PortalCell, a),
		mobs:    spatial.NewPool[Mobile]("mobs", opts.MobBuckets, opts.MobCell, a),
	}
}

// Arena returns the arena backing the map.
func (m *Map) Arena() *arena.Arena { return m.arena }

// Portals exposes the portal pool for spatial searches.
func (m *Map) Portals() *spatial.Pool[Portal] { return m.portals }

// Mobs exposes the mobile pool for spatial searches.
func (m *Map) Mobs() *spatial.Pool[Mobile] { return m.mobs }

// ChunkCount returns the number of materialized chunks.
func (m *Map) ChunkCount() int { return m.chunks.Len() }
