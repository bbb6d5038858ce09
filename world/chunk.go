package world

import (
	"fmt"

	"github.com/lixenwraith/tilesight/arena"
	"github.com/lixenwraith/tilesight/bitmap"
	"github.com/lixenwraith/tilesight/logger"
	"github.com/lixenwraith/tilesight/vmath"
)

const (
	// ChunkLen is the side of a square chunk in tiles.
	ChunkLen = 16
	// ChunkArea is the number of tiles in a chunk.
	ChunkArea = ChunkLen * ChunkLen
)

// Chunk is a ChunkLen x ChunkLen block of terrain. It is created on the first
// write to any of its tiles and lives as long as the map arena.
type Chunk struct {
	tiles      arena.Sized[Tile]
	blocksView *bitmap.Bitmap
	blocksMove *bitmap.Bitmap
}

// Tiles returns the row-major tile array.
func (c *Chunk) Tiles() []Tile { return c.tiles.Slice() }

// Fill paints every tile of the chunk with t.
func (c *Chunk) Fill(t Tile) {
	tiles := c.tiles.Slice()
	for i := range tiles {
		tiles[i] = t
	}
}

// ChunkCoord returns the chunk containing (x, y) and the offset inside it.
func ChunkCoord(x, y int) (cx, cy, lx, ly int) {
	return vmath.FloorDiv(x, ChunkLen), vmath.FloorDiv(y, ChunkLen),
		vmath.FloorMod(x, ChunkLen), vmath.FloorMod(y, ChunkLen)
}

// ChunkInsert materializes the chunk at chunk coordinate (cx, cy), painted
// with AirTile and passable. It fails with ErrChunkExists when the chunk is
// already present.
func (m *Map) ChunkInsert(cx, cy int) (*Chunk, error) {
	if _, _, ok := m.chunks.At(cx, cy); ok {
		logger.Component("world").WithField("chunk_x", cx).WithField("chunk_y", cy).
			Warn("chunk already exists here")
		return nil, fmt.Errorf("%w: chunk (%d, %d)", ErrChunkExists, cx, cy)
	}

	_, c := m.chunks.Alloc(cx, cy)
	tiles, err := arena.MakeSized[Tile](m.arena, ChunkArea)
	if err != nil {
		return nil, err
	}
	c.tiles = tiles
	c.blocksView = bitmap.New(ChunkLen, ChunkLen, m.arena)
	c.blocksMove = bitmap.New(ChunkLen, ChunkLen, m.arena)
	c.Fill(AirTile)

	logger.Component("world").WithField("chunk_x", cx).WithField("chunk_y", cy).
		Debug("chunk created")
	return c, nil
}

// ChunkAt returns the chunk at chunk coordinate (cx, cy), if materialized.
func (m *Map) ChunkAt(cx, cy int) (*Chunk, bool) {
	_, c, ok := m.chunks.At(cx, cy)
	return c, ok
}

// TerraGet returns the terrain at (x, y). A coordinate inside a chunk that
// was never written reads as Void. TerraGet never allocates.
func (m *Map) TerraGet(x, y int) Terra {
	cx, cy, lx, ly := ChunkCoord(x, y)
	_, c, ok := m.chunks.At(cx, cy)
	if !ok {
		return Void
	}
	return Terra{
		Tile:       c.tiles.Slice()[ly*ChunkLen+lx],
		BlocksView: c.blocksView.Get(lx, ly),
		BlocksMove: c.blocksMove.Get(lx, ly),
	}
}

// TerraPut writes the terrain at (x, y), creating the owning chunk on first
// use.
func (m *Map) TerraPut(x, y int, t Terra) {
	cx, cy, lx, ly := ChunkCoord(x, y)
	_, c, ok := m.chunks.At(cx, cy)
	if !ok {
		var err error
		if c, err = m.ChunkInsert(cx, cy); err != nil {
			logger.Component("world").WithError(err).Error("chunk creation failed")
			panic(err)
		}
	}
	c.tiles.Slice()[ly*ChunkLen+lx] = t.Tile
	c.blocksView.Put(lx, ly, t.BlocksView)
	c.blocksMove.Put(lx, ly, t.BlocksMove)
}

// BlocksMove reports whether (x, y) stops movement.
func (m *Map) BlocksMove(x, y int) bool { return m.TerraGet(x, y).BlocksMove }

// BlocksView reports whether (x, y) stops sight.
func (m *Map) BlocksView(x, y int) bool { return m.TerraGet(x, y).BlocksView }
