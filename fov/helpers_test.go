package fov

import (
	"github.com/lixenwraith/tilesight/arena"
	"github.com/lixenwraith/tilesight/world"
)

type pos struct{ x, y int }

// recorder counts render calls per tile and keeps the last tile drawn there.
type recorder struct {
	calls map[pos]int
	tiles map[pos]world.Tile
	order []pos
}

func newRecorder() *recorder {
	return &recorder{calls: map[pos]int{}, tiles: map[pos]world.Tile{}}
}

func (r *recorder) RenderTile(x, y int, t world.Tile) {
	p := pos{x, y}
	r.calls[p]++
	r.tiles[p] = t
	r.order = append(r.order, p)
}

func (r *recorder) seen(x, y int) bool { return r.calls[pos{x, y}] > 0 }

// viewport is a recorder with a screen extent.
type viewport struct {
	*recorder
	w, h   int
	shaded map[pos]world.Tile
}

func newViewport(w, h int) *viewport {
	return &viewport{recorder: newRecorder(), w: w, h: h, shaded: map[pos]world.Tile{}}
}

func (v *viewport) Size() (int, int) { return v.w, v.h }

func (v *viewport) Shade(x, y int, t world.Tile) { v.shaded[pos{x, y}] = t }

func newTestWorld() (*world.Map, *arena.Arena) {
	return world.New(arena.NewArena(arena.MB), world.DefaultOptions()), arena.NewArena(64 * arena.KB)
}

func chebyshev(ax, ay, bx, by int) int {
	dx, dy := ax-bx, ay-by
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}
