package fov

import "github.com/lixenwraith/tilesight/world"

// CastPortal renders what the observer at (camX, camY) sees through the
// portal (srcX, srcY) -> (dstX, dstY). The pass is rooted at the destination:
// the visibility bitmap is cleared and re-centered there, and only the sector
// that the source tile subtends from the observer is swept. Tiles are passed
// to r in destination coordinates.
func (c *Caster) CastPortal(camX, camY, srcX, srcY, dstX, dstY int, r Renderer) {
	c.begin(dstX, dstY, r)
	c.reveal(dstX, dstY, c.m.TerraGet(dstX, dstY).Tile)

	if srcX == camX && srcY == camY {
		return
	}
	second := false
	for {
		card, depth, col, more := FromWorld(srcX, srcY, camX, camY, second)
		c.scan(row{
			cardinal: card,
			depth:    1,
			start:    slope(depth, col),
			end:      slope(depth, col+1),
		})
		if !more {
			return
		}
		second = true
	}
}

// shifted renders tiles displaced by (-dx, -dy), projecting the far side of
// a portal onto its source.
type shifted struct {
	r      Renderer
	dx, dy int
}

func (s shifted) RenderTile(x, y int, t world.Tile) {
	s.r.RenderTile(x-s.dx, y-s.dy, t)
}
