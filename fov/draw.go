package fov

import (
	"github.com/lixenwraith/tilesight/arena"
	"github.com/lixenwraith/tilesight/logger"
	"github.com/lixenwraith/tilesight/spatial"
	"github.com/lixenwraith/tilesight/world"
	"github.com/sirupsen/logrus"
)

// Viewport is a renderer with a fixed on-screen extent centered on the
// camera. Shade draws terrain that is in view of the screen but not of the
// observer.
type Viewport interface {
	Renderer
	Size() (w, h int)
	Shade(x, y int, t world.Tile)
}

// Stats summarizes one frame.
type Stats struct {
	Tiles   int
	Mobs    int
	Portals int
}

// DrawWorld composes a frame around the camera: the viewport is shaded from
// terrain, the visible set is cast over it, visible mobiles are drawn on top,
// then each visible portal is looked through. Every transient allocation
// comes from scratch; the caller resets it between frames.
func DrawWorld(m *world.Map, camX, camY int, vp Viewport, opts Options, scratch *arena.Arena) Stats {
	w, h := vp.Size()
	x0, y0 := camX-w/2, camY-h/2
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			vp.Shade(x, y, m.TerraGet(x, y).Tile)
		}
	}

	c := New(m, opts, scratch)
	c.Cast(camX, camY, vp)

	var st Stats
	st.Tiles = c.rendered
	st.Mobs = c.drawMobs(vp, scratch)

	if opts.Portals {
		for _, p := range c.visiblePortals(scratch) {
			srcX, srcY := m.PortalSrc(p)
			dstX, dstY := m.Portals().Get(p).Dst()
			through := shifted{r: vp, dx: dstX - srcX, dy: dstY - srcY}

			c.CastPortal(camX, camY, srcX, srcY, dstX, dstY, through)
			st.Tiles += c.rendered
			st.Mobs += c.drawMobs(through, scratch)
			st.Portals++
		}
	}

	logger.Component("fov").WithFields(logrus.Fields{
		"camera":  [2]int{camX, camY},
		"tiles":   st.Tiles,
		"mobs":    st.Mobs,
		"portals": st.Portals,
	}).Debug("frame drawn")
	return st
}

// drawMobs renders the mobiles around the current pass root that the pass
// revealed.
func (c *Caster) drawMobs(r Renderer, scratch *arena.Arena) int {
	mobs := c.m.Mobs()
	seen := func(_ spatial.Handle, e *spatial.Entry) bool {
		x, y := e.Pos()
		return c.Visible(x, y)
	}
	n := 0
	for h := range mobs.Search(c.rootX, c.rootY, c.opts.MobSearchRadius, seen, scratch).All() {
		x, y := mobs.Entry(h).Pos()
		r.RenderTile(x, y, mobs.Get(h).Tile)
		n++
	}
	return n
}

// visiblePortals collects the portals revealed by the current pass, except
// one under the observer.
func (c *Caster) visiblePortals(scratch *arena.Arena) []spatial.Handle {
	portals := c.m.Portals()
	if portals.Len() == 0 {
		return nil
	}
	radius := c.reach/portals.Hash().CellLen() + 1
	seen := func(_ spatial.Handle, e *spatial.Entry) bool {
		x, y := e.Pos()
		return (x != c.rootX || y != c.rootY) && c.Visible(x, y)
	}

	out := arena.MakeSlice[spatial.Handle](scratch, portals.Len())[:0]
	for h := range portals.Search(c.rootX, c.rootY, radius, seen, scratch).All() {
		out = append(out, h)
	}
	return out
}
