// Package fov computes what an observer sees with recursive symmetric
// shadowcasting.
//
// A cast splits the plane around the origin into four quarters and sweeps
// each outward row by row, tracking the visible sector with exact rational
// slopes. Every visible tile is passed to a Renderer exactly once per pass,
// and recorded in a visibility bitmap centered on the pass origin.
//
// Portals are handled by a separate pass rooted at the portal destination,
// limited to the sector the portal tile subtends from the observer.
package fov

import (
	"math"

	"github.com/lixenwraith/tilesight/arena"
	"github.com/lixenwraith/tilesight/bitmap"
	"github.com/lixenwraith/tilesight/vmath"
	"github.com/lixenwraith/tilesight/world"
)

// Renderer receives the tiles a pass decides are visible.
type Renderer interface {
	RenderTile(x, y int, t world.Tile)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(x, y int, t world.Tile)

// RenderTile calls f.
func (f RendererFunc) RenderTile(x, y int, t world.Tile) { f(x, y, t) }

// Opacity decides which terrain stops sight.
type Opacity func(t world.Terra) bool

// BlocksMove treats impassable terrain as opaque.
func BlocksMove(t world.Terra) bool { return t.BlocksMove }

// BlocksView treats view-blocking terrain as opaque.
func BlocksView(t world.Terra) bool { return t.BlocksView }

// Options tunes a cast.
type Options struct {
	// ViewDistance is the deepest row scanned; rows deeper than it are
	// never visited.
	ViewDistance float64
	Opacity      Opacity
	// MobSearchRadius is the radius, in mob hash cells, searched for mobiles
	// to draw.
	MobSearchRadius int
	Portals         bool
}

// DefaultOptions returns the game's FOV settings.
func DefaultOptions() Options {
	return Options{
		ViewDistance:    12.5,
		Opacity:         BlocksMove,
		MobSearchRadius: 1,
		Portals:         true,
	}
}

// Caster runs shadowcasting passes over a map. It is not safe for concurrent
// use and must not outlive the scratch arena it was created from.
type Caster struct {
	m       *world.Map
	opts    Options
	reach   int
	visible *bitmap.Bitmap

	rootX, rootY int
	out          Renderer
	rendered     int
}

// New creates a caster whose visibility bitmap is allocated from scratch.
func New(m *world.Map, opts Options, scratch *arena.Arena) *Caster {
	if opts.Opacity == nil {
		opts.Opacity = BlocksMove
	}
	reach := 0
	if opts.ViewDistance > 0 {
		reach = int(math.Floor(opts.ViewDistance))
	}
	side := 2*reach + 1
	return &Caster{
		m:       m,
		opts:    opts,
		reach:   reach,
		visible: bitmap.New(side, side, scratch),
	}
}

// Reach returns the largest Chebyshev distance a pass can reveal.
func (c *Caster) Reach() int { return c.reach }

// Rendered returns the number of tiles revealed by the last pass.
func (c *Caster) Rendered() int { return c.rendered }

// Root returns the origin of the last pass.
func (c *Caster) Root() (x, y int) { return c.rootX, c.rootY }

// Visible reports whether (x, y) was revealed by the last pass.
func (c *Caster) Visible(x, y int) bool {
	bx, by := c.local(x, y)
	return c.visible.InBounds(bx, by) && c.visible.Get(bx, by)
}

// Mask returns the visibility bitmap of the last pass; cell (Reach, Reach)
// is the pass origin.
func (c *Caster) Mask() *bitmap.Bitmap { return c.visible }

func (c *Caster) local(x, y int) (int, int) {
	return x - c.rootX + c.reach, y - c.rootY + c.reach
}

func (c *Caster) begin(x, y int, r Renderer) {
	c.rootX, c.rootY = x, y
	c.out = r
	c.rendered = 0
	c.visible.Fill(false)
}

func (c *Caster) reveal(x, y int, t world.Tile) {
	bx, by := c.local(x, y)
	if !c.visible.InBounds(bx, by) || c.visible.Get(bx, by) {
		return
	}
	c.visible.Put(bx, by, true)
	c.out.RenderTile(x, y, t)
	c.rendered++
}

// Cast renders everything visible from (x, y): the origin tile first, then
// each quarter in Cardinals order.
func (c *Caster) Cast(x, y int, r Renderer) {
	c.begin(x, y, r)
	c.reveal(x, y, c.m.TerraGet(x, y).Tile)

	for _, card := range Cardinals {
		c.scan(row{
			cardinal: card,
			depth:    1,
			start:    vmath.Fraction{Num: -1, Den: 1},
			end:      vmath.Fraction{Num: 1, Den: 1},
		})
	}
}
