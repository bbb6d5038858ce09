package dungeon

import (
	"fmt"

	"github.com/lixenwraith/tilesight/arena"
	"github.com/lixenwraith/tilesight/logger"
	"github.com/lixenwraith/tilesight/spatial"
	"github.com/lixenwraith/tilesight/world"
	"github.com/sirupsen/logrus"
)

// Build generates a layout and writes it into m: walls become world.Wall,
// passages world.Floor.
func Build(m *world.Map, cfg Config, scratch *arena.Arena) *Layout {
	l := Generate(cfg, scratch)
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			wx, wy := l.World(Point{x, y})
			if l.Wall(x, y) {
				m.TerraPut(wx, wy, world.Wall)
			} else {
				m.TerraPut(wx, wy, world.Floor)
			}
		}
	}

	logger.Component("dungeon").WithFields(logrus.Fields{
		"width":  l.Width,
		"height": l.Height,
		"path":   len(l.Path),
		"chunks": m.ChunkCount(),
	}).Info("dungeon built")
	return l
}

// Spawn is a mobile placed by Populate.
type Spawn struct {
	Name  string
	At    Point
	Glyph rune
	Atlas uint8
}

// Link is a one-way portal placed by Populate.
type Link struct {
	Src, Dst Point
}

// Cast lists the mobiles and portals of a level, in layout coordinates.
type Cast struct {
	Mobiles []Spawn
	Portals []Link
}

// DefaultCast is the starting level: a player, a goblin and a pair of
// portals linking two corners of the first chunk.
func DefaultCast() Cast {
	return Cast{
		Mobiles: []Spawn{
			{Name: "player", At: Point{3, 3}, Glyph: 417, Atlas: 2},
			{Name: "goblin", At: Point{6, 7}, Glyph: 907, Atlas: 2},
		},
		Portals: []Link{
			{Src: Point{0, 0}, Dst: Point{16, 16}},
			{Src: Point{16, 16}, Dst: Point{0, 0}},
		},
	}
}

// Populate places c on the layout. The 3x3 block around every placement is
// cleared so each one connects to the maze. Returned handles follow
// c.Mobiles.
func Populate(m *world.Map, l *Layout, c Cast) ([]spatial.Handle, error) {
	for _, s := range c.Mobiles {
		l.clear(m, s.At)
	}
	for _, p := range c.Portals {
		l.clear(m, p.Src)
		l.clear(m, p.Dst)
	}

	handles := make([]spatial.Handle, 0, len(c.Mobiles))
	for _, s := range c.Mobiles {
		x, y := l.World(s.At)
		h, mob := m.CreateMobile(x, y)
		mob.SetName(s.Name)
		mob.Tile.Glyph = s.Glyph
		mob.Tile.Atlas = s.Atlas
		handles = append(handles, h)
	}

	for _, p := range c.Portals {
		sx, sy := l.World(p.Src)
		dx, dy := l.World(p.Dst)
		if _, err := m.CreatePortal(sx, sy, dx, dy); err != nil {
			return handles, fmt.Errorf("populate: %w", err)
		}
	}
	return handles, nil
}

// clear opens the layout cells around p, staying inside the layout
func (l *Layout) clear(m *world.Map, p Point) {
	for y := p.Y - 1; y <= p.Y+1; y++ {
		for x := p.X - 1; x <= p.X+1; x++ {
			if !l.InBounds(x, y) {
				continue
			}
			l.open(x, y)
			wx, wy := l.World(Point{x, y})
			m.TerraPut(wx, wy, world.Floor)
		}
	}
}
