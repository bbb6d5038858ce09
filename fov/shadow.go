package fov

import (
	"github.com/lixenwraith/tilesight/vmath"
)

// Cardinal names one of the four quarter-planes a cast is split into.
type Cardinal uint8

const (
	North Cardinal = iota
	East
	South
	West
)

// Cardinals lists the quarters in cast order.
var Cardinals = [4]Cardinal{North, East, South, West}

func (c Cardinal) String() string {
	switch c {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "invalid"
}

// ToWorld maps a shadow coordinate (depth along the cardinal axis, column
// across it) relative to the origin (ox, oy) to a world tile.
func ToWorld(c Cardinal, depth, col, ox, oy int) (x, y int) {
	switch c {
	case North:
		return ox + col, oy - depth
	case South:
		return ox + col, oy + depth
	case East:
		return ox + depth, oy + col
	default:
		return ox - depth, oy + col
	}
}

// FromWorld is the inverse of ToWorld. A tile on a diagonal belongs to two
// quarters: called with second false it returns the east/west solution and
// reports more when the north/south one exists, which a second call with
// second true returns.
func FromWorld(x, y, ox, oy int, second bool) (c Cardinal, depth, col int, more bool) {
	dx, dy := x-ox, y-oy
	diagonal := vmath.Abs(dx) == vmath.Abs(dy)

	if second != (vmath.Abs(dx) >= vmath.Abs(dy)) {
		col, depth = dy, vmath.Abs(dx)
		c = West
		if dx > 0 {
			c = East
		}
	} else {
		col, depth = dx, vmath.Abs(dy)
		c = North
		if dy > 0 {
			c = South
		}
	}
	return c, depth, col, diagonal && !second
}

// slope is the slope of the left edge of column col at the given depth.
func slope(depth, col int) vmath.Fraction {
	if depth == 0 {
		return vmath.Fraction{Num: 0, Den: 1}
	}
	return vmath.Fraction{Num: int64(2*col - 1), Den: int64(2 * depth)}
}

// row is one frame of the recursive scan.
type row struct {
	cardinal Cardinal
	depth    int
	start    vmath.Fraction
	end      vmath.Fraction
}

func (r row) next() row {
	r.depth++
	return r
}

// columns returns the first and last column a row covers.
func (r row) columns() (lo, hi int) {
	d := int64(r.depth)
	return int(r.start.Scale(d).RoundTiesUp()), int(r.end.Scale(d).RoundTiesDown())
}

// symmetric reports whether the center of col lies inside the row's sector.
func (r row) symmetric(col int) bool {
	d := int64(r.depth)
	return r.start.Scale(d).CmpInt(int64(col)) <= 0 &&
		r.end.Scale(d).CmpInt(int64(col)) >= 0
}

type prevTile uint8

const (
	prevNone prevTile = iota
	prevWall
	prevFloor
)

// scan walks one row, revealing tiles and recursing past it. A wall splits
// the sector: the floor run before it continues one row deeper with a
// narrowed end slope, the run after it restarts with a narrowed start slope.
func (c *Caster) scan(r row) {
	if float64(r.depth) > c.opts.ViewDistance {
		return
	}
	if r.end.LessEq(r.start) {
		return
	}

	lo, hi := r.columns()
	prev := prevNone
	for col := lo; col <= hi; col++ {
		x, y := ToWorld(r.cardinal, r.depth, col, c.rootX, c.rootY)
		t := c.m.TerraGet(x, y)
		wall := c.opts.Opacity(t)

		if wall || r.symmetric(col) {
			c.reveal(x, y, t.Tile)
		}
		if prev == prevWall && !wall {
			r.start = slope(r.depth, col)
		}
		if prev == prevFloor && wall {
			nr := r.next()
			nr.end = slope(r.depth, col)
			c.scan(nr)
		}

		if wall {
			prev = prevWall
		} else {
			prev = prevFloor
		}
	}

	if prev == prevFloor {
		c.scan(r.next())
	}
}
