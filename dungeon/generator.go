// Package dungeon carves procedural levels into a world map.
package dungeon

import (
	"time"

	"github.com/lixenwraith/tilesight/arena"
	"github.com/lixenwraith/tilesight/bitmap"
	"github.com/lixenwraith/tilesight/vmath"
)

type Point struct {
	X, Y int
}

type Config struct {
	Width, Height int

	// Braiding: 0.0 (perfect maze, a tree) to 1.0 (no dead ends).
	// Higher values add cycles; plazas and pillars are never created.
	Braiding float64

	Seed int64 // 0 = time based

	// Origin is the world position of the layout's top-left cell
	Origin Point
}

// Layout is a carved grid. Cells are addressed in layout space, (0, 0) being
// the top-left corner. The grid lives in the arena passed to Generate.
type Layout struct {
	Origin        Point
	Width, Height int
	Start, End    Point
	Path          []Point
	walls         *bitmap.Bitmap
}

// Wall reports whether a layout cell is solid. Cells outside the layout are
// solid.
func (l *Layout) Wall(x, y int) bool { return l.walls.Get(x, y) }

// InBounds reports whether (x, y) is a layout cell.
func (l *Layout) InBounds(x, y int) bool { return l.walls.InBounds(x, y) }

// World converts a layout cell to world coordinates.
func (l *Layout) World(p Point) (x, y int) { return l.Origin.X + p.X, l.Origin.Y + p.Y }

var (
	jumps = [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	steps = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
)

// Generate carves a maze with a recursive backtracker, then braids dead ends
// into loops. Dimensions are rounded down to odd numbers of at least 3.
func Generate(cfg Config, scratch *arena.Arena) *Layout {
	w, h := ensureOdd(cfg.Width), ensureOdd(cfg.Height)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := vmath.NewFastRand(uint64(seed))

	l := &Layout{
		Origin: cfg.Origin,
		Width:  w,
		Height: h,
		Start:  Point{1, 1},
		End:    Point{w - 2, h - 2},
		walls:  bitmap.New(w, h, scratch),
	}
	l.walls.Fill(true)

	l.backtrack(l.Start, rng, scratch)
	if cfg.Braiding > 0 {
		l.braid(cfg.Braiding, rng)
	}
	l.Path = l.solve(l.Start, l.End, scratch)
	return l
}

func (l *Layout) open(x, y int) { l.walls.Put(x, y, false) }

func (l *Layout) passage(x, y int) bool { return !l.walls.Get(x, y) }

// backtrack carves a uniform spanning tree over the odd cells
func (l *Layout) backtrack(start Point, rng *vmath.FastRand, scratch *arena.Arena) {
	rooms := ((l.Width - 1) / 2) * ((l.Height - 1) / 2)
	stack := arena.MakeSlice[Point](scratch, rooms)[:0]
	stack = append(stack, start)
	l.open(start.X, start.Y)

	var candidates [4]Point
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		n := 0
		for _, d := range jumps {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			// keep a one cell border of walls
			if nx > 0 && nx < l.Width-1 && ny > 0 && ny < l.Height-1 && l.Wall(nx, ny) {
				candidates[n] = d
				n++
			}
		}

		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := candidates[rng.Intn(n)]
		l.open(cur.X+d.X/2, cur.Y+d.Y/2)
		next := Point{cur.X + d.X, cur.Y + d.Y}
		l.open(next.X, next.Y)
		stack = append(stack, next)
	}
}

// braid opens a wall next to each dead end with the given probability
func (l *Layout) braid(probability float64, rng *vmath.FastRand) {
	var candidates [4]Point
	for y := 1; y < l.Height-1; y += 2 {
		for x := 1; x < l.Width-1; x += 2 {
			if l.Wall(x, y) {
				continue
			}

			exits := 0
			for _, d := range steps {
				if l.passage(x+d.X, y+d.Y) {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			n := 0
			for _, jd := range jumps {
				nx, ny := x+jd.X, y+jd.Y
				wx, wy := x+jd.X/2, y+jd.Y/2
				if l.InBounds(nx, ny) && l.passage(nx, ny) && l.Wall(wx, wy) && l.canRemove(wx, wy) {
					candidates[n] = Point{wx, wy}
					n++
				}
			}
			if n > 0 {
				c := candidates[rng.Intn(n)]
				l.open(c.X, c.Y)
			}
		}
	}
}

// canRemove reports whether opening (x, y) keeps the maze free of plazas
// (2x2 open squares) and pillars (walls with no wall neighbor).
func (l *Layout) canRemove(x, y int) bool {
	p := l.passage
	if p(x-1, y-1) && p(x, y-1) && p(x-1, y) ||
		p(x, y-1) && p(x+1, y-1) && p(x+1, y) ||
		p(x-1, y) && p(x-1, y+1) && p(x, y+1) ||
		p(x+1, y) && p(x, y+1) && p(x+1, y+1) {
		return false
	}

	for _, d := range steps {
		nx, ny := x+d.X, y+d.Y
		if !l.InBounds(nx, ny) || !l.Wall(nx, ny) {
			continue
		}
		links := 0
		for _, d2 := range steps {
			ax, ay := nx+d2.X, ny+d2.Y
			if ax == x && ay == y {
				continue
			}
			if l.InBounds(ax, ay) && l.Wall(ax, ay) {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}
	return true
}

// solve returns the shortest start-to-end path, or nil when unreachable
func (l *Layout) solve(start, end Point, scratch *arena.Arena) []Point {
	if l.Wall(start.X, start.Y) || l.Wall(end.X, end.Y) {
		return nil
	}

	cells := l.Width * l.Height
	from := arena.MakeSlice[int32](scratch, cells)
	for i := range from {
		from[i] = -1
	}
	queue := arena.MakeSlice[int32](scratch, cells)[:0]

	idx := func(p Point) int32 { return int32(p.Y*l.Width + p.X) }
	at := func(i int32) Point { return Point{int(i) % l.Width, int(i) / l.Width} }

	from[idx(start)] = idx(start)
	queue = append(queue, idx(start))
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == idx(end) {
			break
		}
		c := at(cur)
		for _, d := range steps {
			n := Point{c.X + d.X, c.Y + d.Y}
			if !l.InBounds(n.X, n.Y) || l.Wall(n.X, n.Y) || from[idx(n)] >= 0 {
				continue
			}
			from[idx(n)] = cur
			queue = append(queue, idx(n))
		}
	}
	if from[idx(end)] < 0 {
		return nil
	}

	n := 1
	for i := idx(end); i != idx(start); i = from[i] {
		n++
	}
	path := make([]Point, n)
	for i, k := idx(end), n-1; k >= 0; i, k = from[i], k-1 {
		path[k] = at(i)
	}
	return path
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
