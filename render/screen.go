package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilesight/world"
)

// Screen draws world tiles onto a tcell screen centered on a camera. The
// bottom row is reserved for the status line.
type Screen struct {
	screen tcell.Screen
	glyphs GlyphTable

	camX, camY    int
	width, height int
}

// NewScreen wraps s. A nil glyph table selects DefaultGlyphs.
func NewScreen(s tcell.Screen, glyphs GlyphTable) *Screen {
	if glyphs == nil {
		glyphs = DefaultGlyphs()
	}
	return &Screen{screen: s, glyphs: glyphs}
}

// Begin starts a frame centered on (camX, camY)
func (s *Screen) Begin(camX, camY int) {
	s.screen.Clear()
	w, h := s.screen.Size()
	s.width, s.height = w, max(h-1, 0)
	s.camX, s.camY = camX, camY
}

// Size returns the map viewport in cells
func (s *Screen) Size() (w, h int) { return s.width, s.height }

// ToScreen converts a world coordinate to a viewport cell
func (s *Screen) ToScreen(x, y int) (sx, sy int, ok bool) {
	sx = x - s.camX + s.width/2
	sy = y - s.camY + s.height/2
	return sx, sy, sx >= 0 && sx < s.width && sy >= 0 && sy < s.height
}

// RenderTile draws a visible tile
func (s *Screen) RenderTile(x, y int, t world.Tile) {
	s.put(x, y, t, Lit(t.FG, t.BG))
}

// Shade draws a tile outside the field of view
func (s *Screen) Shade(x, y int, t world.Tile) {
	s.put(x, y, t, Shaded(t.FG, t.BG))
}

func (s *Screen) put(x, y int, t world.Tile, style tcell.Style) {
	sx, sy, ok := s.ToScreen(x, y)
	if !ok {
		return
	}
	s.screen.SetContent(sx, sy, s.glyphs.Rune(t), nil, style)
}

// Status writes text on the bottom row, truncated to the screen width
func (s *Screen) Status(text string) {
	w, h := s.screen.Size()
	if h == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(Palette[15].Color()).Background(Palette[4].Color())
	col := 0
	for _, r := range text {
		if col >= w {
			break
		}
		s.screen.SetContent(col, h-1, r, nil, style)
		col++
	}
	for ; col < w; col++ {
		s.screen.SetContent(col, h-1, ' ', nil, style)
	}
}

// Show flushes the frame to the terminal
func (s *Screen) Show() { s.screen.Show() }
