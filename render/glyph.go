package render

import "github.com/lixenwraith/tilesight/world"

// GlyphKey addresses a glyph within a tile atlas
type GlyphKey struct {
	Atlas uint8
	Glyph rune
}

// GlyphTable maps atlas glyphs to terminal runes
type GlyphTable map[GlyphKey]rune

// DefaultGlyphs covers the tiles the game places
func DefaultGlyphs() GlyphTable {
	return GlyphTable{
		{2, world.NullTile.Glyph}:  ' ',
		{2, world.AirTile.Glyph}:   '.',
		{2, world.Wall.Tile.Glyph}: '#',
		{2, 417}:                   '@',
		{2, 907}:                   'g',
	}
}

// Rune returns the terminal rune for t. Unmapped printable glyphs are drawn
// as themselves, anything else as '?'.
func (g GlyphTable) Rune(t world.Tile) rune {
	if r, ok := g[GlyphKey{t.Atlas, t.Glyph}]; ok {
		return r
	}
	if t.Glyph >= ' ' && t.Glyph != 0x7f {
		return t.Glyph
	}
	return '?'
}
