package world

// Tile is the presentation payload of a map cell. The core never interprets
// it, only stores it and hands it to the renderer.
type Tile struct {
	Glyph rune
	Atlas uint8
	FG    uint8
	BG    uint8
}

// Terra is the composed view of one map coordinate.
type Terra struct {
	Tile       Tile
	BlocksView bool
	BlocksMove bool
}

// NullTile is returned for coordinates whose chunk was never written.
var NullTile = Tile{Glyph: 370, Atlas: 2, FG: 15, BG: 0}

// AirTile paints every cell of a newly created chunk.
var AirTile = Tile{Glyph: 0, Atlas: 2, FG: 15, BG: 3}

// Void is the Terra of an unmaterialized coordinate.
var Void = Terra{Tile: NullTile}

// Wall is a fully opaque, impassable Terra.
var Wall = Terra{
	Tile:       Tile{Glyph: 363, Atlas: 2, FG: 8, BG: 0},
	BlocksView: true,
	BlocksMove: true,
}

// Floor is passable open ground.
var Floor = Terra{Tile: AirTile}
