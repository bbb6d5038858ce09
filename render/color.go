package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Palette is the 16 color table tile colors index into
var Palette = [16]RGB{
	{0, 0, 0},       // 0 black
	{170, 0, 0},     // 1 red
	{0, 170, 0},     // 2 green
	{170, 85, 0},    // 3 brown
	{0, 0, 170},     // 4 blue
	{170, 0, 170},   // 5 magenta
	{0, 170, 170},   // 6 cyan
	{170, 170, 170}, // 7 light gray
	{85, 85, 85},    // 8 dark gray
	{255, 85, 85},   // 9 light red
	{85, 255, 85},   // 10 light green
	{255, 255, 85},  // 11 yellow
	{85, 85, 255},   // 12 light blue
	{255, 85, 255},  // 13 light magenta
	{85, 255, 255},  // 14 light cyan
	{255, 255, 255}, // 15 white
}

// PaletteRGB returns the palette entry for a tile color index
func PaletteRGB(i uint8) RGB {
	return Palette[i&15]
}

// ShadeAlpha is how much of a remembered tile's color survives
const ShadeAlpha = 0.35

// Lit returns the style of a visible tile
func Lit(fg, bg uint8) tcell.Style {
	return tcell.StyleDefault.
		Foreground(PaletteRGB(fg).Color()).
		Background(PaletteRGB(bg).Color())
}

// Shaded returns the style of terrain outside the field of view
func Shaded(fg, bg uint8) tcell.Style {
	black := Palette[0]
	return tcell.StyleDefault.
		Foreground(black.Blend(PaletteRGB(fg), ShadeAlpha).Color()).
		Background(black.Blend(PaletteRGB(bg), ShadeAlpha).Color())
}
