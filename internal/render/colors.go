package render

import "image/color"

// Theme palette indices.
const (
	ColorBackground  = 0 // dark blue-gray canvas
	ColorPanel       = 1 // darker overlay boxes
	ColorWhite       = 2
	ColorLightGray   = 3
	ColorDarkGray    = 4
	ColorGold        = 5 // titles
	ColorGreen       = 6 // success / stock gains
	ColorLightGreen  = 7
	ColorRed         = 8 // errors / stock losses
	ColorLightRed    = 9
	ColorOrange      = 10 // warnings
	ColorPurple      = 11 // gambling hall
	ColorLightPurple = 12
	ColorBlue        = 13
	ColorCyan        = 14
	ColorBrown       = 15 // black-market accents
)

// Palette is the game's 16-color theme.
var Palette = [16]color.RGBA{
	{50, 70, 90, 255},    // 0: Background
	{30, 42, 56, 255},    // 1: Panel
	{255, 255, 255, 255}, // 2: White
	{226, 232, 240, 255}, // 3: Light Gray
	{100, 110, 124, 255}, // 4: Dark Gray
	{255, 200, 0, 255},   // 5: Gold
	{50, 180, 50, 255},   // 6: Green
	{72, 187, 120, 255},  // 7: Light Green
	{220, 50, 50, 255},   // 8: Red
	{239, 68, 68, 255},   // 9: Light Red
	{246, 173, 85, 255},  // 10: Orange
	{150, 50, 220, 255},  // 11: Purple
	{190, 120, 240, 255}, // 12: Light Purple
	{60, 100, 180, 255},  // 13: Blue
	{85, 200, 220, 255},  // 14: Cyan
	{170, 110, 40, 255},  // 15: Brown
}

// Fade blends a palette color toward the background, used for the
// message fade-in/fade-out envelope.
func Fade(idx uint8, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c := Palette[idx]
	bg := Palette[ColorBackground]
	mix := func(a, b uint8) uint8 {
		return uint8(float64(b) + (float64(a)-float64(b))*alpha)
	}
	return color.RGBA{mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B), 255}
}
