package core

import (
	"strconv"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
)

// paletteRGB approximates how each palette entry looks on a typical terminal.
var paletteRGB = map[Color][3]int{
	ColorRed:           {205, 49, 49},
	ColorGreen:         {13, 188, 121},
	ColorYellow:        {229, 229, 16},
	ColorBlue:          {36, 114, 200},
	ColorMagenta:       {188, 63, 188},
	ColorCyan:          {17, 168, 205},
	ColorWhite:         {229, 229, 229},
	ColorBrightRed:     {241, 76, 76},
	ColorBrightGreen:   {35, 209, 139},
	ColorBrightYellow:  {245, 245, 67},
	ColorBrightBlue:    {59, 142, 234},
	ColorBrightMagenta: {214, 112, 214},
	ColorBrightCyan:    {41, 184, 219},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {255, 135, 0},
	ColorGray:          {138, 138, 138},
	ColorBrown:         {135, 95, 0},
}

// NearestColor maps a "#rrggbb" hex string to the closest palette color.
// Malformed input yields ColorDefault.
func NearestColor(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return ColorDefault
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ColorDefault
	}
	r, g, b := int(v>>16&0xff), int(v>>8&0xff), int(v&0xff)

	best := ColorDefault
	bestDist := -1
	// Iterate in declaration order so ties resolve deterministically.
	for c := ColorRed; c <= ColorBrown; c++ {
		p := paletteRGB[c]
		dr, dg, db := r-p[0], g-p[1], b-p[2]
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
