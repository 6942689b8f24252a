package render

import (
	"strconv"
	"strings"
)

// ansi holds the reference RGB value of each base color.
var ansi = []struct {
	c       Color
	r, g, b int
}{
	{ColorBlack, 0x00, 0x00, 0x00},
	{ColorRed, 0xcd, 0x00, 0x00},
	{ColorGreen, 0x00, 0xcd, 0x00},
	{ColorYellow, 0xcd, 0xcd, 0x00},
	{ColorBlue, 0x00, 0x00, 0xee},
	{ColorMagenta, 0xcd, 0x00, 0xcd},
	{ColorCyan, 0x00, 0xcd, 0xcd},
	{ColorWhite, 0xe5, 0xe5, 0xe5},
}

// HexColor maps a "#rrggbb" color onto the nearest terminal color. Anything
// that does not parse is ColorDefault.
func HexColor(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return ColorDefault
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ColorDefault
	}
	r, g, b := int(v>>16), int(v>>8&0xff), int(v&0xff)

	best, bestDist := ColorDefault, -1
	for _, a := range ansi {
		dr, dg, db := r-a.r, g-a.g, b-a.b
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = a.c, d
		}
	}
	return best
}

// snakePalette colors the body from head to tail; it repeats for long snakes.
var snakePalette = []Color{
	ColorGreen | AttrBold,
	ColorGreen,
	ColorGreen,
	ColorCyan,
}

func segmentColor(i int) Color {
	if i == 0 {
		return snakePalette[0]
	}
	return snakePalette[1+(i-1)%(len(snakePalette)-1)]
}
