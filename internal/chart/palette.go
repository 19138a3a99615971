package chart

import (
	"fmt"
	"image/color"
)

// Species colors follow the palmerpenguins artwork.
var speciesColors = map[string]color.RGBA{
	"Adelie":    {R: 0xff, G: 0x8c, B: 0x00, A: 0xff},
	"Chinstrap": {R: 0xa0, G: 0x20, B: 0xf0, A: 0xff},
	"Gentoo":    {R: 0x00, G: 0x8b, B: 0x8b, A: 0xff},
}

var fallbackColors = []color.RGBA{
	{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff},
	{R: 0xdd, G: 0x84, B: 0x52, A: 0xff},
	{R: 0x55, G: 0xa8, B: 0x68, A: 0xff},
}

var speciesMarkers = map[string]rune{
	"Adelie":    '●',
	"Chinstrap": '▲',
	"Gentoo":    '■',
}

// Color returns the color for a species. Unknown species cycle through a
// fallback palette by their position in groups.
func Color(species string, groups []string) color.RGBA {
	if c, ok := speciesColors[species]; ok {
		return c
	}
	for i, g := range groups {
		if g == species {
			return fallbackColors[i%len(fallbackColors)]
		}
	}
	return fallbackColors[0]
}

// Hex returns Color as #rrggbb.
func Hex(species string, groups []string) string {
	c := Color(species, groups)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Marker returns the terminal symbol for a species.
func Marker(species string) rune {
	if r, ok := speciesMarkers[species]; ok {
		return r
	}
	return '◆'
}
