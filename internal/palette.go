package internal

import (
	"image/color"
)

// phaseColors is the palette phases are colored from, in assignment order.
// Ordering follows HU1SUN's table; pure red and green are left out because they
// carry their own meaning on phase diagrams.
var phaseColors = [...]string{
	"00538A", "F4C800", "F13A13", "C10020", "D2F300", "53377A", "7BD1EC",
	"232C16", "FE4262", "C0DE00", "704AA4", "FFB300", "176136", "7F180D",
	"93AA00", "2B85EB", "F6768E", "007D34", "803E75", "4A7C01", "FF8E00",
	"EC1840", "178D39", "B32851", "577C23", "A6BDD7", "FD522B", "526B2E",
	"90324E", "593315", "B6A0D4", "FF6800", "CEA262", "9A7CC4", "91250B",
	"7B3D0B", "FF7A5C", "C01F3D", "D39336", "817066", "96541F", "EB9867",
	"B15106", "EE8548", "97691C", "DF6B10", "987155", "C76F32", "B37347",
}

// rgbaColors holds phaseColors parsed once for the plotting code.
var rgbaColors = func() [len(phaseColors)]color.RGBA {
	var parsed [len(phaseColors)]color.RGBA
	for i, hex := range phaseColors {
		c, err := hexToRGBA("#" + hex)
		if err != nil {
			// the table is a compile time constant
			panic("invalid palette entry " + hex + ": " + err.Error())
		}
		parsed[i] = c
	}
	return parsed
}()

// PaletteSize is the number of colors before assignment wraps around.
const PaletteSize = len(phaseColors)

// Palette returns a copy of the palette as "#RRGGBB" strings.
func Palette() []string {
	return MapFunc[[]string, []string](func(hex string) string { return "#" + hex }, phaseColors[:])
}

// PaletteColor returns the color for the i-th position, wrapping past the end of the palette.
func PaletteColor(i int) string {
	return "#" + phaseColors[paletteIndex(i)]
}

// PaletteRGBA is PaletteColor for image/color consumers.
func PaletteRGBA(i int) color.RGBA {
	return rgbaColors[paletteIndex(i)]
}

func paletteIndex(i int) int {
	i %= PaletteSize
	if i < 0 {
		i += PaletteSize
	}
	return i
}
