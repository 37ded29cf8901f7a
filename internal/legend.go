package internal

import (
	"image/color"
	"strings"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg"
)

// LegendEntry pairs a phase label with the color assigned to it.
type LegendEntry struct {
	Label string     `json:"label"`
	Color string     `json:"color"`
	RGBA  color.RGBA `json:"-"`
}

// Thumbnail draws the entry as a filled swatch, so entries can be handed
// straight to plot.Legend.Add.
func (e LegendEntry) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(e.RGBA, c.ClipPolygonY(pts))
}

// PhaseLegend builds the legend handles for the given phases along with a map of
// uppercased phase name to its color.
//
// The i-th phase gets the i-th palette color, wrapping around once the palette
// runs out. Repeated names still get their own handle, and the map keeps the
// color of the last occurrence.
func PhaseLegend(phases []string) ([]LegendEntry, map[string]string) {
	handles := make([]LegendEntry, 0, len(phases))
	colors := make(map[string]string, len(phases))
	for i, phase := range phases {
		phase = strings.ToUpper(phase)
		colors[phase] = PaletteColor(i)
		handles = append(handles, LegendEntry{
			Label: phase,
			Color: colors[phase],
			RGBA:  PaletteRGBA(i),
		})
	}
	return handles, colors
}
