package internal

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/schollz/progressbar/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrInvalidPlotFormat = errors.New("invalid plot format")

var validPlotFormats = []string{"png", "svg", "pdf", "jpg", "jpeg", "eps", "tif", "tiff"}

// VerifyPlotFormats splits a comma separated list of image formats and checks each of them.
func VerifyPlotFormats(formats string) ([]string, error) {
	formatList := strings.Split(strings.ToLower(formats), ",")
	for i, f := range formatList {
		f = strings.TrimSpace(f)
		if !slices.Contains(validPlotFormats, f) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPlotFormat, f)
		}
		formatList[i] = f
	}
	return formatList, nil
}

// LegendPlot draws one unit bar per legend entry, filled with the entry's color.
func LegendPlot(entries []LegendEntry) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Phase Legend"
	p.Y.Max = 1
	p.HideY()

	w := vg.Points(20)
	for i, entry := range entries {
		v := make(plotter.Values, len(entries))
		v[i] = 1
		bars, err := plotter.NewBarChart(v, w)
		if err != nil {
			return nil, err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = entry.RGBA
		p.Add(bars)
		p.Legend.Add(entry.Label, entry)
	}
	p.Legend.Top = true
	p.NominalX(MapFunc[[]LegendEntry, []string](func(e LegendEntry) string { return e.Label }, entries)...)
	return p, nil
}

// FractionPlot draws the sampled fractions of every phase as grouped bars. Each
// phase is filled with the color found for it in colors, as returned by PhaseLegend.
func FractionPlot(fractions []PhaseFraction, colors map[string]string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Phase Fractions"
	p.X.Label.Text = "Sample"
	p.Y.Label.Text = "Fraction"

	samples := 0
	for _, pf := range fractions {
		samples = max(samples, len(pf.Values))
	}

	w := vg.Points(8)
	for i, pf := range fractions {
		key := strings.ToUpper(pf.Phase)
		hex, ok := colors[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPhase, key)
		}
		c, err := hexToRGBA(hex)
		if err != nil {
			return nil, fmt.Errorf("phase %s: %w", key, err)
		}

		v := make(plotter.Values, samples)
		copy(v, pf.Values)
		bars, err := plotter.NewBarChart(v, w)
		if err != nil {
			return nil, fmt.Errorf("phase %s: %w", key, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = c
		bars.Offset = barOffset(i, len(fractions), w)
		p.Add(bars)
		p.Legend.Add(key, bars)
	}
	p.Legend.Top = true

	labels := make([]string, samples)
	for i := range labels {
		labels[i] = fmt.Sprint(i + 1)
	}
	p.NominalX(labels...)
	return p, nil
}

// barOffset centers a group of n bars of width w on its tick.
func barOffset(i, n int, w vg.Length) vg.Length {
	return vg.Length(float64(i)-float64(n-1)/2) * w
}

// SavePlots writes the plot once per format as basename.<format>, returning the written paths.
func SavePlots(p *plot.Plot, basename string, formats []string, width font.Length) ([]string, error) {
	pbarOptions := []progressbar.Option{
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetDescription("[magenta]Rendering " + basename + "[reset]"),
		progressbar.OptionEnableColorCodes(!NO_COLOR),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	}
	bar := progressbar.NewOptions(len(formats), pbarOptions...)
	defer bar.Finish()

	var written []string
	for _, f := range formats {
		filename := addExtension(basename, f)
		if err := p.Save(width, 4*vg.Inch, filename); err != nil {
			return written, fmt.Errorf("unable to save %s: %w", filename, err)
		}
		written = append(written, filename)
		bar.Add(1)
	}
	return written, nil
}

// PlotWidth sizes a figure so that n bars stay readable.
func PlotWidth(n int) font.Length {
	return font.Length(max(4, (n+1)/2)) * vg.Inch
}

func hexToRGBA(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
