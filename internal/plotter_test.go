package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestVerifyPlotFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats string
		want    []string
		wantErr bool
	}{
		{name: "single", formats: "png", want: []string{"png"}},
		{name: "several", formats: "PNG, svg,pdf", want: []string{"png", "svg", "pdf"}},
		{name: "invalid", formats: "png,gif", wantErr: true},
		{name: "none is not a format", formats: "none", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerifyPlotFormats(tt.formats)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPlotFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLegendPlot(t *testing.T) {
	entries, _ := PhaseLegend([]string{"FCC_A1", "BCC_A2", "LIQUID"})

	p, err := LegendPlot(entries)
	require.NoError(t, err)
	assert.Equal(t, "Phase Legend", p.Title.Text)

	wt, err := p.WriterTo(4*vg.Inch, 3*vg.Inch, "png")
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = wt.WriteTo(&buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "expected a png image")
}

func TestFractionPlot(t *testing.T) {
	fractions := []PhaseFraction{
		{Phase: "fcc_a1", Values: []float64{0.2, 0.4, 0.1}},
		{Phase: "LIQUID", Values: []float64{0.8, 0.6}},
	}
	_, colors := PhaseLegend([]string{"FCC_A1", "LIQUID"})

	p, err := FractionPlot(fractions, colors)
	require.NoError(t, err)

	wt, err := p.WriterTo(4*vg.Inch, 3*vg.Inch, "svg")
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = wt.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
}

func TestFractionPlotUnknownPhase(t *testing.T) {
	_, colors := PhaseLegend([]string{"FCC_A1"})
	_, err := FractionPlot([]PhaseFraction{{Phase: "SIGMA", Values: []float64{1}}}, colors)
	assert.ErrorIs(t, err, ErrUnknownPhase)
}

func TestFractionPlotBadColor(t *testing.T) {
	_, err := FractionPlot([]PhaseFraction{{Phase: "SIGMA", Values: []float64{1}}}, map[string]string{"SIGMA": "teal"})
	assert.Error(t, err)
}

func TestSavePlots(t *testing.T) {
	NO_COLOR = true
	t.Cleanup(func() { NO_COLOR = false })

	entries, _ := PhaseLegend([]string{"FCC_A1", "LIQUID"})
	p, err := LegendPlot(entries)
	require.NoError(t, err)

	base := filepath.Join(t.TempDir(), "phase-legend")
	written, err := SavePlots(p, base, []string{"png", "svg"}, PlotWidth(len(entries)))
	require.NoError(t, err)
	assert.Equal(t, []string{base + ".png", base + ".svg"}, written)
	for _, w := range written {
		info, err := os.Stat(w)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}
}

func Test_barOffset(t *testing.T) {
	w := vg.Points(8)
	tests := []struct {
		name string
		n    int
		want []vg.Length
	}{
		{"one", 1, []vg.Length{0}},
		{"two", 2, []vg.Length{-w / 2, w / 2}},
		{"three", 3, []vg.Length{-w, 0, w}},
		{"four", 4, []vg.Length{-3 * w / 2, -w / 2, w / 2, 3 * w / 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sum vg.Length
			for i, want := range tt.want {
				got := barOffset(i, tt.n, w)
				assert.Equal(t, want, got, "bar %d", i)
				sum += got
			}
			assert.Zero(t, sum, "group should be centered on its tick")
		})
	}
}

func TestPlotWidth(t *testing.T) {
	assert.Equal(t, 4*vg.Inch, PlotWidth(0))
	assert.Equal(t, 4*vg.Inch, PlotWidth(3))
	assert.Equal(t, 10*vg.Inch, PlotWidth(20))
}
