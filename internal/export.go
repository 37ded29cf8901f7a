package internal

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/mitchellh/colorstring"
)

// LegendSummary is shown on the console at the end of a run and is what gets exported.
type LegendSummary struct {
	Generated string            `json:"generated"`
	Phases    int               `json:"phases"`
	Distinct  int               `json:"distinct"`
	Entries   []LegendEntry     `json:"entries"`
	Colors    map[string]string `json:"colors"`
	Fractions []FractionSummary `json:"fractions,omitempty"`
}

// NewLegendSummary builds the legend for phases and wraps it in a summary.
func NewLegendSummary(generated string, phases []string) *LegendSummary {
	entries, colors := PhaseLegend(phases)
	return &LegendSummary{
		Generated: generated,
		Phases:    len(entries),
		Distinct:  len(colors),
		Entries:   entries,
		Colors:    colors,
	}
}

var summaryNoColor = `
Phase Legend
------------

Generated:       {{ .Generated }}
Phases:          {{ .Phases }} ({{ .Distinct }} distinct)
{{ range $i, $e := .Entries }}
  {{ printf "%3d" $i }}  {{ $e.Color }}  {{ $e.Label }}{{ end }}
{{ if .Fractions }}
Phase Fractions
---------------
{{ range .Fractions }}
  {{ printf "%-12s" .Phase }} {{ .Mean }} ± {{ .StdDev }} (min {{ .Min }}, max {{ .Max }}){{ end }}
{{ end }}`

var summaryColor = `
${blue}Phase Legend ${reset}
${blue}------------ ${reset}

${yellow}Generated:       ${green}{{ .Generated }} ${reset}
${yellow}Phases:          ${green}{{ .Phases }} ({{ .Distinct }} distinct) ${reset}
{{ range $i, $e := .Entries }}
  ${yellow}{{ printf "%3d" $i }}${reset}  ${green}{{ $e.Color }}${reset}  {{ $e.Label }}{{ end }}
{{ if .Fractions }}
${blue}Phase Fractions ${reset}
${blue}--------------- ${reset}
{{ range .Fractions }}
  ${yellow}{{ printf "%-12s" .Phase }}${reset} ${green}{{ .Mean }} ± {{ .StdDev }}${reset} (min {{ .Min }}, max {{ .Max }}){{ end }}
{{ end }}`

func escape(color string) string {
	c := colorstring.Colorize{Colors: colorstring.DefaultColors}
	return c.Color("[" + color + "]")
}

// Consolify prints the legend summary to the console, with color codes.
func (summary *LegendSummary) Consolify() {
	if err := summary.render(os.Stdout, !NO_COLOR); err != nil {
		Log("red", "Failed to print the legend summary: "+err.Error())
	}
}

func (summary *LegendSummary) render(w io.Writer, colored bool) error {
	text := summaryNoColor
	if colored {
		text = format(summaryColor,
			map[string]string{"blue": escape("cyan"), "yellow": escape("yellow"), "green": escape("green"), "reset": escape("reset")})
	}

	tmpl, err := template.New("summary").Parse(text)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, summary)
}

var markdownTemplate = `
# phase-legend

| #   | Phase | Color |
| --- | ----- | ----- |
{{ range $i, $e := .Entries }}| {{ $i }} | {{ $e.Label }} | ` + "`{{ $e.Color }}`" + ` |
{{ end }}`

var csvTemplate = `index,phase,color
{{ range $i, $e := .Entries }}{{ $i }},{{ $e.Label }},{{ $e.Color }}
{{ end }}`

func executeToFile(text string, summary *LegendSummary, filename string) error {
	tmpl, err := template.New("summary").Parse(text)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return tmpl.Execute(f, summary)
}

// jsonify converts the summary to JSON.
func jsonify(summary *LegendSummary) ([]byte, error) {
	return json.MarshalIndent(summary, "", "    ")
}

// Export writes the legend summary to dir once per format, as phase-legend.<ext>.
// Unknown formats are reported and skipped, write failures are returned.
func (summary *LegendSummary) Export(exportFormats, dir string) ([]string, error) {
	var written []string
	var errs []error

	for _, exportFormat := range strings.Split(exportFormats, ",") {
		exportFormat = strings.TrimSpace(strings.ToLower(exportFormat))
		var filename string
		var err error

		switch exportFormat {
		case "json":
			filename = filepath.Join(dir, "phase-legend.json")
			var jsonText []byte
			if jsonText, err = jsonify(summary); err == nil {
				err = writeToFile(string(jsonText), filename)
			}
		case "csv":
			filename = filepath.Join(dir, "phase-legend.csv")
			err = executeToFile(csvTemplate, summary, filename)
		case "text":
			filename = filepath.Join(dir, "phase-legend.txt")
			err = executeToFile(summaryNoColor, summary, filename)
		case "markdown":
			filename = filepath.Join(dir, "phase-legend.md")
			err = executeToFile(markdownTemplate, summary, filename)
		case "none", "":
			continue
		default:
			Log("red", "Invalid export format: "+exportFormat+".")
			continue
		}

		if err != nil {
			errs = append(errs, err)
			continue
		}
		written = append(written, filename)
	}

	return written, errors.Join(errs...)
}
