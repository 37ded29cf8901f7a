package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shravanasati/clapper"
	"github.com/shravanasati/commando"
	"github.com/shravanasati/phaseplot/internal"
)

const (
	// NAME is the executable name.
	NAME = "phaseplot"
	// VERSION is the executable version.
	VERSION = "v0.2.0"
)

// NO_COLOR is a global variable that is used to determine whether or not to enable color output.
var NO_COLOR bool = false

// collects the phases named on the command line and in the phases file, in that order.
// argValue is the variadic argument as commando hands it over, its values joined
// by clapper.VariadicSeparator.
func collectPhases(argValue, phasesFile string) ([]string, error) {
	var phases []string
	for _, arg := range strings.Split(argValue, clapper.VariadicSeparator) {
		names, err := internal.ParsePhases(arg)
		if err != nil {
			return nil, err
		}
		phases = append(phases, names...)
	}
	if phasesFile != "" {
		filePhases, err := internal.ReadPhasesFile(phasesFile)
		if err != nil {
			return nil, err
		}
		phases = append(phases, filePhases...)
	}
	return phases, nil
}

// appends the phases that only show up in the fractions file, so that every
// plotted phase gets a color.
func mergeFractionPhases(phases []string, fractions []internal.PhaseFraction) []string {
	seen := make(map[string]bool, len(phases))
	for _, p := range phases {
		seen[strings.ToUpper(p)] = true
	}
	for _, p := range internal.FractionPhases(fractions) {
		if !seen[p] {
			seen[p] = true
			phases = append(phases, p)
		}
	}
	return phases
}

func setColor(flags map[string]commando.FlagValue) {
	color, e := flags["color"].GetBool()
	if e != nil {
		internal.Log("red", "Application error: cannot parse flag values.")
	}
	NO_COLOR = !color || os.Getenv("NO_COLOR") != ""
	internal.NO_COLOR = NO_COLOR
}

func renderPlots(summary *internal.LegendSummary, fractions []internal.PhaseFraction, plotFormats string) {
	formats, err := internal.VerifyPlotFormats(plotFormats)
	if err != nil {
		internal.Log("red", err.Error())
		return
	}

	legendPlot, err := internal.LegendPlot(summary.Entries)
	if err != nil {
		internal.Log("red", "Unable to draw the legend: "+err.Error())
		return
	}
	written, err := internal.SavePlots(legendPlot, "phase-legend", formats, internal.PlotWidth(len(summary.Entries)))
	for _, w := range written {
		internal.Log("green", "Successfully wrote the phase legend to `"+w+"`.")
	}
	if err != nil {
		internal.Log("red", err.Error())
		return
	}

	if len(fractions) == 0 {
		return
	}
	fractionPlot, err := internal.FractionPlot(fractions, summary.Colors)
	if err != nil {
		internal.Log("red", "Unable to draw the phase fractions: "+err.Error())
		return
	}
	samples := 0
	for _, pf := range fractions {
		samples = max(samples, len(pf.Values))
	}
	written, err = internal.SavePlots(fractionPlot, "phase-fractions", formats, internal.PlotWidth(samples*len(fractions)/2))
	for _, w := range written {
		internal.Log("green", "Successfully wrote the phase fractions to `"+w+"`.")
	}
	if err != nil {
		internal.Log("red", err.Error())
	}
}

func main() {
	internal.Log("white", fmt.Sprintf("%v %v\n", NAME, VERSION))

	updateCh := make(chan string, 1)
	go internal.CheckForUpdates(VERSION, updateCh)
	defer func() {
		select {
		case notice := <-updateCh:
			if notice != "" {
				internal.Log("yellow", notice)
			}
		case <-time.After(time.Second):
		}
	}()

	// * basic configuration
	commando.
		SetExecutableName(NAME).
		SetVersion(VERSION).
		SetDescription("phaseplot assigns stable, distinct colors to thermodynamic phases and renders their legends.")

	// * root command
	commando.
		Register(nil).
		SetShortDescription("Build the color legend for the given phases.").
		SetDescription("Build the color legend for the given phases. Phase names are case insensitive.").
		AddArgument("phases...", "The phase names, e.g. FCC_A1 BCC_A2 LIQUID.", "").
		AddFlag("file,f", "A file with phase names, one or more per line.", commando.String, "").
		AddFlag("fractions,F", "A file with lines of `PHASE v1 v2 ...` phase fractions to plot.", commando.String, "").
		AddFlag("plot,p", "Comma separated list of image formats to render, including png, svg and pdf.", commando.String, "none").
		AddFlag("export,e", "Comma separated list of legend export formats, including json, text, csv and markdown.", commando.String, "none").
		AddFlag("no-color", "Disable colored output.", commando.Bool, false).
		SetAction(func(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
			setColor(flags)

			phasesFile, e := flags["file"].GetString()
			if e != nil {
				internal.Log("red", "Application error: cannot parse flag values.")
				return
			}
			fractionsFile, e := flags["fractions"].GetString()
			if e != nil {
				internal.Log("red", "Application error: cannot parse flag values.")
				return
			}

			phases, err := collectPhases(args["phases"].Value, phasesFile)
			if err != nil {
				internal.Log("red", "Unable to read the phases.")
				internal.Log("white", err.Error())
				return
			}

			var fractions []internal.PhaseFraction
			if fractionsFile != "" {
				fractions, err = internal.ReadFractionsFile(fractionsFile)
				if err != nil {
					internal.Log("red", "Unable to read the phase fractions.")
					internal.Log("white", err.Error())
					return
				}
				phases = mergeFractionPhases(phases, fractions)
			}

			if len(phases) == 0 {
				fmt.Println("Error: not enough arguments.")
				return
			}

			summary := internal.NewLegendSummary(time.Now().Format("02-01-2006 15:04:05"), phases)
			summary.Fractions = internal.SummarizeFractions(fractions)
			summary.Consolify()

			plotFormats, e := flags["plot"].GetString()
			if e != nil {
				internal.Log("red", "Application error: cannot parse flag values.")
				return
			}
			if plotFormats != "none" {
				renderPlots(summary, fractions, plotFormats)
			}

			// * getting export values
			exportFormat, e := flags["export"].GetString()
			if e != nil {
				internal.Log("red", "Application error: cannot parse flag values.")
				return
			}
			written, err := summary.Export(exportFormat, ".")
			for _, w := range written {
				internal.Log("green", "Successfully wrote the phase legend to `"+w+"`.")
			}
			if err != nil {
				internal.Log("red", "Failed to export the phase legend.")
				internal.Log("white", err.Error())
			}
		})

	// * the palette command
	commando.
		Register("palette").
		SetShortDescription("Print the color palette in assignment order.").
		AddFlag("no-color", "Disable colored output.", commando.Bool, false).
		SetAction(func(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
			setColor(flags)
			for i, c := range internal.Palette() {
				internal.Log("white", fmt.Sprintf("%3d  %s", i, c))
			}
		})

	commando.Parse(nil)
}
