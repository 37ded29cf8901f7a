package internal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

var ErrUnknownPhase = errors.New("phase has no assigned color")

// ParsePhases splits a shell-quoted list of phase names. Names may be separated
// by whitespace, commas or both.
//
// As in a shell, a word starting with `#` starts a comment that runs to the end
// of s, so `FCC_A1 # matrix` is just FCC_A1. Quote the word ('#2') to keep it.
func ParsePhases(s string) ([]string, error) {
	words, err := shlex.Split(s)
	if err != nil {
		return nil, fmt.Errorf("unable to parse phase list %q: %w", s, err)
	}
	var phases []string
	for _, word := range words {
		for _, name := range strings.Split(word, ",") {
			if name = strings.TrimSpace(name); name != "" {
				phases = append(phases, name)
			}
		}
	}
	return phases, nil
}

// ReadPhasesFile reads phase names from a file, one or more per line.
func ReadPhasesFile(path string) ([]string, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	var phases []string
	for _, line := range lines {
		names, err := ParsePhases(line.Text)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", path, line.Number, err)
		}
		phases = append(phases, names...)
	}
	return phases, nil
}

// PhaseFraction holds the sampled fractions of one phase, e.g. along a
// temperature or composition sweep.
type PhaseFraction struct {
	Phase  string
	Values []float64
}

// ReadFractionsFile reads lines of the form `PHASE v1 v2 ...`.
func ReadFractionsFile(path string) ([]PhaseFraction, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	fractions := make([]PhaseFraction, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line.Text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s: line %d: want a phase name followed by values", path, line.Number)
		}
		values := make([]float64, len(fields)-1)
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: line %d: %w", path, line.Number, err)
			}
			values[i] = v
		}
		fractions = append(fractions, PhaseFraction{Phase: strings.ToUpper(fields[0]), Values: values})
	}
	return fractions, nil
}

// FractionPhases returns the phase names of the fractions in order.
func FractionPhases(fractions []PhaseFraction) []string {
	return MapFunc[[]PhaseFraction, []string](func(pf PhaseFraction) string { return pf.Phase }, fractions)
}
