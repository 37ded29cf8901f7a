package internal

import (
	"github.com/gonum/stat"
)

// FractionSummary is the mean and spread of one phase's sampled fractions.
type FractionSummary struct {
	Phase  string  `json:"phase"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Max    float64 `json:"max"`
	Min    float64 `json:"min"`
}

// SummarizeFractions computes a FractionSummary for every phase, keeping input order.
// Phases without samples are skipped.
func SummarizeFractions(fractions []PhaseFraction) []FractionSummary {
	sampled := FilterFunc(func(pf PhaseFraction) bool { return len(pf.Values) > 0 }, fractions)
	return MapFunc[[]PhaseFraction, []FractionSummary](func(pf PhaseFraction) FractionSummary {
		summary := FractionSummary{
			Phase: pf.Phase,
			Mean:  roundFloat(stat.Mean(pf.Values, nil), 4),
			Max:   pf.Values[0],
			Min:   pf.Values[0],
		}
		if len(pf.Values) > 1 {
			summary.StdDev = roundFloat(stat.StdDev(pf.Values, nil), 4)
		}
		for _, v := range pf.Values[1:] {
			summary.Max = max(summary.Max, v)
			summary.Min = min(summary.Min, v)
		}
		return summary
	}, sampled)
}
