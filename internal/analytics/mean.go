package analytics

import (
	"math"

	"github.com/montanaflynn/stats"
)

// mean returns the arithmetic mean of values, or 0 for an empty set.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, err := stats.Mean(stats.Float64Data(values))
	if err != nil {
		return 0
	}
	return m
}

// meanOrNil is mean with "no data" kept distinct from zero.
func meanOrNil(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	m := mean(values)
	return &m
}

func round(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}
