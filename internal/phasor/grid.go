package phasor

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// linspace returns n evenly spaced samples over [lo, hi].
func linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// nearestIndex is argmin |grid[i] - x|; the first minimum wins.
func nearestIndex(grid []float64, x float64) int {
	dist := make([]float64, len(grid))
	for i, g := range grid {
		dist[i] = math.Abs(g - x)
	}
	return floats.MinIdx(dist)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
