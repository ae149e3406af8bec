// Package stats computes descriptive statistics over a sample of float64 values.
//
// Every function is pure and accepts an empty sample. Where a statistic is
// undefined for zero values (mean, median, variance) the result is 0 rather
// than an error; callers that need to tell the cases apart check the count.
package stats

import (
	"math"
	"sort"

	"github.com/Geun-Oh/dstat/internal/entry"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of xs, or 0 when xs is empty.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// Median returns the middle value of xs, averaging the two middle values
// when the count is even. Returns 0 when xs is empty. xs is not modified.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Mode returns every value that shares the highest frequency, in order of
// first appearance. When the tied set is as large as the sample (all values
// distinct, or no values at all) the result is entry.NoMode.
func Mode(xs []float64) entry.Mode {
	freq := make(map[float64]int, len(xs))
	order := make([]float64, 0, len(xs))
	maxCount := 0
	for _, x := range xs {
		if freq[x] == 0 {
			order = append(order, x)
		}
		freq[x]++
		if freq[x] > maxCount {
			maxCount = freq[x]
		}
	}

	var tied []float64
	for _, x := range order {
		if freq[x] == maxCount {
			tied = append(tied, x)
		}
	}

	if len(tied) == len(xs) {
		return entry.Mode{Kind: entry.NoMode}
	}
	return entry.Mode{Kind: entry.TiedValues, Values: tied}
}

// Variance returns the population variance of xs about mean (divisor n).
// Returns 0 when xs is empty.
func Variance(xs []float64, mean float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.MomentAbout(2, xs, mean, nil)
}

// StdDev returns the square root of variance.
func StdDev(variance float64) float64 {
	return math.Sqrt(variance)
}

// Compute runs every statistic over xs.
func Compute(xs []float64) entry.Result {
	mean := Mean(xs)
	variance := Variance(xs, mean)
	return entry.Result{
		Count:    len(xs),
		Mean:     mean,
		Median:   Median(xs),
		Mode:     Mode(xs),
		Variance: variance,
		StdDev:   StdDev(variance),
	}
}
