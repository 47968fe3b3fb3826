// Package calculations implements the aggregation views computed over the
// loaded dataset. Every view is a pure read: it recomputes into fresh local
// structures on each call and returns nil when no data is loaded, which the
// serving layer renders as an empty object.
package calculations

import (
	"math"

	"github.com/promptlens/promptlens/dataset"
)

// Engine computes aggregation views over an immutable dataset.
type Engine struct {
	ds *dataset.Dataset
}

// NewEngine creates an aggregation engine over ds. A nil dataset is valid
// and behaves like an empty one.
func NewEngine(ds *dataset.Dataset) *Engine {
	return &Engine{ds: ds}
}

// mean returns sum/n, or NaN for an empty group. The NaN propagates to the
// serialization boundary where it becomes null.
func mean(sum float64, n int) float64 {
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// sampleStdDev returns the sample standard deviation (n-1 denominator), or
// NaN when fewer than two values exist.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))

	sumSquares := 0.0
	for _, v := range values {
		diff := v - m
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)-1))
}

// mostCommon returns the most frequent value, breaking ties by first
// encounter order in the input.
func mostCommon(values []string) string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, v := range values {
		if _, ok := counts[v]; !ok {
			firstSeen[v] = i
		}
		counts[v]++
	}

	best := ""
	bestCount := -1
	for v, count := range counts {
		if count > bestCount || (count == bestCount && firstSeen[v] < firstSeen[best]) {
			best = v
			bestCount = count
		}
	}
	return best
}
