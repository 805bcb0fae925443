// Package randomness implements diagnostics that look for structure in the
// outcome series: streaks, the Wald-Wolfowitz runs test, autocorrelation,
// rolling volatility and first-order transition probabilities.
//
// Every function takes the ordered outcome values and returns a plain
// result value. Insufficient data is reported through the result, never as
// an error, and divisions by zero are defined to yield 0.
package randomness

import "github.com/lox/crashlab/internal/statistics"

// Label classifies an outcome relative to the sample median.
type Label string

const (
	High Label = "high"
	Low  Label = "low"
)

// split labels every value as High (>= median) or Low.
func split(values []float64) (labels []Label, median float64) {
	median = statistics.Median(values)
	labels = make([]Label, len(values))
	for i, v := range values {
		if v >= median {
			labels[i] = High
		} else {
			labels[i] = Low
		}
	}
	return labels, median
}

// runs collapses labels into the lengths of maximal equal-label runs.
func runs(labels []Label) (lengths []int, kinds []Label) {
	for i, l := range labels {
		if i == 0 || l != labels[i-1] {
			lengths = append(lengths, 1)
			kinds = append(kinds, l)
			continue
		}
		lengths[len(lengths)-1]++
	}
	return lengths, kinds
}
