package forecast

import (
	"github.com/lox/crashlab/internal/pattern"
	"github.com/lox/crashlab/internal/statistics"
	"github.com/lox/crashlab/internal/window"
)

// tail returns the last n values, or all of them when fewer exist.
func tail(values []float64, n int) []float64 {
	if n >= len(values) {
		return values
	}
	return values[len(values)-n:]
}

// SMA is the simple moving average of the last n values.
func SMA(values []float64, n int) float64 {
	return statistics.Mean(tail(values, n))
}

// EMA folds the series left to right with smoothing factor alpha, seeded
// at the first value.
func EMA(values []float64, alpha float64) float64 {
	if len(values) == 0 {
		return 0
	}
	ema := values[0]
	for _, v := range values[1:] {
		ema = alpha*v + (1-alpha)*ema
	}
	return ema
}

// WMA weights the last n values 1..n from oldest to newest.
func WMA(values []float64, n int) float64 {
	recent := tail(values, n)
	var sum, weights float64
	for i, v := range recent {
		w := float64(i + 1)
		sum += w * v
		weights += w
	}
	if weights == 0 {
		return 0
	}
	return sum / weights
}

// PatternMatch compares the last size values with every earlier window of
// the same size. Windows whose sum of squared differences is below
// threshold are similar; the estimate is the mean of the value that
// followed each of them. ok is false when nothing matched.
func PatternMatch(values []float64, size int, threshold float64) (estimate float64, matches int, ok bool) {
	n := len(values)
	if size < 1 || n < size+1 {
		return 0, 0, false
	}
	reference := values[n-size:]

	// Candidate windows stop short of the one ending right before the
	// reference, leaving at least one value between match and reference.
	candidates := n - size - 1
	diffs := window.Map(candidates, func(i int) float64 {
		var d float64
		for j, r := range reference {
			delta := values[i+j] - r
			d += delta * delta
		}
		return d
	})

	var following []float64
	for i, d := range diffs {
		if d < threshold {
			following = append(following, values[i+size])
		}
	}
	if len(following) == 0 {
		return 0, 0, false
	}
	return statistics.Mean(following), len(following), true
}

// ModeRange maps the last n values to their category midpoints and returns
// the most frequent midpoint. Ties go to the midpoint seen first.
func ModeRange(values []float64, n int) (float64, bool) {
	recent := tail(values, n)
	if len(recent) == 0 {
		return 0, false
	}

	counts := make(map[pattern.Category]int)
	var order []pattern.Category
	for _, v := range recent {
		c := pattern.Categorize(v)
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}

	best := order[0]
	for _, c := range order[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best.Midpoint(), true
}

// Trend labels.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// TrendAdjusted compares the mean of the last 10 values with the 10 before
// them and carries half of the change forward from the recent mean. The
// estimate never drops below 1.0. ok is false with fewer than 20 values.
func TrendAdjusted(values []float64) (estimate float64, trend string, ok bool) {
	n := len(values)
	if n < 20 {
		return 0, "", false
	}
	recent := statistics.Mean(values[n-10:])
	older := statistics.Mean(values[n-20 : n-10])
	delta := recent - older

	estimate = max(1.0, recent+delta*0.5)
	switch {
	case delta > 0.1:
		trend = TrendIncreasing
	case delta < -0.1:
		trend = TrendDecreasing
	default:
		trend = TrendStable
	}
	return estimate, trend, true
}
