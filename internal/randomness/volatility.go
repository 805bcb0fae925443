package randomness

import (
	"gonum.org/v1/gonum/floats"

	"github.com/lox/crashlab/internal/statistics"
	"github.com/lox/crashlab/internal/window"
)

// VolatilityStats summarizes the rolling standard deviation of outcomes.
type VolatilityStats struct {
	Window  int     `json:"window"`
	Windows int     `json:"windows"`
	Mean    float64 `json:"avg_volatility"`
	Min     float64 `json:"min_volatility"`
	Max     float64 `json:"max_volatility"`
	Recent  float64 `json:"recent_volatility"`
	Trend   string  `json:"volatility_trend,omitempty"`
}

// Empty reports whether there was not enough data for a single window.
func (v VolatilityStats) Empty() bool {
	return v.Windows == 0
}

const (
	TrendIncreasing = "increasing"
	TrendStable     = "stable/decreasing"
)

// RollingStdDev returns the sample standard deviation of every contiguous
// window of w values, sliding by one.
func RollingStdDev(values []float64, w int) []float64 {
	return window.Map(window.Count(len(values), w), func(i int) float64 {
		return statistics.StdDev(values[i : i+w])
	})
}

// Volatility summarizes RollingStdDev. The result is empty when fewer than
// w values exist.
func Volatility(values []float64, w int) VolatilityStats {
	series := RollingStdDev(values, w)
	if len(series) == 0 {
		return VolatilityStats{Window: w}
	}

	v := VolatilityStats{
		Window:  w,
		Windows: len(series),
		Mean:    statistics.Mean(series),
		Min:     floats.Min(series),
		Max:     floats.Max(series),
		Recent:  series[len(series)-1],
		Trend:   TrendStable,
	}
	if v.Recent > v.Mean {
		v.Trend = TrendIncreasing
	}
	return v
}
