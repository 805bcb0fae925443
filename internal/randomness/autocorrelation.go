package randomness

import "github.com/lox/crashlab/internal/statistics"

// AutocorrelationResult is the lag-k sample autocorrelation of the series.
type AutocorrelationResult struct {
	Lag            int     `json:"lag"`
	Coefficient    float64 `json:"autocorrelation"`
	Interpretation string  `json:"interpretation"`
}

// Autocorrelation computes the lag-k coefficient using the full-series mean
// and variance. It is 0 when the series is constant or not longer than k.
func Autocorrelation(values []float64, lag int) AutocorrelationResult {
	res := AutocorrelationResult{Lag: lag}
	n := len(values)
	if lag < 0 || n <= lag {
		res.Interpretation = interpretCorrelation(0)
		return res
	}

	mean := statistics.Mean(values)
	var num, den float64
	for i := 0; i < n-lag; i++ {
		num += (values[i] - mean) * (values[i+lag] - mean)
	}
	for _, v := range values {
		den += (v - mean) * (v - mean)
	}
	if den != 0 {
		res.Coefficient = num / den
	}
	res.Interpretation = interpretCorrelation(res.Coefficient)
	return res
}

// Correlogram evaluates Autocorrelation at each lag.
func Correlogram(values []float64, lags []int) []AutocorrelationResult {
	out := make([]AutocorrelationResult, len(lags))
	for i, k := range lags {
		out[i] = Autocorrelation(values, k)
	}
	return out
}

func interpretCorrelation(r float64) string {
	switch {
	case r > -0.1 && r < 0.1:
		return "no correlation"
	case r > 0:
		return "positive correlation"
	default:
		return "negative correlation"
	}
}
