package forecast

import "github.com/lox/crashlab/internal/statistics"

// Confidence grades how closely the sub-estimates agree.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Consensus is the median of the in-range numeric estimates.
type Consensus struct {
	Value      float64    `json:"consensus"`
	StdDev     float64    `json:"prediction_std"`
	Confidence Confidence `json:"confidence"`
	Inputs     int        `json:"inputs"`
}

// NewConsensus combines the numeric estimates that fall within [lo, hi].
// Labels and out-of-range values are ignored. The second return value is
// false when nothing qualifies.
func NewConsensus(estimates []Estimate, lo, hi float64) (Consensus, bool) {
	var values []float64
	for _, e := range estimates {
		v, ok := e.Numeric()
		if !ok || v < lo || v > hi {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return Consensus{}, false
	}

	sd := statistics.StdDev(values)
	return Consensus{
		Value:      statistics.Median(values),
		StdDev:     sd,
		Confidence: gradeConfidence(sd),
		Inputs:     len(values),
	}, true
}

func gradeConfidence(sd float64) Confidence {
	switch {
	case sd < 0.5:
		return ConfidenceHigh
	case sd < 1.5:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
