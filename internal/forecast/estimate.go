package forecast

import "encoding/json"

// Kind distinguishes numeric estimates from descriptive labels.
type Kind int

const (
	KindNumber Kind = iota
	KindLabel
)

// Estimate is the output of one sub-estimator: either a number or a label.
// Only numbers take part in the consensus.
type Estimate struct {
	Name  string
	Kind  Kind
	Value float64
	Label string
}

// Number builds a numeric estimate.
func Number(name string, v float64) Estimate {
	return Estimate{Name: name, Kind: KindNumber, Value: v}
}

// Text builds a label estimate.
func Text(name, label string) Estimate {
	return Estimate{Name: name, Kind: KindLabel, Label: label}
}

// Numeric returns the value of a numeric estimate.
func (e Estimate) Numeric() (float64, bool) {
	if e.Kind != KindNumber {
		return 0, false
	}
	return e.Value, true
}

func (e Estimate) MarshalJSON() ([]byte, error) {
	if e.Kind == KindLabel {
		return json.Marshal(struct {
			Name  string `json:"name"`
			Label string `json:"label"`
		}{e.Name, e.Label})
	}
	return json.Marshal(struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}{e.Name, e.Value})
}

// Estimate names as they appear in results.
const (
	NameSMA10         = "sma_10"
	NameSMA50         = "sma_50"
	NameSMA100        = "sma_100"
	NameEMA           = "ema"
	NameWMA           = "wma"
	NamePattern       = "pattern_based"
	NameMedian        = "median"
	NameModeRange     = "mode_range"
	NameTrendAdjusted = "trend_adjusted"
	NameTrend         = "trend"
)
