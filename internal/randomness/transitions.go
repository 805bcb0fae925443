package randomness

// TransitionStats holds first-order transition counts between high and low
// outcomes and the conditional probabilities derived from them.
type TransitionStats struct {
	Median        float64 `json:"median_threshold"`
	LowToLow      int     `json:"low_to_low"`
	LowToHigh     int     `json:"low_to_high"`
	HighToLow     int     `json:"high_to_low"`
	HighToHigh    int     `json:"high_to_high"`
	HighAfterLow  float64 `json:"prob_high_after_low"`
	LowAfterLow   float64 `json:"prob_low_after_low"`
	HighAfterHigh float64 `json:"prob_high_after_high"`
	LowAfterHigh  float64 `json:"prob_low_after_high"`
}

// Total returns the number of observed transitions.
func (t TransitionStats) Total() int {
	return t.LowToLow + t.LowToHigh + t.HighToLow + t.HighToHigh
}

// Transitions tallies adjacent high/low pairs. Fewer than two values
// yield the zero result.
func Transitions(values []float64) TransitionStats {
	if len(values) < 2 {
		return TransitionStats{}
	}

	labels, median := split(values)
	t := TransitionStats{Median: median}
	for i := 0; i < len(labels)-1; i++ {
		switch from, to := labels[i], labels[i+1]; {
		case from == High && to == High:
			t.HighToHigh++
		case from == High:
			t.HighToLow++
		case to == High:
			t.LowToHigh++
		default:
			t.LowToLow++
		}
	}

	t.HighAfterLow = ratio(t.LowToHigh, t.LowToLow+t.LowToHigh)
	t.LowAfterLow = ratio(t.LowToLow, t.LowToLow+t.LowToHigh)
	t.HighAfterHigh = ratio(t.HighToHigh, t.HighToHigh+t.HighToLow)
	t.LowAfterHigh = ratio(t.HighToLow, t.HighToHigh+t.HighToLow)
	return t
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}
