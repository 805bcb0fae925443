package randomness

import "github.com/lox/crashlab/internal/statistics"

// StreakStats describes runs of consecutive high or low outcomes.
type StreakStats struct {
	Samples       int     `json:"samples"`
	Median        float64 `json:"median_crash"`
	LongestHigh   int     `json:"longest_high_streak"`
	LongestLow    int     `json:"longest_low_streak"`
	AvgHigh       float64 `json:"avg_high_streak"`
	AvgLow        float64 `json:"avg_low_streak"`
	HighStreaks   int     `json:"total_high_streaks"`
	LowStreaks    int     `json:"total_low_streaks"`
	Current       Label   `json:"current_streak_type,omitempty"`
	CurrentLength int     `json:"current_streak_length"`
}

// Streaks splits the series at its median and measures the resulting runs.
// The trailing run is reported as the current streak.
func Streaks(values []float64) StreakStats {
	if len(values) == 0 {
		return StreakStats{}
	}

	labels, median := split(values)
	lengths, kinds := runs(labels)

	var high, low []float64
	s := StreakStats{Samples: len(values), Median: median}
	for i, n := range lengths {
		if kinds[i] == High {
			high = append(high, float64(n))
			s.LongestHigh = max(s.LongestHigh, n)
		} else {
			low = append(low, float64(n))
			s.LongestLow = max(s.LongestLow, n)
		}
	}

	s.HighStreaks = len(high)
	s.LowStreaks = len(low)
	s.AvgHigh = statistics.Mean(high)
	s.AvgLow = statistics.Mean(low)
	s.Current = kinds[len(kinds)-1]
	s.CurrentLength = lengths[len(lengths)-1]
	return s
}
