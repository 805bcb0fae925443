package randomness

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Verdict is the interpretation of a runs test.
type Verdict string

const (
	VerdictRandom       Verdict = "random"
	VerdictOscillating  Verdict = "oscillating (too many runs)"
	VerdictClustering   Verdict = "clustering (too few runs)"
	VerdictInsufficient Verdict = "insufficient data"
)

// zCritical is the two-sided 95% critical value of the standard normal.
const zCritical = 1.96

// RunsTestResult holds a Wald-Wolfowitz runs test about the median.
type RunsTestResult struct {
	Runs         int     `json:"total_runs"`
	High         int     `json:"n_high"`
	Low          int     `json:"n_low"`
	Expected     float64 `json:"expected_runs"`
	StdDev       float64 `json:"std_runs"`
	Z            float64 `json:"z_score"`
	PValue       float64 `json:"p_value"`
	Verdict      Verdict `json:"interpretation"`
	Insufficient bool    `json:"insufficient"`
}

// IsRandom reports whether the test failed to reject randomness.
func (r RunsTestResult) IsRandom() bool {
	return r.Verdict == VerdictRandom
}

// RunsTest counts runs above and below the median and compares the count
// with its expectation under independence. When every value falls on one
// side of the median only the run count is reported.
func RunsTest(values []float64) RunsTestResult {
	if len(values) == 0 {
		return RunsTestResult{Verdict: VerdictInsufficient, Insufficient: true}
	}

	labels, _ := split(values)
	lengths, _ := runs(labels)

	res := RunsTestResult{Runs: len(lengths)}
	for _, l := range labels {
		if l == High {
			res.High++
		} else {
			res.Low++
		}
	}
	if res.High == 0 || res.Low == 0 {
		res.Verdict = VerdictInsufficient
		res.Insufficient = true
		return res
	}

	n1 := float64(res.High)
	n2 := float64(res.Low)
	n := n1 + n2
	res.Expected = 2*n1*n2/n + 1
	res.StdDev = math.Sqrt(2 * n1 * n2 * (2*n1*n2 - n1 - n2) / (n * n * (n - 1)))
	if res.StdDev != 0 {
		res.Z = (float64(res.Runs) - res.Expected) / res.StdDev
	}
	res.PValue = 2 * distuv.UnitNormal.Survival(math.Abs(res.Z))

	switch {
	case math.Abs(res.Z) < zCritical:
		res.Verdict = VerdictRandom
	case res.Z > 0:
		res.Verdict = VerdictOscillating
	default:
		res.Verdict = VerdictClustering
	}
	return res
}
