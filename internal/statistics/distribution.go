package statistics

import "math"

// Bin is one range of the outcome distribution, [Lower, Upper). Upper is
// nil for the open-ended last bin.
type Bin struct {
	Label   string   `json:"label"`
	Lower   float64  `json:"lower"`
	Upper   *float64 `json:"upper,omitempty"`
	Count   int      `json:"count"`
	Percent float64  `json:"percent"`
}

// Distribution partitions outcomes into fixed multiplier ranges.
type Distribution struct {
	Total     int     `json:"total"`
	Bins      []Bin   `json:"bins"`
	BelowTwo  float64 `json:"below_2x_pct"`
	AboveFive float64 `json:"above_5x_pct"`
	AboveTen  float64 `json:"above_10x_pct"`
}

var binEdges = []struct {
	label        string
	lower, upper float64
}{
	{"1.0-1.5x", 1.0, 1.5},
	{"1.5-2.0x", 1.5, 2.0},
	{"2.0-2.5x", 2.0, 2.5},
	{"2.5-3.0x", 2.5, 3.0},
	{"3.0-5.0x", 3.0, 5.0},
	{"5.0-10.0x", 5.0, 10.0},
	{"10.0x+", 10.0, math.Inf(1)},
}

// Distribute bins every value. Anything the first six ranges do not
// capture, including values below 1.0, lands in the open-ended last bin.
func Distribute(values []float64) Distribution {
	d := Distribution{Total: len(values), Bins: make([]Bin, len(binEdges))}
	for i, e := range binEdges {
		d.Bins[i] = Bin{Label: e.label, Lower: e.lower}
		if !math.IsInf(e.upper, 1) {
			upper := e.upper
			d.Bins[i].Upper = &upper
		}
	}
	if len(values) == 0 {
		return d
	}

	last := len(binEdges) - 1
	var below2, above5, above10 int
	for _, v := range values {
		idx := last
		for i := 0; i < last; i++ {
			if v >= binEdges[i].lower && v < binEdges[i].upper {
				idx = i
				break
			}
		}
		d.Bins[idx].Count++

		if v < 2.0 {
			below2++
		}
		if v >= 5.0 {
			above5++
		}
		if v >= 10.0 {
			above10++
		}
	}

	total := float64(len(values))
	for i := range d.Bins {
		d.Bins[i].Percent = float64(d.Bins[i].Count) / total * 100
	}
	d.BelowTwo = float64(below2) / total * 100
	d.AboveFive = float64(above5) / total * 100
	d.AboveTen = float64(above10) / total * 100
	return d
}
