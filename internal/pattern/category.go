// Package pattern discretizes outcomes into ordinal categories and counts
// recurring fixed-length category sequences (motifs).
package pattern

// Category is an ordinal bucket of outcome values.
type Category int

const (
	VeryLow  Category = iota // < 1.5
	Low                      // [1.5, 2.0)
	Medium                   // [2.0, 3.0)
	High                     // [3.0, 5.0)
	VeryHigh                 // >= 5.0
)

// Categories lists every category in ascending order.
var Categories = []Category{VeryLow, Low, Medium, High, VeryHigh}

// Legend describes the category thresholds for reports.
const Legend = "VL=<1.5x, L=1.5-2x, M=2-3x, H=3-5x, VH=>5x"

// Categorize buckets a single outcome.
func Categorize(v float64) Category {
	switch {
	case v < 1.5:
		return VeryLow
	case v < 2.0:
		return Low
	case v < 3.0:
		return Medium
	case v < 5.0:
		return High
	default:
		return VeryHigh
	}
}

// String returns the short label used in motif keys
func (c Category) String() string {
	switch c {
	case VeryLow:
		return "VL"
	case Low:
		return "L"
	case Medium:
		return "M"
	case High:
		return "H"
	case VeryHigh:
		return "VH"
	default:
		return "?"
	}
}

// Midpoint is the representative outcome value of the category.
func (c Category) Midpoint() float64 {
	switch c {
	case VeryLow:
		return 1.2
	case Low:
		return 1.7
	case Medium:
		return 2.5
	case High:
		return 4.0
	default:
		return 7.0
	}
}
