package pattern

import (
	"encoding/json"
	"sort"
	"strings"
)

// Motif is an ordered sequence of categories and how often it occurred.
type Motif struct {
	Categories []Category
	Count      int
}

// String joins the category labels, e.g. "VL-VL-VH".
func (m Motif) String() string {
	labels := make([]string, len(m.Categories))
	for i, c := range m.Categories {
		labels[i] = c.String()
	}
	return strings.Join(labels, "-")
}

// MarshalJSON renders the motif with its labels rather than ordinals.
func (m Motif) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Pattern string `json:"pattern"`
		Count   int    `json:"count"`
	}{m.String(), m.Count})
}

// MotifResult holds the most frequent motifs of one length.
type MotifResult struct {
	Length  int     `json:"length"`
	Windows int     `json:"windows"`
	Top     []Motif `json:"top"`
}

// Share is the fraction of all windows that matched this motif.
func (r MotifResult) Share(m Motif) float64 {
	if r.Windows == 0 {
		return 0
	}
	return float64(m.Count) / float64(r.Windows)
}

// Count categorizes values and counts every contiguous window of length
// categories. It returns the topN most frequent motifs; ties keep the order
// in which motifs were first seen. A non-positive topN returns all motifs.
func Count(values []float64, length, topN int) MotifResult {
	res := MotifResult{Length: length}
	if length < 1 || len(values) < length {
		return res
	}

	cats := make([]Category, len(values))
	for i, v := range values {
		cats[i] = Categorize(v)
	}

	index := make(map[string]int)
	var motifs []Motif
	for i := 0; i+length <= len(cats); i++ {
		window := cats[i : i+length]
		key := keyOf(window)
		if idx, ok := index[key]; ok {
			motifs[idx].Count++
		} else {
			index[key] = len(motifs)
			motifs = append(motifs, Motif{
				Categories: append([]Category(nil), window...),
				Count:      1,
			})
		}
		res.Windows++
	}

	sort.SliceStable(motifs, func(i, j int) bool {
		return motifs[i].Count > motifs[j].Count
	})
	if topN > 0 && topN < len(motifs) {
		motifs = motifs[:topN]
	}
	res.Top = motifs
	return res
}

func keyOf(cats []Category) string {
	var b strings.Builder
	for _, c := range cats {
		b.WriteByte(byte('0' + c))
	}
	return b.String()
}
