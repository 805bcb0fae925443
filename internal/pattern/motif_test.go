package pattern

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		value float64
		want  Category
	}{
		{1.0, VeryLow},
		{1.49, VeryLow},
		{1.5, Low},
		{1.99, Low},
		{2.0, Medium},
		{2.99, Medium},
		{3.0, High},
		{4.99, High},
		{5.0, VeryHigh},
		{1000, VeryHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.value), "value %v", tt.value)
	}
}

func TestCategoryMidpointsStayInCategory(t *testing.T) {
	for _, c := range Categories {
		assert.Equal(t, c, Categorize(c.Midpoint()), c.String())
	}
}

func TestCount_SingleMotif(t *testing.T) {
	res := Count([]float64{1.0, 1.0, 6.0}, 3, 10)

	require.Len(t, res.Top, 1)
	assert.Equal(t, []Category{VeryLow, VeryLow, VeryHigh}, res.Top[0].Categories)
	assert.Equal(t, "VL-VL-VH", res.Top[0].String())
	assert.Equal(t, 1, res.Top[0].Count)
	assert.Equal(t, 1, res.Windows)
	assert.Equal(t, 1.0, res.Share(res.Top[0]))
}

func TestCount_RankingAndTies(t *testing.T) {
	// L-M, M-L, L-M, M-VH, VH-VL
	values := []float64{1.7, 2.5, 1.6, 2.2, 8.0, 1.1}
	res := Count(values, 2, 0)

	assert.Equal(t, 5, res.Windows)
	require.Len(t, res.Top, 4)
	assert.Equal(t, "L-M", res.Top[0].String())
	assert.Equal(t, 2, res.Top[0].Count)
	// Remaining ties keep first-seen order
	assert.Equal(t, "M-L", res.Top[1].String())
	assert.Equal(t, "M-VH", res.Top[2].String())
	assert.Equal(t, "VH-VL", res.Top[3].String())

	limited := Count(values, 2, 2)
	require.Len(t, limited.Top, 2)
	assert.Equal(t, "M-L", limited.Top[1].String())
}

func TestCount_TooShort(t *testing.T) {
	res := Count([]float64{1.0, 2.0}, 3, 10)

	assert.Empty(t, res.Top)
	assert.Zero(t, res.Windows)
	assert.Zero(t, res.Share(Motif{Count: 1}))
}

func TestMotifJSON(t *testing.T) {
	data, err := json.Marshal(Motif{Categories: []Category{High, Medium}, Count: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"pattern":"H-M","count":3}`, string(data))
}
