package game

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomesSkipsMissingValues(t *testing.T) {
	games := []Game{
		{Number: 1, Outcome: Float(1.5)},
		{Number: 2},
		{Number: 3, Outcome: Float(math.NaN())},
		{Number: 4, Outcome: Float(12.0)},
	}

	assert.Equal(t, []float64{1.5, 12.0}, Outcomes(games))
}

func TestDecodeRecord(t *testing.T) {
	line := `{"gameNumber":42,"currentCoef":2.35,"totalBets":30,"totalWins":12.5,
		"timeStart":"2025-01-02T10:00:00Z","timeEnd":"2025-01-02T10:00:12.5Z",
		"bets":[{"wallet":"A","amount":10,"betResult":{"coef":1.25,"wonAmount":12.5,"result":true}},
		        {"wallet":"B","amount":20,"betResult":{"result":false}},
		        {"amount":5}]}`

	var g Game
	require.NoError(t, json.Unmarshal([]byte(line), &g))

	v, ok := g.OutcomeValue()
	require.True(t, ok)
	assert.Equal(t, 2.35, v)
	assert.Equal(t, int64(42), g.Number)
	require.Len(t, g.Bets, 3)

	assert.True(t, g.Bets[0].Won())
	assert.Equal(t, 12.5, g.Bets[0].Returned())
	assert.Equal(t, 1.25, g.Bets[0].CashoutCoef())

	assert.False(t, g.Bets[1].Won())
	assert.Zero(t, g.Bets[1].Returned())

	assert.False(t, g.Bets[2].Won(), "missing result counts as a loss")
	assert.Equal(t, "", g.Bets[2].Wallet)

	d, ok := g.Duration()
	require.True(t, ok)
	assert.Equal(t, 12500*time.Millisecond, d)
}

func TestDurationRejectsBadTimestamps(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"missing start", "", "2025-01-02T10:00:00Z"},
		{"missing end", "2025-01-02T10:00:00Z", ""},
		{"garbage", "yesterday", "2025-01-02T10:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Game{TimeStart: tt.start, TimeEnd: tt.end}.Duration()
			assert.False(t, ok)
		})
	}
}

func TestBetStake(t *testing.T) {
	assert.Zero(t, Bet{}.Stake())
	assert.False(t, Bet{}.HasAmount())
	assert.Equal(t, 7.5, Bet{Amount: Float(7.5)}.Stake())
}

func TestBetNonFiniteAmountsAreMissing(t *testing.T) {
	b := Bet{
		Wallet: "A",
		Amount: Float(math.NaN()),
		Result: &BetResult{Won: true, Coef: math.Inf(1), WonAmount: math.Inf(-1)},
	}

	assert.False(t, b.HasAmount())
	assert.Zero(t, b.Stake())
	assert.Zero(t, b.Returned())
	assert.Zero(t, b.CashoutCoef())
	assert.True(t, b.Won())

	assert.Equal(t, 2.5, Finite(2.5))
	assert.Zero(t, Finite(math.NaN()))
	assert.Zero(t, Finite(math.Inf(1)))
}
