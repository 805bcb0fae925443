package game

import (
	"math"
	"time"
)

// Game is a single completed round.
type Game struct {
	Number    int64    `json:"gameNumber"`
	Outcome   *float64 `json:"currentCoef,omitempty"` // Multiplier the round crashed at
	TotalBets float64  `json:"totalBets"`             // Sum wagered on the round
	TotalWins float64  `json:"totalWins"`             // Sum paid out on the round
	TotalFees float64  `json:"totalFees,omitempty"`
	Burned    float64  `json:"magBurned,omitempty"`
	TimeStart string   `json:"timeStart,omitempty"`
	TimeEnd   string   `json:"timeEnd,omitempty"`
	Bets      []Bet    `json:"bets,omitempty"`
}

// Bet is a single wager placed on a Game.
type Bet struct {
	Wallet string     `json:"wallet,omitempty"`
	Amount *float64   `json:"amount,omitempty"`
	Result *BetResult `json:"betResult,omitempty"`
}

// BetResult describes how a bet settled. Coef and WonAmount are only
// meaningful when Won is set.
type BetResult struct {
	Coef      float64 `json:"coef"`
	WonAmount float64 `json:"wonAmount"`
	Won       bool    `json:"result"`
}

// OutcomeValue returns the crash multiplier and whether it is usable.
func (g Game) OutcomeValue() (float64, bool) {
	if g.Outcome == nil {
		return 0, false
	}
	v := *g.Outcome
	if !isFinite(v) {
		return 0, false
	}
	return v, true
}

// Duration returns the wall-clock length of the round. The second return
// value is false when either timestamp is missing or does not parse.
func (g Game) Duration() (time.Duration, bool) {
	if g.TimeStart == "" || g.TimeEnd == "" {
		return 0, false
	}
	start, err := time.Parse(time.RFC3339Nano, g.TimeStart)
	if err != nil {
		return 0, false
	}
	end, err := time.Parse(time.RFC3339Nano, g.TimeEnd)
	if err != nil {
		return 0, false
	}
	return end.Sub(start), true
}

// Stake returns the amount wagered, treating a missing or non-finite
// amount as zero.
func (b Bet) Stake() float64 {
	if !b.HasAmount() {
		return 0
	}
	return *b.Amount
}

// HasAmount reports whether the bet carried a usable amount.
func (b Bet) HasAmount() bool {
	return b.Amount != nil && isFinite(*b.Amount)
}

// Won reports whether the bet cashed out before the crash.
func (b Bet) Won() bool {
	return b.Result != nil && b.Result.Won
}

// Returned is the amount paid back to the player, zero for losing bets.
func (b Bet) Returned() float64 {
	if !b.Won() {
		return 0
	}
	return Finite(b.Result.WonAmount)
}

// CashoutCoef is the multiplier the player cashed out at, zero for losing bets.
func (b Bet) CashoutCoef() float64 {
	if !b.Won() {
		return 0
	}
	return Finite(b.Result.Coef)
}

// Outcomes extracts the ordered outcome series, skipping games without a
// usable outcome value.
func Outcomes(games []Game) []float64 {
	values := make([]float64, 0, len(games))
	for _, g := range games {
		if v, ok := g.OutcomeValue(); ok {
			values = append(values, v)
		}
	}
	return values
}

// Finite returns v, or zero when v is NaN or infinite. Money fields go
// through it before being summed.
func Finite(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Float returns a pointer to v. Handy for building records in code.
func Float(v float64) *float64 {
	return &v
}
