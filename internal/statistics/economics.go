package statistics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lox/crashlab/internal/game"
)

// EconomicStats aggregates the money flowing through a batch of games.
type EconomicStats struct {
	Games        int             `json:"games"`
	TotalFees    decimal.Decimal `json:"total_fees_collected"`
	TotalBurned  decimal.Decimal `json:"total_burned"`
	TotalWagered decimal.Decimal `json:"total_wagered"`
	TotalPaidOut decimal.Decimal `json:"total_paid_out"`
}

// HouseEdge is (wagered - paid out) / wagered as a percentage, 0 when
// nothing was wagered.
func (e EconomicStats) HouseEdge() float64 {
	if !e.TotalWagered.IsPositive() {
		return 0
	}
	return e.TotalWagered.Sub(e.TotalPaidOut).
		Div(e.TotalWagered).
		Mul(decimal.NewFromInt(100)).
		InexactFloat64()
}

// AvgFeePerGame returns the mean fee per game, 0 for an empty batch
func (e EconomicStats) AvgFeePerGame() float64 {
	if e.Games == 0 {
		return 0
	}
	return e.TotalFees.Div(decimal.NewFromInt(int64(e.Games))).InexactFloat64()
}

// Economics sums the round-level money fields of every game.
func Economics(games []game.Game) EconomicStats {
	e := EconomicStats{Games: len(games)}
	for _, g := range games {
		e.TotalFees = e.TotalFees.Add(money(g.TotalFees))
		e.TotalBurned = e.TotalBurned.Add(money(g.Burned))
		e.TotalWagered = e.TotalWagered.Add(money(g.TotalBets))
		e.TotalPaidOut = e.TotalPaidOut.Add(money(g.TotalWins))
	}
	return e
}

// money converts an amount for exact summing; non-finite amounts count as
// zero.
func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(game.Finite(v))
}

// BetPatternStats describes betting activity across games.
type BetPatternStats struct {
	TotalBets        int     `json:"total_bets"`
	GamesWithBets    int     `json:"games_with_bets"`
	GamesWithoutBets int     `json:"games_without_bets"`
	AvgBetsPerGame   float64 `json:"avg_bets_per_game"`
	AvgBetAmount     float64 `json:"avg_bet_amount"`
	TotalWagered     float64 `json:"total_wagered"`
	WinRate          float64 `json:"win_rate"`
}

// BetPatterns summarizes the bets of games that had money wagered on them.
// Average bet amount only considers bets that carry an amount.
func BetPatterns(games []game.Game) BetPatternStats {
	var s BetPatternStats
	var amounts []float64
	won := 0

	for _, g := range games {
		if game.Finite(g.TotalBets) <= 0 {
			continue
		}
		s.GamesWithBets++
		for _, b := range g.Bets {
			s.TotalBets++
			if b.HasAmount() {
				amounts = append(amounts, b.Stake())
			}
			if b.Won() {
				won++
			}
		}
	}
	s.GamesWithoutBets = len(games) - s.GamesWithBets

	if s.TotalBets == 0 {
		return s
	}
	s.AvgBetsPerGame = float64(s.TotalBets) / float64(s.GamesWithBets)
	s.AvgBetAmount = Mean(amounts)
	for _, a := range amounts {
		s.TotalWagered += a
	}
	s.WinRate = float64(won) / float64(s.TotalBets)
	return s
}

// CashoutStats compares where winners cashed out against the crash point.
type CashoutStats struct {
	TotalCashouts int     `json:"total_cashouts"`
	Early         int     `json:"early_cashouts"`
	Late          int     `json:"late_cashouts"`
	AvgRatio      float64 `json:"avg_cashout_ratio"`
	MedianRatio   float64 `json:"median_cashout_ratio"`
}

// Cashouts inspects every winning bet. Ratios are only taken when both the
// cash-out multiplier and the crash multiplier are positive.
func Cashouts(games []game.Game) CashoutStats {
	var s CashoutStats
	var ratios []float64

	for _, g := range games {
		crash, _ := g.OutcomeValue()
		for _, b := range g.Bets {
			if !b.Won() {
				continue
			}
			s.TotalCashouts++
			coef := b.CashoutCoef()
			if coef <= 0 || crash <= 0 {
				continue
			}
			ratios = append(ratios, coef/crash)
			if coef < crash {
				s.Early++
			} else {
				s.Late++
			}
		}
	}

	s.AvgRatio = Mean(ratios)
	s.MedianRatio = Median(ratios)
	return s
}

// DurationStats describes round lengths in seconds.
type DurationStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"avg_duration_seconds"`
	Median float64 `json:"median_duration_seconds"`
	Min    float64 `json:"min_duration_seconds"`
	Max    float64 `json:"max_duration_seconds"`
}

// Durations summarizes round lengths over games with valid timestamps.
func Durations(games []game.Game) DurationStats {
	var secs []float64
	for _, g := range games {
		if d, ok := g.Duration(); ok {
			secs = append(secs, d.Seconds())
		}
	}
	s := Summarize(secs)
	return DurationStats{Count: s.Count, Mean: s.Mean, Median: s.Median, Min: s.Min, Max: s.Max}
}

// Crash is a game ranked by its outcome.
type Crash struct {
	GameNumber int64   `json:"game_number"`
	Outcome    float64 `json:"outcome"`
}

// TopCrashes returns the n highest outcomes, highest first. Games without
// an outcome rank as zero.
func TopCrashes(games []game.Game, n int) []Crash {
	crashes := make([]Crash, 0, len(games))
	for _, g := range games {
		v, _ := g.OutcomeValue()
		crashes = append(crashes, Crash{GameNumber: g.Number, Outcome: v})
	}
	sort.SliceStable(crashes, func(i, j int) bool {
		return crashes[i].Outcome > crashes[j].Outcome
	})
	return head(crashes, n)
}

// Win is a single winning bet.
type Win struct {
	GameNumber int64   `json:"game_number"`
	Wallet     string  `json:"wallet"`
	Amount     float64 `json:"amount"`
	Coef       float64 `json:"coef"`
	WonAmount  float64 `json:"won_amount"`
}

// BiggestWins returns the n largest payouts, largest first.
func BiggestWins(games []game.Game, n int) []Win {
	var wins []Win
	for _, g := range games {
		for _, b := range g.Bets {
			if !b.Won() {
				continue
			}
			wins = append(wins, Win{
				GameNumber: g.Number,
				Wallet:     b.Wallet,
				Amount:     b.Stake(),
				Coef:       b.CashoutCoef(),
				WonAmount:  b.Returned(),
			})
		}
	}
	sort.SliceStable(wins, func(i, j int) bool {
		return wins[i].WonAmount > wins[j].WonAmount
	})
	return head(wins, n)
}

func head[T any](items []T, n int) []T {
	if n < 0 || n >= len(items) {
		return items
	}
	return items[:n]
}
