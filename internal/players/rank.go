package players

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Metric selects what players are ranked by.
type Metric string

const (
	MetricBets      Metric = "bets"
	MetricWagered   Metric = "wagered"
	MetricWon       Metric = "won"
	MetricWins      Metric = "wins"
	MetricLosses    Metric = "losses"
	MetricWinRate   Metric = "win_rate"
	MetricNetProfit Metric = "net_profit"
)

// Metrics lists every rankable metric.
var Metrics = []Metric{
	MetricBets, MetricWagered, MetricWon, MetricWins, MetricLosses, MetricWinRate, MetricNetProfit,
}

// DefaultMinWinRateBets is the minimum number of bets a player needs
// before appearing in a win-rate ranking.
const DefaultMinWinRateBets = 10

// ParseMetric validates a metric name.
func ParseMetric(name string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Metrics, m) {
		return "", fmt.Errorf("unknown player metric %q", name)
	}
	return m, nil
}

// Value returns the metric for one aggregate.
func (m Metric) Value(a Aggregate) decimal.Decimal {
	switch m {
	case MetricBets:
		return decimal.NewFromInt(int64(a.Bets))
	case MetricWagered:
		return a.Wagered
	case MetricWon:
		return a.Won
	case MetricWins:
		return decimal.NewFromInt(int64(a.Wins))
	case MetricLosses:
		return decimal.NewFromInt(int64(a.Losses))
	case MetricWinRate:
		return decimal.NewFromFloat(a.WinRate())
	case MetricNetProfit:
		return a.NetProfit()
	default:
		return decimal.Zero
	}
}

// RankOptions tunes Top.
type RankOptions struct {
	MinWinRateBets int // Defaults to DefaultMinWinRateBets
}

// Top returns up to n players ranked by metric, highest first. Ties keep
// first-seen order. A win-rate ranking only considers players with at
// least MinWinRateBets bets. A non-positive n returns every player.
func (l *Ledger) Top(metric Metric, n int, opts RankOptions) []Aggregate {
	minBets := opts.MinWinRateBets
	if minBets <= 0 {
		minBets = DefaultMinWinRateBets
	}

	all := l.All()
	if metric == MetricWinRate {
		all = slices.DeleteFunc(all, func(a Aggregate) bool {
			return a.Bets < minBets
		})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return metric.Value(all[i]).GreaterThan(metric.Value(all[j]))
	})
	if n > 0 && n < len(all) {
		all = all[:n]
	}
	return all
}
