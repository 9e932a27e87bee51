// Package analytics turns a snapshot of trade records into derived views:
// the equity curve, per-pair and per-strategy performance, and best/worst
// performer lookups.
//
// Every function here is a pure transformation over an immutable snapshot
// supplied by the caller; nothing reads the store or holds state between
// invocations.
package analytics

import (
	"sort"
	"time"

	"github.com/jurnalfx/jurnalfx/internal/modules/journal"
)

// EquityPoint is one point on the equity curve: the account balance after
// the record at Time was applied.
type EquityPoint struct {
	Time    time.Time `json:"time"`
	Balance float64   `json:"balance"`
}

// Stats holds aggregated win/loss statistics for one grouping key
type Stats struct {
	TotalPL   float64 `json:"totalPL"`
	Trades    int     `json:"trades"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	WinRate   float64 `json:"winRate"`
	AveragePL float64 `json:"averagePL"`
}

// Performer is a named Stats entry, used for best/worst lookups
type Performer struct {
	Name string `json:"name"`
	Stats
}

// EquityCurve computes the balance-over-time series for a trade snapshot.
//
// Records are stable-sorted ascending by creation time, so the store's
// insertion order decides ties. The curve starts with a point valued at the
// start balance, placed at the earliest record's timestamp (or now for an
// empty snapshot), then adds one point per record. Withdrawals move the
// balance like any other record. Records without a creation timestamp
// (writes not yet confirmed by the store) are skipped without disturbing
// the ordering of later points.
func EquityCurve(trades []journal.Trade, startBalance float64) []EquityPoint {
	sorted := make([]journal.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	start := time.Now().UTC()
	for _, t := range sorted {
		if !t.CreatedAt.IsZero() {
			start = t.CreatedAt
			break
		}
	}

	curve := []EquityPoint{{Time: start, Balance: startBalance}}

	runningBalance := startBalance
	for _, t := range sorted {
		if t.CreatedAt.IsZero() {
			continue
		}
		runningBalance += t.PL
		curve = append(curve, EquityPoint{Time: t.CreatedAt, Balance: runningBalance})
	}

	return curve
}

// PerformanceBy groups trades with keyFn and aggregates win/loss statistics
// per group. Withdrawal records are excluded. Trades with zero P/L count
// toward the trade total but toward neither wins nor losses. Every returned
// key has at least one trade.
func PerformanceBy(trades []journal.Trade, keyFn func(journal.Trade) string) map[string]Stats {
	out := make(map[string]Stats)

	for _, t := range trades {
		if t.IsWithdrawal() {
			continue
		}

		key := keyFn(t)
		stats := out[key]
		stats.TotalPL += t.PL
		stats.Trades++
		if t.PL > 0 {
			stats.Wins++
		} else if t.PL < 0 {
			stats.Losses++
		}
		out[key] = stats
	}

	for key, stats := range out {
		stats.WinRate = float64(stats.Wins) / float64(stats.Trades) * 100
		stats.AveragePL = stats.TotalPL / float64(stats.Trades)
		out[key] = stats
	}

	return out
}

// ByPair aggregates performance statistics per instrument
func ByPair(trades []journal.Trade) map[string]Stats {
	return PerformanceBy(trades, func(t journal.Trade) string { return t.Pair })
}

// ByStrategy aggregates performance statistics per strategy label
func ByStrategy(trades []journal.Trade) map[string]Stats {
	return PerformanceBy(trades, func(t journal.Trade) string { return t.Strategy })
}

// Best returns the entry with the highest total P/L, or nil for an empty
// map. Ties resolve to the lexicographically smallest key so the result is
// deterministic.
func Best(perf map[string]Stats) *Performer {
	return pick(perf, func(candidate, current Stats) bool {
		return candidate.TotalPL > current.TotalPL
	})
}

// Worst returns the entry with the lowest total P/L, or nil for an empty
// map, with the same deterministic tie-break as Best.
func Worst(perf map[string]Stats) *Performer {
	return pick(perf, func(candidate, current Stats) bool {
		return candidate.TotalPL < current.TotalPL
	})
}

func pick(perf map[string]Stats, better func(candidate, current Stats) bool) *Performer {
	var result *Performer
	for name, stats := range perf {
		switch {
		case result == nil,
			better(stats, result.Stats),
			stats.TotalPL == result.TotalPL && name < result.Name:
			result = &Performer{Name: name, Stats: stats}
		}
	}
	return result
}
