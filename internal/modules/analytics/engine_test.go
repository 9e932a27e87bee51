package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jurnalfx/jurnalfx/internal/modules/journal"
)

func at(offset int) time.Time {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(offset) * time.Minute)
}

func TestEquityCurve(t *testing.T) {
	trades := []journal.Trade{
		{Pair: "EUR/USD", PL: 50, CreatedAt: at(0)},
		{Pair: "GBP/JPY", PL: -20, CreatedAt: at(1)},
		{Pair: "EUR/USD", PL: -20, CreatedAt: at(2)},
		{Pair: journal.WithdrawalPair, Position: journal.PositionWithdrawal, PL: -50, CreatedAt: at(3)},
		{Pair: "USD/JPY", PL: 100, CreatedAt: at(4)},
	}

	curve := EquityCurve(trades, 1000)

	require.Len(t, curve, 6)
	assert.Equal(t, EquityPoint{Time: at(0), Balance: 1000}, curve[0])
	assert.Equal(t, 1050.0, curve[1].Balance)
	assert.Equal(t, 1030.0, curve[2].Balance)
	assert.Equal(t, 1010.0, curve[3].Balance)
	// Withdrawals move the balance like any other record
	assert.Equal(t, 960.0, curve[4].Balance)
	assert.Equal(t, 1060.0, curve[5].Balance)
}

func TestEquityCurve_SortsOutOfOrderInput(t *testing.T) {
	trades := []journal.Trade{
		{Pair: "EUR/USD", PL: -20, CreatedAt: at(5)},
		{Pair: "EUR/USD", PL: 50, CreatedAt: at(0)},
	}

	curve := EquityCurve(trades, 100)

	require.Len(t, curve, 3)
	assert.Equal(t, at(0), curve[0].Time)
	assert.Equal(t, 150.0, curve[1].Balance)
	assert.Equal(t, 130.0, curve[2].Balance)
}

func TestEquityCurve_EmptySnapshot(t *testing.T) {
	curve := EquityCurve(nil, 500)

	require.Len(t, curve, 1)
	assert.Equal(t, 500.0, curve[0].Balance)
	assert.WithinDuration(t, time.Now().UTC(), curve[0].Time, 5*time.Second)
}

func TestEquityCurve_SkipsRecordsWithoutTimestamp(t *testing.T) {
	trades := []journal.Trade{
		{Pair: "EUR/USD", PL: 10}, // no CreatedAt, write not yet confirmed
		{Pair: "EUR/USD", PL: 25, CreatedAt: at(0)},
	}

	curve := EquityCurve(trades, 100)

	require.Len(t, curve, 2)
	assert.Equal(t, at(0), curve[0].Time)
	assert.Equal(t, 125.0, curve[1].Balance)
}

func TestEquityCurve_StableOrderOnEqualTimestamps(t *testing.T) {
	trades := []journal.Trade{
		{Pair: "EUR/USD", PL: 10, CreatedAt: at(0)},
		{Pair: "GBP/JPY", PL: -5, CreatedAt: at(0)},
	}

	curve := EquityCurve(trades, 0)

	require.Len(t, curve, 3)
	assert.Equal(t, 10.0, curve[1].Balance)
	assert.Equal(t, 5.0, curve[2].Balance)
}

func TestByPair(t *testing.T) {
	trades := []journal.Trade{
		{Pair: "EUR/USD", PL: 50, CreatedAt: at(0)},
		{Pair: "EUR/USD", PL: -20, CreatedAt: at(1)},
		{Pair: "GBP/JPY", PL: 30, CreatedAt: at(2)},
		{Pair: journal.WithdrawalPair, Position: journal.PositionWithdrawal, PL: -100, CreatedAt: at(3)},
	}

	perf := ByPair(trades)

	require.Len(t, perf, 2)
	assert.NotContains(t, perf, journal.WithdrawalPair)

	eurusd := perf["EUR/USD"]
	assert.Equal(t, 30.0, eurusd.TotalPL)
	assert.Equal(t, 2, eurusd.Trades)
	assert.Equal(t, 1, eurusd.Wins)
	assert.Equal(t, 1, eurusd.Losses)
	assert.Equal(t, 50.0, eurusd.WinRate)
	assert.Equal(t, 15.0, eurusd.AveragePL)

	gbpjpy := perf["GBP/JPY"]
	assert.Equal(t, 100.0, gbpjpy.WinRate)
}

func TestPerformanceBy_ZeroPLCountsTradeOnly(t *testing.T) {
	trades := []journal.Trade{
		{Pair: "EUR/USD", PL: 0, CreatedAt: at(0)},
		{Pair: "EUR/USD", PL: 10, CreatedAt: at(1)},
	}

	perf := ByPair(trades)

	stats := perf["EUR/USD"]
	assert.Equal(t, 2, stats.Trades)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 0, stats.Losses)
	assert.Equal(t, 50.0, stats.WinRate)
}

func TestByStrategy(t *testing.T) {
	trades := []journal.Trade{
		{Pair: "EUR/USD", Strategy: "Breakout", PL: 40, CreatedAt: at(0)},
		{Pair: "GBP/JPY", Strategy: "Breakout", PL: 10, CreatedAt: at(1)},
		{Pair: "EUR/USD", Strategy: "Scalping", PL: -15, CreatedAt: at(2)},
	}

	perf := ByStrategy(trades)

	require.Len(t, perf, 2)
	assert.Equal(t, 50.0, perf["Breakout"].TotalPL)
	assert.Equal(t, -15.0, perf["Scalping"].TotalPL)
}

func TestBestAndWorst(t *testing.T) {
	perf := map[string]Stats{
		"EUR/USD": {TotalPL: 30},
		"GBP/JPY": {TotalPL: -10},
		"USD/JPY": {TotalPL: 100},
	}

	best := Best(perf)
	require.NotNil(t, best)
	assert.Equal(t, "USD/JPY", best.Name)
	assert.Equal(t, 100.0, best.TotalPL)

	worst := Worst(perf)
	require.NotNil(t, worst)
	assert.Equal(t, "GBP/JPY", worst.Name)
}

func TestBestAndWorst_Empty(t *testing.T) {
	assert.Nil(t, Best(nil))
	assert.Nil(t, Worst(map[string]Stats{}))
}

func TestBestAndWorst_TieResolvesToSmallestKey(t *testing.T) {
	perf := map[string]Stats{
		"GBP/JPY": {TotalPL: 25},
		"AUD/USD": {TotalPL: 25},
		"EUR/USD": {TotalPL: 25},
	}

	// Repeat to catch map iteration order flakiness
	for i := 0; i < 20; i++ {
		assert.Equal(t, "AUD/USD", Best(perf).Name)
		assert.Equal(t, "AUD/USD", Worst(perf).Name)
	}
}

func TestBestAndWorst_SingleEntry(t *testing.T) {
	perf := map[string]Stats{"EUR/USD": {TotalPL: -5}}

	assert.Equal(t, Best(perf), Worst(perf))
}
