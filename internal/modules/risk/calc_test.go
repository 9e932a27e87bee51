package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLotSize(t *testing.T) {
	result, err := CalculateLotSize(LotSizeInputs{
		Balance:      10000,
		RiskPct:      2,
		StopLossPips: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, 200.0, result.RiskAmount)
	assert.Equal(t, -200.0, result.PotentialLoss)
	// 200 / (20 pips * $10 per pip per lot) = 1 lot
	assert.InDelta(t, 1.0, result.LotSize, 1e-9)
	assert.Equal(t, 20.0, result.StopLossPips)
}

func TestCalculateLotSize_NegativeStopUsesMagnitude(t *testing.T) {
	result, err := CalculateLotSize(LotSizeInputs{
		Balance:      10000,
		RiskPct:      1,
		StopLossPips: -50,
	})

	require.NoError(t, err)
	assert.Equal(t, 50.0, result.StopLossPips)
	assert.InDelta(t, 0.2, result.LotSize, 1e-9)
}

func TestCalculateLotSize_CustomPipValue(t *testing.T) {
	result, err := CalculateLotSize(LotSizeInputs{
		Balance:      5000,
		RiskPct:      2,
		StopLossPips: 10,
		PipValue:     1, // mini lot pricing
	})

	require.NoError(t, err)
	assert.InDelta(t, 10.0, result.LotSize, 1e-9)
}

func TestCalculateLotSize_InvalidInputs(t *testing.T) {
	testCases := []struct {
		name   string
		inputs LotSizeInputs
	}{
		{"zero balance", LotSizeInputs{Balance: 0, RiskPct: 1, StopLossPips: 20}},
		{"negative balance", LotSizeInputs{Balance: -100, RiskPct: 1, StopLossPips: 20}},
		{"zero risk", LotSizeInputs{Balance: 1000, RiskPct: 0, StopLossPips: 20}},
		{"risk above 100", LotSizeInputs{Balance: 1000, RiskPct: 150, StopLossPips: 20}},
		{"zero stop", LotSizeInputs{Balance: 1000, RiskPct: 1, StopLossPips: 0}},
		{"negative pip value", LotSizeInputs{Balance: 1000, RiskPct: 1, StopLossPips: 20, PipValue: -10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateLotSize(tc.inputs)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCalculatePosition(t *testing.T) {
	result, err := CalculatePosition(PositionInputs{
		AccountSize: 10000,
		RiskPct:     1,
		EntryPrice:  1.1000,
		StopLoss:    1.0950,
		TakeProfit:  1.1100,
	})

	require.NoError(t, err)
	assert.Equal(t, 100.0, result.RiskAmount)
	assert.InDelta(t, 20000.0, result.PositionSize, 1e-6)
	assert.InDelta(t, 200.0, result.PotentialProfit, 1e-6)
	assert.InDelta(t, 2.0, result.RiskReward, 1e-9)
}

func TestCalculatePosition_ShortDirection(t *testing.T) {
	// Stop above entry, target below: distances are absolute
	result, err := CalculatePosition(PositionInputs{
		AccountSize: 10000,
		RiskPct:     2,
		EntryPrice:  1.2500,
		StopLoss:    1.2550,
		TakeProfit:  1.2400,
	})

	require.NoError(t, err)
	assert.InDelta(t, 40000.0, result.PositionSize, 1e-6)
	assert.InDelta(t, 2.0, result.RiskReward, 1e-9)
}

func TestCalculatePosition_InvalidInputs(t *testing.T) {
	testCases := []struct {
		name   string
		inputs PositionInputs
	}{
		{"zero account", PositionInputs{AccountSize: 0, RiskPct: 1, EntryPrice: 1.1, StopLoss: 1.09}},
		{"zero risk", PositionInputs{AccountSize: 1000, RiskPct: 0, EntryPrice: 1.1, StopLoss: 1.09}},
		{"stop equals entry", PositionInputs{AccountSize: 1000, RiskPct: 1, EntryPrice: 1.1, StopLoss: 1.1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculatePosition(tc.inputs)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
