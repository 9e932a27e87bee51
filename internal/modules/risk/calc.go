// Package risk implements the position-size calculator.
//
// Both calculators are pure: they validate their inputs, do the arithmetic
// and return a value. Invalid inputs surface as ErrInvalidInput failures
// rather than silently defaulted results.
package risk

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks input validation failures. Callers can branch on it
// with errors.Is to map the failure to a client error.
var ErrInvalidInput = errors.New("invalid input")

// DefaultPipValue is the per-pip value of one standard lot for USD-quoted
// pairs (100,000 units, $10 per pip). Non-USD quotes would need a quote
// conversion rate; the calculator keeps the upstream simplification.
const DefaultPipValue = 10.0

// LotSizeInputs describes a planned position sized by stop distance in pips
type LotSizeInputs struct {
	Balance      float64 `json:"balance"`
	RiskPct      float64 `json:"riskPercentage"`
	StopLossPips float64 `json:"stopLossPips"`
	PipValue     float64 `json:"pipValue,omitempty"` // defaults to DefaultPipValue
}

// LotSizeResult is the recommended position size for LotSizeInputs
type LotSizeResult struct {
	LotSize       float64 `json:"lotSize"`
	RiskAmount    float64 `json:"riskAmount"`
	PotentialLoss float64 `json:"potentialLoss"`
	StopLossPips  float64 `json:"stopLossPips"`
}

// CalculateLotSize computes the lot size that risks RiskPct of the balance
// over a stop distance given in pips.
func CalculateLotSize(in LotSizeInputs) (LotSizeResult, error) {
	if in.Balance <= 0 {
		return LotSizeResult{}, fmt.Errorf("%w: balance must be positive, got %f", ErrInvalidInput, in.Balance)
	}
	if in.RiskPct <= 0 || in.RiskPct > 100 {
		return LotSizeResult{}, fmt.Errorf("%w: risk percentage must be in (0, 100], got %f", ErrInvalidInput, in.RiskPct)
	}

	stopPips := math.Abs(in.StopLossPips)
	if stopPips == 0 {
		return LotSizeResult{}, fmt.Errorf("%w: stop loss must not be zero", ErrInvalidInput)
	}

	pipValue := in.PipValue
	if pipValue == 0 {
		pipValue = DefaultPipValue
	}
	if pipValue < 0 {
		return LotSizeResult{}, fmt.Errorf("%w: pip value must be positive, got %f", ErrInvalidInput, pipValue)
	}

	riskAmount := in.Balance * in.RiskPct / 100

	return LotSizeResult{
		LotSize:       riskAmount / (stopPips * pipValue),
		RiskAmount:    riskAmount,
		PotentialLoss: -riskAmount,
		StopLossPips:  stopPips,
	}, nil
}

// PositionInputs describes a planned position sized by entry/stop prices
type PositionInputs struct {
	AccountSize float64 `json:"accountSize"`
	RiskPct     float64 `json:"riskPercentage"`
	EntryPrice  float64 `json:"entryPrice"`
	StopLoss    float64 `json:"stopLoss"`
	TakeProfit  float64 `json:"takeProfit"`
}

// PositionResult is the sizing outcome for PositionInputs
type PositionResult struct {
	PositionSize    float64 `json:"positionSize"` // units of the instrument
	RiskAmount      float64 `json:"riskAmount"`
	PotentialProfit float64 `json:"potentialProfit"`
	RiskReward      float64 `json:"riskReward"`
}

// CalculatePosition sizes a position from entry, stop and target prices so
// that a stop-out loses RiskPct of the account.
func CalculatePosition(in PositionInputs) (PositionResult, error) {
	if in.AccountSize <= 0 {
		return PositionResult{}, fmt.Errorf("%w: account size must be positive, got %f", ErrInvalidInput, in.AccountSize)
	}
	if in.RiskPct <= 0 || in.RiskPct > 100 {
		return PositionResult{}, fmt.Errorf("%w: risk percentage must be in (0, 100], got %f", ErrInvalidInput, in.RiskPct)
	}

	stopDistance := math.Abs(in.EntryPrice - in.StopLoss)
	if stopDistance == 0 {
		return PositionResult{}, fmt.Errorf("%w: stop loss must differ from entry price", ErrInvalidInput)
	}

	riskAmount := in.AccountSize * in.RiskPct / 100
	positionSize := riskAmount / stopDistance
	potentialProfit := math.Abs(in.TakeProfit-in.EntryPrice) * positionSize

	return PositionResult{
		PositionSize:    positionSize,
		RiskAmount:      riskAmount,
		PotentialProfit: potentialProfit,
		RiskReward:      potentialProfit / riskAmount,
	}, nil
}
