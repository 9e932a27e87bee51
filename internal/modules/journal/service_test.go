package journal

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jurnalfx/jurnalfx/internal/modules/accounts"
)

func newTestService(t *testing.T, startBalance float64) (*Service, *Repository, string) {
	t.Helper()
	repo, accountRepo := newTestRepos(t)
	accountID := newTestAccount(t, accountRepo, startBalance)
	log := zerolog.New(nil).Level(zerolog.Disabled)
	return NewService(repo, accountRepo, log), repo, accountID
}

func TestRecordWithdrawal(t *testing.T) {
	svc, _, accountID := newTestService(t, 1000)

	created, err := svc.RecordWithdrawal(accountID, 250)
	require.NoError(t, err)

	assert.Equal(t, WithdrawalPair, created.Pair)
	assert.Equal(t, WithdrawalStrategy, created.Strategy)
	assert.Equal(t, PositionWithdrawal, created.Position)
	assert.Equal(t, -250.0, created.PL)
	assert.Zero(t, created.LotSize)
	assert.Equal(t, "Penarikan sejumlah 250.00", created.Notes)
	assert.True(t, created.IsWithdrawal())
}

func TestRecordWithdrawal_RejectsNonPositiveAmount(t *testing.T) {
	svc, _, accountID := newTestService(t, 1000)

	_, err := svc.RecordWithdrawal(accountID, 0)
	assert.Error(t, err)

	_, err = svc.RecordWithdrawal(accountID, -50)
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	svc, repo, accountID := newTestService(t, 1000)

	for _, pl := range []float64{50, -20, 30} {
		_, err := repo.Create(Trade{AccountID: accountID, Pair: "EUR/USD", Position: PositionBuy, Strategy: "s", PL: pl})
		require.NoError(t, err)
	}
	_, err := svc.RecordWithdrawal(accountID, 40)
	require.NoError(t, err)

	summary, err := svc.Summary(accountID)
	require.NoError(t, err)

	// Withdrawals count toward P/L and balance but not toward trade stats
	assert.Equal(t, 20.0, summary.TotalPL)
	assert.Equal(t, 1020.0, summary.CurrentBalance)
	assert.Equal(t, 3, summary.TotalTrades)
	assert.InDelta(t, 66.666, summary.WinRate, 0.01)
	assert.InDelta(t, 2.0, summary.ProfitPercentage, 1e-9)
}

func TestSummary_EmptyAccount(t *testing.T) {
	svc, _, accountID := newTestService(t, 500)

	summary, err := svc.Summary(accountID)
	require.NoError(t, err)

	assert.Zero(t, summary.TotalPL)
	assert.Equal(t, 500.0, summary.CurrentBalance)
	assert.Zero(t, summary.WinRate)
	assert.Zero(t, summary.ProfitPercentage)
	assert.Zero(t, summary.TotalTrades)
}

func TestSummary_ZeroStartBalance(t *testing.T) {
	svc, repo, accountID := newTestService(t, 0)

	_, err := repo.Create(Trade{AccountID: accountID, Pair: "EUR/USD", Position: PositionBuy, Strategy: "s", PL: 100})
	require.NoError(t, err)

	summary, err := svc.Summary(accountID)
	require.NoError(t, err)

	assert.Equal(t, 100.0, summary.TotalPL)
	assert.Equal(t, 100.0, summary.CurrentBalance)
	// No division by a zero start balance
	assert.Zero(t, summary.ProfitPercentage)
}

func TestSummary_UnknownAccount(t *testing.T) {
	svc, _, _ := newTestService(t, 1000)

	_, err := svc.Summary("missing")
	assert.ErrorIs(t, err, accounts.ErrNotFound)
}
