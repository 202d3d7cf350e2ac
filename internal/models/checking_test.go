package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecking(t *testing.T, balance string) *Checking {
	t.Helper()
	c, err := NewChecking(usd(t, balance), "hashed-secret", holderAged(t, 30), nil, testToday)
	require.NoError(t, err)
	return c
}

func TestNewCheckingDefaults(t *testing.T) {
	c := newTestChecking(t, "500.00")

	assert.Equal(t, AccountTypeChecking, c.Type())
	assert.Equal(t, AccountStatusActive, c.Status)
	assert.Equal(t, "250.00", c.MinBalance.StringFixed())
	assert.Equal(t, "12.00", c.MonthlyMaintenanceFee.StringFixed())
	assert.Equal(t, "40.00", c.PenaltyFee.StringFixed())
	assert.Equal(t, "USD", c.PenaltyFee.Currency)
	require.NotNil(t, c.LastMaintenanceFeeDate)
	assert.Equal(t, c.CreationDate, *c.LastMaintenanceFeeDate)
}

func TestNewCheckingRequiresPrimaryOwner(t *testing.T) {
	_, err := NewChecking(usd(t, "500.00"), "hashed-secret", nil, nil, testToday)
	assert.Equal(t, ErrCodeValidationRange, ErrorCode(err))
}

func TestCheckingSetMinimumBalance(t *testing.T) {
	c := newTestChecking(t, "500.00")

	t.Run("below floor rejected", func(t *testing.T) {
		err := c.SetMinimumBalance(usd(t, "249.99"))
		assert.Equal(t, ErrCodeValidationRange, ErrorCode(err))
		assert.Equal(t, "250.00", c.MinBalance.StringFixed())
	})

	t.Run("currency mismatch rejected", func(t *testing.T) {
		err := c.SetMinimumBalance(eur(t, "300.00"))
		assert.Equal(t, ErrCodeCurrencyMismatch, ErrorCode(err))
		assert.Equal(t, "250.00", c.MinBalance.StringFixed())
	})

	t.Run("valid raise accepted", func(t *testing.T) {
		require.NoError(t, c.SetMinimumBalance(usd(t, "300.00")))
		assert.Equal(t, "300.00", c.MinBalance.StringFixed())
	})
}

func TestCheckingIsBelowMinimumBalance(t *testing.T) {
	assert.True(t, newTestChecking(t, "200.00").IsBelowMinimumBalance())
	assert.False(t, newTestChecking(t, "250.00").IsBelowMinimumBalance())
	assert.False(t, newTestChecking(t, "1000.00").IsBelowMinimumBalance())
}

func TestCheckingPenaltyScenario(t *testing.T) {
	// Balance 200 with minimum 250: penalty of 40 drops it to 160.
	c := newTestChecking(t, "200.00")

	applied, err := c.ApplyPenaltyIfBelowMinimum()
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, "160.00", c.Balance.StringFixed())

	// Repeated sweeps keep re-penalizing until the balance recovers;
	// there is no cool-down on the penalty.
	applied, err = c.ApplyPenaltyIfBelowMinimum()
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, "120.00", c.Balance.StringFixed())
}

func TestCheckingPenaltyNotDue(t *testing.T) {
	c := newTestChecking(t, "250.00")

	applied, err := c.ApplyPenaltyIfBelowMinimum()
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, "250.00", c.Balance.StringFixed())
}

func TestCheckingMaintenanceFeeDueDates(t *testing.T) {
	c := newTestChecking(t, "500.00")
	last := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	c.LastMaintenanceFeeDate = &last

	tests := []struct {
		name  string
		today time.Time
		want  bool
	}{
		{
			name:  "within the month",
			today: time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC),
			want:  false,
		},
		{
			name:  "exactly one month is not yet due",
			today: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			want:  false,
		},
		{
			name:  "one month and a day is due",
			today: time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC),
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ShouldApplyMonthlyMaintenanceFee(tt.today))
		})
	}

	t.Run("unset date is due", func(t *testing.T) {
		c.LastMaintenanceFeeDate = nil
		assert.True(t, c.ShouldApplyMonthlyMaintenanceFee(testToday))
	})
}

func TestCheckingApplyMaintenanceFeeIdempotentSameDay(t *testing.T) {
	c := newTestChecking(t, "500.00")
	c.LastMaintenanceFeeDate = nil

	applied, err := c.ApplyMonthlyMaintenanceFee(testToday)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, "488.00", c.Balance.StringFixed())
	require.NotNil(t, c.LastMaintenanceFeeDate)
	assert.Equal(t, dateOnly(testToday), *c.LastMaintenanceFeeDate)

	// Second call the same day charges nothing: the date was just advanced.
	applied, err = c.ApplyMonthlyMaintenanceFee(testToday)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, "488.00", c.Balance.StringFixed())
}

func TestCheckingFeeAndPenaltyStack(t *testing.T) {
	// An account below minimum with a fee due pays both in one pass.
	c := newTestChecking(t, "200.00")
	c.LastMaintenanceFeeDate = nil

	applied, err := c.ApplyMonthlyMaintenanceFee(testToday)
	require.NoError(t, err)
	assert.True(t, applied)

	penalized, err := c.ApplyPenaltyIfBelowMinimum()
	require.NoError(t, err)
	assert.True(t, penalized)

	assert.Equal(t, "148.00", c.Balance.StringFixed())
}

func TestCheckingHasEnoughBalance(t *testing.T) {
	c := newTestChecking(t, "500.00")

	ok, err := c.HasEnoughBalance(usd(t, "250.00"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.HasEnoughBalance(usd(t, "250.01"))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.HasEnoughBalance(eur(t, "10.00"))
	assert.Equal(t, ErrCodeCurrencyMismatch, ErrorCode(err))
}
