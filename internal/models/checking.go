package models

import (
	"time"
)

// Checking account defaults, in the balance currency.
const (
	defaultCheckingMinimumBalance = 250
	checkingMinimumBalanceFloor   = 250
	defaultMonthlyMaintenanceFee  = 12
)

// Checking is a standard current account: it enforces a minimum balance
// and charges a monthly maintenance fee.
type Checking struct {
	AccountRecord
	MinBalance             Money
	MonthlyMaintenanceFee  Money
	LastMaintenanceFeeDate *time.Time
}

// NewChecking opens a checking account with the default minimum balance
// and maintenance fee pinned to the balance currency. The maintenance
// schedule starts at the creation date.
func NewChecking(balance Money, secretKey string, primary, secondary *AccountHolder, today time.Time) (*Checking, error) {
	record, err := newAccountRecord(balance, secretKey, primary, secondary, today)
	if err != nil {
		return nil, err
	}

	start := record.CreationDate
	return &Checking{
		AccountRecord:          record,
		MinBalance:             moneyFromInt(defaultCheckingMinimumBalance, balance.Currency),
		MonthlyMaintenanceFee:  moneyFromInt(defaultMonthlyMaintenanceFee, balance.Currency),
		LastMaintenanceFeeDate: &start,
	}, nil
}

func (c *Checking) Record() *AccountRecord { return &c.AccountRecord }

func (c *Checking) Type() AccountType { return AccountTypeChecking }

func (c *Checking) TypeInfo() string {
	return "Checking account - minimum balance 250, monthly maintenance fee 12, flat penalty below minimum"
}

// MinimumBalance returns the floor below which the penalty applies.
func (c *Checking) MinimumBalance() Money { return c.MinBalance }

// SetMinimumBalance re-validates against the construction bounds; an
// out-of-range value fails and leaves the prior minimum unchanged.
func (c *Checking) SetMinimumBalance(minimum Money) error {
	if minimum.Currency != c.Balance.Currency {
		return NewError(ErrCodeCurrencyMismatch, "minimum balance currency %s does not match account currency %s", minimum.Currency, c.Balance.Currency)
	}
	if minimum.Amount.LessThan(moneyFromInt(checkingMinimumBalanceFloor, minimum.Currency).Amount) {
		return NewError(ErrCodeValidationRange, "checking minimum balance must be at least %d, got %s", checkingMinimumBalanceFloor, minimum.StringFixed())
	}
	c.MinBalance = minimum
	return nil
}

// IsBelowMinimumBalance reports whether the balance has fallen below the
// minimum. Currencies are pinned at construction, so the comparison
// cannot mismatch.
func (c *Checking) IsBelowMinimumBalance() bool {
	return c.Balance.Amount.LessThan(c.MinBalance.Amount)
}

// ShouldApplyMonthlyMaintenanceFee reports whether the monthly fee is
// due: the last-applied date is unset, or strictly more than one month
// old. On the exact one-month boundary the fee is not yet due.
func (c *Checking) ShouldApplyMonthlyMaintenanceFee(today time.Time) bool {
	if c.LastMaintenanceFeeDate == nil {
		return true
	}
	return c.LastMaintenanceFeeDate.AddDate(0, 1, 0).Before(dateOnly(today))
}

// ApplyMonthlyMaintenanceFee charges the fee and stamps the last-applied
// date when due; calling it again the same day is a no-op.
func (c *Checking) ApplyMonthlyMaintenanceFee(today time.Time) (bool, error) {
	if !c.ShouldApplyMonthlyMaintenanceFee(today) {
		return false, nil
	}

	newBalance, err := c.Balance.Subtract(c.MonthlyMaintenanceFee)
	if err != nil {
		return false, err
	}
	c.Balance = newBalance
	applied := dateOnly(today)
	c.LastMaintenanceFeeDate = &applied
	return true, nil
}

// ApplyPenaltyIfBelowMinimum charges the flat penalty when the balance
// is below the minimum. The penalty is independent of the maintenance
// fee and may stack with it in the same evaluation pass.
func (c *Checking) ApplyPenaltyIfBelowMinimum() (bool, error) {
	if !c.IsBelowMinimumBalance() {
		return false, nil
	}
	if err := c.applyPenalty(); err != nil {
		return false, err
	}
	return true, nil
}

// HasEnoughBalance reports whether subtracting amount would keep the
// balance at or above the minimum.
func (c *Checking) HasEnoughBalance(amount Money) (bool, error) {
	after, err := c.Balance.Subtract(amount)
	if err != nil {
		return false, err
	}
	return !after.Amount.LessThan(c.MinBalance.Amount), nil
}

// Withdraw removes amount from the balance. Falling below the minimum
// balance is allowed; the penalty is charged by the evaluation sweep,
// not here. Falling below zero is not allowed.
func (c *Checking) Withdraw(amount Money) error {
	if err := c.validateTransaction(amount, true); err != nil {
		return err
	}

	newBalance, err := c.Balance.Subtract(amount)
	if err != nil {
		return err
	}
	c.Balance = newBalance
	return nil
}

// Deposit adds amount to the balance.
func (c *Checking) Deposit(amount Money) error {
	if err := c.validateTransaction(amount, false); err != nil {
		return err
	}

	newBalance, err := c.Balance.Add(amount)
	if err != nil {
		return err
	}
	c.Balance = newBalance
	return nil
}
