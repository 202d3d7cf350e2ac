package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Savings account bounds. The interest rate is annual and must lie in
// (0, 0.5]; the minimum balance defaults to 1000 with a floor of 100.
var (
	defaultSavingsInterestRate = decimal.RequireFromString("0.0025")
	maxSavingsInterestRate     = decimal.RequireFromString("0.5")
)

const (
	defaultSavingsMinimumBalance = 1000
	savingsMinimumBalanceFloor   = 100
)

// Savings is a deposit account with a minimum balance and annual
// interest. It has no maintenance fee.
type Savings struct {
	AccountRecord
	MinBalance       Money
	InterestRate     decimal.Decimal
	LastInterestDate *time.Time
}

// NewSavings opens a savings account. A zero interestRate selects the
// default 0.0025; any other value is validated against (0, 0.5]. The
// interest schedule starts at the creation date.
func NewSavings(balance Money, secretKey string, primary, secondary *AccountHolder, interestRate decimal.Decimal, today time.Time) (*Savings, error) {
	record, err := newAccountRecord(balance, secretKey, primary, secondary, today)
	if err != nil {
		return nil, err
	}

	start := record.CreationDate
	s := &Savings{
		AccountRecord:    record,
		MinBalance:       moneyFromInt(defaultSavingsMinimumBalance, balance.Currency),
		InterestRate:     defaultSavingsInterestRate,
		LastInterestDate: &start,
	}
	if !interestRate.IsZero() {
		if err := s.SetInterestRate(interestRate); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Savings) Record() *AccountRecord { return &s.AccountRecord }

func (s *Savings) Type() AccountType { return AccountTypeSavings }

func (s *Savings) TypeInfo() string {
	return "Savings account - minimum balance with penalty, annual interest applied automatically"
}

// MinimumBalance returns the floor below which the penalty applies.
func (s *Savings) MinimumBalance() Money { return s.MinBalance }

// SetInterestRate re-validates against (0, 0.5]; an out-of-range value
// fails and leaves the prior rate unchanged.
func (s *Savings) SetInterestRate(rate decimal.Decimal) error {
	if !rate.IsPositive() || rate.GreaterThan(maxSavingsInterestRate) {
		return NewError(ErrCodeValidationRange, "savings interest rate must be in (0, %s], got %s", maxSavingsInterestRate, rate)
	}
	s.InterestRate = rate
	return nil
}

// SetMinimumBalance re-validates against the floor of 100; an
// out-of-range value fails and leaves the prior minimum unchanged.
func (s *Savings) SetMinimumBalance(minimum Money) error {
	if minimum.Currency != s.Balance.Currency {
		return NewError(ErrCodeCurrencyMismatch, "minimum balance currency %s does not match account currency %s", minimum.Currency, s.Balance.Currency)
	}
	if minimum.Amount.LessThan(decimal.NewFromInt(savingsMinimumBalanceFloor)) {
		return NewError(ErrCodeValidationRange, "savings minimum balance must be at least %d, got %s", savingsMinimumBalanceFloor, minimum.StringFixed())
	}
	s.MinBalance = minimum
	return nil
}

// IsBelowMinimumBalance reports whether the balance has fallen below the
// minimum.
func (s *Savings) IsBelowMinimumBalance() bool {
	return s.Balance.Amount.LessThan(s.MinBalance.Amount)
}

// HasSufficientBalance reports whether subtracting amount would keep the
// balance at or above the minimum.
func (s *Savings) HasSufficientBalance(amount Money) (bool, error) {
	after, err := s.Balance.Subtract(amount)
	if err != nil {
		return false, err
	}
	return !after.Amount.LessThan(s.MinBalance.Amount), nil
}

// ShouldApplyInterest reports whether annual interest is due: the
// last-applied date is unset, or strictly more than one year old.
func (s *Savings) ShouldApplyInterest(today time.Time) bool {
	if s.LastInterestDate == nil {
		return true
	}
	return s.LastInterestDate.AddDate(1, 0, 0).Before(dateOnly(today))
}

// CalculateAnnualInterest returns balance * rate, rounded half-to-even
// at two decimals. Interest accrues on the full balance, including
// negative balances.
func (s *Savings) CalculateAnnualInterest() Money {
	return roundMoney(s.Balance.Amount.Mul(s.InterestRate), s.Balance.Currency)
}

// ApplyInterest credits the annual interest and stamps the last-applied
// date when due. Returns false without side effects otherwise.
func (s *Savings) ApplyInterest(today time.Time) (bool, error) {
	if !s.ShouldApplyInterest(today) {
		return false, nil
	}

	newBalance, err := s.Balance.Add(s.CalculateAnnualInterest())
	if err != nil {
		return false, err
	}
	s.Balance = newBalance
	applied := dateOnly(today)
	s.LastInterestDate = &applied
	return true, nil
}

// ApplyPenaltyIfBelowMinimum charges the flat penalty when the balance
// is below the minimum.
func (s *Savings) ApplyPenaltyIfBelowMinimum() (bool, error) {
	if !s.IsBelowMinimumBalance() {
		return false, nil
	}
	if err := s.applyPenalty(); err != nil {
		return false, err
	}
	return true, nil
}

// Withdraw removes amount from the balance. Falling below the minimum
// balance is allowed; the penalty is charged by the evaluation sweep,
// not here. Falling below zero is not allowed.
func (s *Savings) Withdraw(amount Money) error {
	if err := s.validateTransaction(amount, true); err != nil {
		return err
	}

	newBalance, err := s.Balance.Subtract(amount)
	if err != nil {
		return err
	}
	s.Balance = newBalance
	return nil
}

// Deposit adds amount to the balance.
func (s *Savings) Deposit(amount Money) error {
	if err := s.validateTransaction(amount, false); err != nil {
		return err
	}

	newBalance, err := s.Balance.Add(amount)
	if err != nil {
		return err
	}
	s.Balance = newBalance
	return nil
}
