// Package models holds the account financial model: the Money value
// type, account holders, and the closed set of account variants with
// their fee, penalty, and interest rules.
package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountType discriminates the closed set of account variants.
type AccountType string

const (
	AccountTypeChecking        AccountType = "CHECKING"
	AccountTypeSavings         AccountType = "SAVINGS"
	AccountTypeCreditCard      AccountType = "CREDIT_CARD"
	AccountTypeStudentChecking AccountType = "STUDENT_CHECKING"
)

// AccountStatus represents the lifecycle state of an account. Status
// transitions happen outside the core; transactional operations refuse
// any status other than ACTIVE.
type AccountStatus string

const (
	AccountStatusActive AccountStatus = "ACTIVE"
	AccountStatusFrozen AccountStatus = "FROZEN"
	AccountStatusClosed AccountStatus = "CLOSED"
)

// defaultPenaltyFee is the flat charge applied when an account falls
// below its minimum balance, in the balance currency.
const defaultPenaltyFee = 40

// AccountRecord holds the fields every account variant shares. The
// currency of every embedded Money field is pinned from the initial
// balance at construction and never changes.
type AccountRecord struct {
	ID             uuid.UUID
	Balance        Money
	SecretKey      string // bcrypt hash, never the plain secret
	CreationDate   time.Time
	Status         AccountStatus
	PenaltyFee     Money
	PrimaryOwner   *AccountHolder
	SecondaryOwner *AccountHolder
}

// Account is the interface every account variant implements. The set of
// implementations is closed: Checking, Savings, CreditCard and
// StudentChecking.
type Account interface {
	Record() *AccountRecord
	Type() AccountType
	// TypeInfo returns a descriptive string for display, not computation.
	TypeInfo() string
}

// MinimumBalanceAccount is implemented by variants that enforce a
// minimum balance and owe the flat penalty when they fall below it.
type MinimumBalanceAccount interface {
	Account
	MinimumBalance() Money
	IsBelowMinimumBalance() bool
	// ApplyPenaltyIfBelowMinimum subtracts the flat penalty fee when the
	// balance is below the minimum. Reports whether the penalty applied.
	ApplyPenaltyIfBelowMinimum() (bool, error)
}

// MaintenanceFeeAccount is implemented by variants that owe a recurring
// monthly maintenance fee.
type MaintenanceFeeAccount interface {
	Account
	ShouldApplyMonthlyMaintenanceFee(today time.Time) bool
	// ApplyMonthlyMaintenanceFee charges the fee and advances the
	// last-applied date when due; otherwise it is a no-op. The fee and
	// the date stamp always move together.
	ApplyMonthlyMaintenanceFee(today time.Time) (bool, error)
}

// InterestBearingAccount is implemented by variants that accrue interest
// on their own schedule (annual for Savings, monthly for CreditCard).
type InterestBearingAccount interface {
	Account
	ShouldApplyInterest(today time.Time) bool
	// ApplyInterest credits or charges the due interest and advances the
	// last-applied date. Returns false without side effects when not due.
	ApplyInterest(today time.Time) (bool, error)
}

// TransactionalAccount is implemented by every variant and exposes the
// money-movement operations. For credit cards a withdrawal is a
// purchase against the credit line and a deposit is a debt payment.
type TransactionalAccount interface {
	Account
	Withdraw(amount Money) error
	Deposit(amount Money) error
}

// newAccountRecord stamps the shared construction defaults: a fresh ID,
// creationDate = today, status ACTIVE, and the flat penalty fee pinned
// to the balance currency. The primary owner is mandatory.
func newAccountRecord(balance Money, secretKey string, primary, secondary *AccountHolder, today time.Time) (AccountRecord, error) {
	if primary == nil {
		return AccountRecord{}, NewError(ErrCodeValidationRange, "primary owner is required")
	}
	if !validCurrencyCode(balance.Currency) {
		return AccountRecord{}, NewError(ErrCodeValidationRange, "invalid balance currency %q", balance.Currency)
	}

	return AccountRecord{
		ID:             uuid.New(),
		Balance:        balance,
		SecretKey:      secretKey,
		CreationDate:   dateOnly(today),
		Status:         AccountStatusActive,
		PenaltyFee:     moneyFromInt(defaultPenaltyFee, balance.Currency),
		PrimaryOwner:   primary,
		SecondaryOwner: secondary,
	}, nil
}

// applyPenalty subtracts the flat penalty fee from the balance. The
// penalty currency is pinned to the balance currency at construction, so
// a mismatch here means the record was corrupted outside the core.
func (r *AccountRecord) applyPenalty() error {
	newBalance, err := r.Balance.Subtract(r.PenaltyFee)
	if err != nil {
		return err
	}
	r.Balance = newBalance
	return nil
}

// IsActive reports whether transactional operations are permitted.
func (r *AccountRecord) IsActive() bool {
	return r.Status == AccountStatusActive
}

// validateTransaction enforces the shared transactional rules: positive
// amount, matching currency, account ACTIVE, and for outgoing funds a
// balance covering the amount. Each violation carries its own error
// code.
func (r *AccountRecord) validateTransaction(amount Money, needsFunds bool) error {
	if !amount.IsPositive() {
		return NewError(ErrCodeInvalidAmount, "amount must be positive, got %s", amount.StringFixed())
	}
	if amount.Currency != r.Balance.Currency {
		return NewError(ErrCodeCurrencyMismatch, "amount currency %s does not match account currency %s", amount.Currency, r.Balance.Currency)
	}
	if !r.IsActive() {
		return NewError(ErrCodeAccountInactive, "account %s is %s", r.ID, r.Status)
	}
	if needsFunds {
		cmp, err := r.Balance.Cmp(amount)
		if err != nil {
			return err
		}
		if cmp < 0 {
			return NewError(ErrCodeInsufficientFunds, "insufficient funds: balance %s, requested %s", r.Balance, amount)
		}
	}
	return nil
}

// Compile-time checks that each variant implements the capabilities the
// sweeps rely on. StudentChecking deliberately implements none of the
// recurring-charge interfaces.
var (
	_ Account               = (*Checking)(nil)
	_ Account               = (*Savings)(nil)
	_ Account               = (*CreditCard)(nil)
	_ Account               = (*StudentChecking)(nil)
	_ MinimumBalanceAccount = (*Checking)(nil)
	_ MinimumBalanceAccount = (*Savings)(nil)
	_ MaintenanceFeeAccount = (*Checking)(nil)

	_ InterestBearingAccount = (*Savings)(nil)
	_ InterestBearingAccount = (*CreditCard)(nil)

	_ TransactionalAccount = (*Checking)(nil)
	_ TransactionalAccount = (*Savings)(nil)
	_ TransactionalAccount = (*CreditCard)(nil)
	_ TransactionalAccount = (*StudentChecking)(nil)
)
