package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Credit card bounds. The interest rate is annual, accrued monthly at
// rate/12, and must lie in [0.1, 1.0]; the credit limit must lie in
// [100, 100000] in the balance currency.
var (
	defaultCardInterestRate = decimal.RequireFromString("0.2")
	minCardInterestRate     = decimal.RequireFromString("0.1")
	maxCardInterestRate     = decimal.RequireFromString("1.0")

	minCreditLimit = decimal.NewFromInt(100)
	maxCreditLimit = decimal.NewFromInt(100000)

	monthsPerYear = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
)

// CreditCard is a revolving credit account. A negative balance
// represents drawn credit; there is no minimum-balance concept, only
// available credit.
type CreditCard struct {
	AccountRecord
	CreditLimit      Money
	InterestRate     decimal.Decimal
	LastInterestDate *time.Time
}

// NewCreditCard opens a credit card. The credit limit must match the
// balance currency and lie within [100, 100000]. A zero interestRate
// selects the default 0.2. The interest schedule starts at the creation
// date.
func NewCreditCard(balance Money, secretKey string, primary, secondary *AccountHolder, creditLimit Money, interestRate decimal.Decimal, today time.Time) (*CreditCard, error) {
	record, err := newAccountRecord(balance, secretKey, primary, secondary, today)
	if err != nil {
		return nil, err
	}

	start := record.CreationDate
	c := &CreditCard{
		AccountRecord:    record,
		InterestRate:     defaultCardInterestRate,
		LastInterestDate: &start,
	}
	if err := c.setCreditLimit(creditLimit); err != nil {
		return nil, err
	}
	if !interestRate.IsZero() {
		if err := c.SetInterestRate(interestRate); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *CreditCard) Record() *AccountRecord { return &c.AccountRecord }

func (c *CreditCard) Type() AccountType { return AccountTypeCreditCard }

func (c *CreditCard) TypeInfo() string {
	return "Credit card - revolving credit up to the credit limit, monthly interest on outstanding debt"
}

// SetCreditLimit re-validates against [100, 100000]; an out-of-range
// value fails and leaves the prior limit unchanged.
func (c *CreditCard) SetCreditLimit(limit Money) error {
	return c.setCreditLimit(limit)
}

func (c *CreditCard) setCreditLimit(limit Money) error {
	if limit.Currency != c.Balance.Currency {
		return NewError(ErrCodeCurrencyMismatch, "credit limit currency %s does not match account currency %s", limit.Currency, c.Balance.Currency)
	}
	if limit.Amount.LessThan(minCreditLimit) || limit.Amount.GreaterThan(maxCreditLimit) {
		return NewError(ErrCodeValidationRange, "credit limit must be between %s and %s, got %s", minCreditLimit, maxCreditLimit, limit.StringFixed())
	}
	c.CreditLimit = limit
	return nil
}

// SetInterestRate re-validates against [0.1, 1.0]; an out-of-range value
// fails and leaves the prior rate unchanged.
func (c *CreditCard) SetInterestRate(rate decimal.Decimal) error {
	if rate.LessThan(minCardInterestRate) || rate.GreaterThan(maxCardInterestRate) {
		return NewError(ErrCodeValidationRange, "credit card interest rate must be between %s and %s, got %s", minCardInterestRate, maxCardInterestRate, rate)
	}
	c.InterestRate = rate
	return nil
}

// AvailableCredit returns creditLimit + balance. A negative balance
// reduces availability.
func (c *CreditCard) AvailableCredit() Money {
	return Money{Amount: c.CreditLimit.Amount.Add(c.Balance.Amount), Currency: c.Balance.Currency}
}

// CurrentDebt returns max(0, -balance).
func (c *CreditCard) CurrentDebt() Money {
	if c.Balance.IsNegative() {
		return Money{Amount: c.Balance.Amount.Neg(), Currency: c.Balance.Currency}
	}
	return Money{Amount: decimal.Zero, Currency: c.Balance.Currency}
}

// CanMakePurchase reports whether the available credit covers amount.
func (c *CreditCard) CanMakePurchase(amount Money) (bool, error) {
	if err := c.validateTransactionAmount(amount); err != nil {
		return false, err
	}
	return !c.AvailableCredit().Amount.LessThan(amount.Amount), nil
}

// MakePurchase draws amount against the credit line. Fails without side
// effects when the purchase is not permitted.
func (c *CreditCard) MakePurchase(amount Money) error {
	ok, err := c.CanMakePurchase(amount)
	if err != nil {
		return err
	}
	if !ok {
		return NewError(ErrCodeInsufficientFunds, "purchase of %s exceeds available credit %s", amount, c.AvailableCredit())
	}

	newBalance, err := c.Balance.Subtract(amount)
	if err != nil {
		return err
	}
	c.Balance = newBalance
	return nil
}

// PayDebt credits a payment against the drawn balance. The amount must
// be positive; overpayment beyond the current debt is allowed and leaves
// the balance positive.
func (c *CreditCard) PayDebt(amount Money) error {
	if err := c.validateTransactionAmount(amount); err != nil {
		return err
	}

	newBalance, err := c.Balance.Add(amount)
	if err != nil {
		return err
	}
	c.Balance = newBalance
	return nil
}

// Withdraw draws amount against the credit line; it is a purchase.
func (c *CreditCard) Withdraw(amount Money) error {
	return c.MakePurchase(amount)
}

// Deposit credits a payment against the drawn balance.
func (c *CreditCard) Deposit(amount Money) error {
	return c.PayDebt(amount)
}

// ShouldApplyInterest reports whether monthly interest is due: the
// last-applied date is unset, or strictly more than one month old.
func (c *CreditCard) ShouldApplyInterest(today time.Time) bool {
	if c.LastInterestDate == nil {
		return true
	}
	return c.LastInterestDate.AddDate(0, 1, 0).Before(dateOnly(today))
}

// CalculateMonthlyInterest returns debt * rate / 12, rounded half-to-even
// at two decimals. Interest accrues only on drawn credit; with no debt
// the computed interest is zero.
func (c *CreditCard) CalculateMonthlyInterest() Money {
	debt := c.CurrentDebt()
	if debt.IsZero() {
		return debt
	}
	monthly := debt.Amount.Mul(c.InterestRate).Div(monthsPerYear)
	return roundMoney(monthly, c.Balance.Currency)
}

// ApplyInterest charges the monthly interest and stamps the last-applied
// date when due. The date advances even when the computed interest is
// zero, and the call still reports true: applied=true means the account
// was evaluated, not that the balance changed.
func (c *CreditCard) ApplyInterest(today time.Time) (bool, error) {
	if !c.ShouldApplyInterest(today) {
		return false, nil
	}

	interest := c.CalculateMonthlyInterest()
	if !interest.IsZero() {
		newBalance, err := c.Balance.Subtract(interest)
		if err != nil {
			return false, err
		}
		c.Balance = newBalance
	}
	applied := dateOnly(today)
	c.LastInterestDate = &applied
	return true, nil
}

// CreditUtilizationPercentage returns debt / creditLimit * 100, rounded
// half-to-even at two decimals; zero when there is no debt.
func (c *CreditCard) CreditUtilizationPercentage() decimal.Decimal {
	debt := c.CurrentDebt()
	if debt.IsZero() {
		return decimal.Zero.Round(moneyScale)
	}
	return debt.Amount.Div(c.CreditLimit.Amount).Mul(hundred).RoundBank(moneyScale)
}

func (c *CreditCard) validateTransactionAmount(amount Money) error {
	if !amount.IsPositive() {
		return NewError(ErrCodeInvalidAmount, "amount must be positive, got %s", amount.StringFixed())
	}
	if amount.Currency != c.Balance.Currency {
		return NewError(ErrCodeCurrencyMismatch, "amount currency %s does not match account currency %s", amount.Currency, c.Balance.Currency)
	}
	if !c.IsActive() {
		return NewError(ErrCodeAccountInactive, "account %s is %s", c.ID, c.Status)
	}
	return nil
}
