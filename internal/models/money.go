package models

import (
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when an account is opened without an explicit
// currency code.
const DefaultCurrency = "USD"

// moneyScale is the number of decimal places every stored amount keeps.
const moneyScale = 2

// Money is a currency-tagged exact-decimal amount. All binary operations
// require equal currency codes; amounts may be negative.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// NewMoney creates a Money value, validating the ISO-4217 currency code.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if !validCurrencyCode(currency) {
		return Money{}, NewError(ErrCodeValidationRange, "invalid currency code %q: must be a 3-letter ISO-4217 code", currency)
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// moneyFromInt builds a Money in the given currency from a whole amount.
// Used for pinned defaults (penalty fee, minimum balances); the currency
// has already been validated by the balance it is derived from.
func moneyFromInt(amount int64, currency string) Money {
	return Money{Amount: decimal.NewFromInt(amount), Currency: currency}
}

// Add returns m + other. Fails with a currency_mismatch error when the
// currency codes differ; no operation ever converts currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Subtract returns m - other. The result may be negative; balances are
// never clamped to zero.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// Cmp compares m against other: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) (int, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return 0, err
	}
	return m.Amount.Cmp(other.Amount), nil
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// IsNegative reports whether the amount is strictly less than zero.
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// StringFixed renders the amount at the fixed two-decimal scale.
func (m Money) StringFixed() string {
	return m.Amount.StringFixed(moneyScale)
}

func (m Money) String() string {
	return m.StringFixed() + " " + m.Currency
}

func (m Money) requireSameCurrency(other Money) error {
	if m.Currency != other.Currency {
		return NewError(ErrCodeCurrencyMismatch, "currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	return nil
}

func validCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// roundMoney applies the service-wide half-to-even rounding at the fixed
// two-decimal scale. Interest computations round through here so that
// repeated applications stay reproducible.
func roundMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount.RoundBank(moneyScale), Currency: currency}
}
