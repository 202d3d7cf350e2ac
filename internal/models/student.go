package models

import (
	"time"
)

// StudentChecking is a checking account for student-age holders. It has
// no minimum balance and no maintenance fee; construction requires every
// owner to be eligible for a student account.
type StudentChecking struct {
	AccountRecord
}

// NewStudentChecking opens a student checking account. Both the primary
// and, if present, the secondary owner must satisfy the student
// eligibility rules, otherwise construction fails and no account exists.
func NewStudentChecking(balance Money, secretKey string, primary, secondary *AccountHolder, today time.Time) (*StudentChecking, error) {
	if primary == nil {
		return nil, NewError(ErrCodeValidationRange, "primary owner is required")
	}
	if err := primary.EligibleForStudentAccount(today); err != nil {
		return nil, err
	}
	if secondary != nil {
		if err := secondary.EligibleForStudentAccount(today); err != nil {
			return nil, err
		}
	}

	record, err := newAccountRecord(balance, secretKey, primary, secondary, today)
	if err != nil {
		return nil, err
	}
	return &StudentChecking{AccountRecord: record}, nil
}

func (s *StudentChecking) Record() *AccountRecord { return &s.AccountRecord }

func (s *StudentChecking) Type() AccountType { return AccountTypeStudentChecking }

func (s *StudentChecking) TypeInfo() string {
	return "Student checking account - no minimum balance, no maintenance fee, holders aged 18 to 23"
}

// CanWithdraw reports whether the balance covers amount. Draining the
// balance to exactly zero is allowed; going below is not.
func (s *StudentChecking) CanWithdraw(amount Money) (bool, error) {
	cmp, err := s.Balance.Cmp(amount)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

// Withdraw removes amount from the balance. Violations fail with
// distinct error codes and leave the balance untouched.
func (s *StudentChecking) Withdraw(amount Money) error {
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
func (s *StudentChecking) Deposit(amount Money) error {
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

// TransferTo moves amount from this account into target. Both balances
// mutate together; any validation failure leaves both untouched.
func (s *StudentChecking) TransferTo(amount Money, target Account) error {
	if target == nil {
		return NewError(ErrCodeValidationRange, "target account is required")
	}
	if err := s.validateTransaction(amount, true); err != nil {
		return err
	}

	rec := target.Record()
	if amount.Currency != rec.Balance.Currency {
		return NewError(ErrCodeCurrencyMismatch, "amount currency %s does not match target account currency %s", amount.Currency, rec.Balance.Currency)
	}
	if !rec.IsActive() {
		return NewError(ErrCodeAccountInactive, "target account %s is %s", rec.ID, rec.Status)
	}

	debited, err := s.Balance.Subtract(amount)
	if err != nil {
		return err
	}
	credited, err := rec.Balance.Add(amount)
	if err != nil {
		return err
	}
	s.Balance = debited
	rec.Balance = credited
	return nil
}

// ReceiveTransfer credits amount sent from another account.
func (s *StudentChecking) ReceiveTransfer(amount Money) error {
	return s.Deposit(amount)
}

// ApplyOverdraftPenalty charges the flat penalty fee when the balance is
// negative. It reports whether a charge was made; a non-negative balance
// is not a charge and not an error.
func (s *StudentChecking) ApplyOverdraftPenalty() (bool, error) {
	if !s.Balance.IsNegative() {
		return false, nil
	}
	if err := s.applyPenalty(); err != nil {
		return false, err
	}
	return true, nil
}

