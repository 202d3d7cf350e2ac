// Package service implements the business operations over the account
// model: batch rule evaluation, account lifecycle, and money movement.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixbank/bank-back/internal/clock"
	"github.com/felixbank/bank-back/internal/models"
	"github.com/felixbank/bank-back/internal/repository"
	"github.com/google/uuid"
)

// SweepService runs the batch rule evaluations: it pulls candidate
// accounts from the store, applies the variant's own charge or interest
// logic, and persists only the accounts that actually mutated.
//
// Sweeps assume at-most-one in-flight mutation per account; callers
// exposing them concurrently must serialize per account id.
type SweepService struct {
	store  repository.AccountStore
	clock  clock.Clock
	logger *slog.Logger
}

// NewSweepService creates a new SweepService.
func NewSweepService(store repository.AccountStore, clk clock.Clock, logger *slog.Logger) *SweepService {
	return &SweepService{
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

// SweepError records one candidate's failure. Failures never abort the
// rest of the sweep.
type SweepError struct {
	AccountID uuid.UUID
	Err       error
}

func (e SweepError) Error() string {
	return fmt.Sprintf("account %s: %v", e.AccountID, e.Err)
}

// SweepResult reports a sweep's outcome: every candidate the store
// returned (mutated or not), how many charges applied, and the
// per-account failures.
type SweepResult struct {
	Accounts []models.Account
	Applied  int
	Errors   []SweepError
}

// ApplyLowBalancePenalties charges the flat penalty on every Checking
// and Savings account below its minimum balance. There is no cool-down:
// repeated sweeps before the balance recovers re-penalize on every call.
func (s *SweepService) ApplyLowBalancePenalties(ctx context.Context) (*SweepResult, error) {
	candidates, err := s.store.FindDueForPenalty(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts due for penalty: %w", err)
	}

	return s.run(ctx, "low_balance_penalty", candidates, func(account models.Account) (bool, error) {
		holder, ok := account.(models.MinimumBalanceAccount)
		if !ok {
			return false, nil
		}
		return holder.ApplyPenaltyIfBelowMinimum()
	}), nil
}

// ApplyStudentOverdraftPenalties charges the flat penalty on every
// StudentChecking account with a negative balance.
func (s *SweepService) ApplyStudentOverdraftPenalties(ctx context.Context) (*SweepResult, error) {
	candidates, err := s.store.FindOverdrawnStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find overdrawn student accounts: %w", err)
	}

	return s.run(ctx, "student_overdraft_penalty", candidates, func(account models.Account) (bool, error) {
		student, ok := account.(*models.StudentChecking)
		if !ok {
			return false, nil
		}
		return student.ApplyOverdraftPenalty()
	}), nil
}

// ApplyMaintenanceFees charges the monthly maintenance fee on every
// Checking account whose fee is due and advances its date stamp.
func (s *SweepService) ApplyMaintenanceFees(ctx context.Context) (*SweepResult, error) {
	today := s.clock.Today()

	candidates, err := s.store.FindDueForMaintenance(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts due for maintenance: %w", err)
	}

	return s.run(ctx, "maintenance_fee", candidates, func(account models.Account) (bool, error) {
		charger, ok := account.(models.MaintenanceFeeAccount)
		if !ok {
			return false, nil
		}
		return charger.ApplyMonthlyMaintenanceFee(today)
	}), nil
}

// ApplySavingsInterest credits annual interest on every Savings account
// whose interest is due.
func (s *SweepService) ApplySavingsInterest(ctx context.Context) (*SweepResult, error) {
	return s.applyInterest(ctx, models.AccountTypeSavings, "savings_interest")
}

// ApplyCreditCardInterest charges monthly interest on every CreditCard
// account whose interest is due. Accounts with no debt still have their
// date advanced.
func (s *SweepService) ApplyCreditCardInterest(ctx context.Context) (*SweepResult, error) {
	return s.applyInterest(ctx, models.AccountTypeCreditCard, "credit_card_interest")
}

func (s *SweepService) applyInterest(ctx context.Context, accountType models.AccountType, sweep string) (*SweepResult, error) {
	today := s.clock.Today()

	candidates, err := s.store.FindDueForInterest(ctx, accountType, today)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts due for interest: %w", err)
	}

	return s.run(ctx, sweep, candidates, func(account models.Account) (bool, error) {
		bearer, ok := account.(models.InterestBearingAccount)
		if !ok {
			return false, nil
		}
		return bearer.ApplyInterest(today)
	}), nil
}

// run applies one rule to each candidate independently. A candidate's
// failure is collected and the sweep continues; only mutated accounts
// are persisted.
func (s *SweepService) run(
	ctx context.Context,
	sweep string,
	candidates []models.Account,
	apply func(models.Account) (bool, error),
) *SweepResult {
	result := &SweepResult{Accounts: candidates}

	for _, account := range candidates {
		id := account.Record().ID

		applied, err := apply(account)
		if err != nil {
			s.logger.Error("sweep rule failed",
				"sweep", sweep,
				"account_id", id,
				"error", err,
			)
			result.Errors = append(result.Errors, SweepError{AccountID: id, Err: err})
			continue
		}
		if !applied {
			continue
		}

		if err := s.store.Save(ctx, account); err != nil {
			s.logger.Error("failed to persist swept account",
				"sweep", sweep,
				"account_id", id,
				"error", err,
			)
			result.Errors = append(result.Errors, SweepError{AccountID: id, Err: err})
			continue
		}
		result.Applied++
	}

	s.logger.Info("sweep completed",
		"sweep", sweep,
		"candidates", len(result.Accounts),
		"applied", result.Applied,
		"failures", len(result.Errors),
	)
	return result
}
