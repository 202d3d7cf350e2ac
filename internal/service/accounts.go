package service

import (
	"context"
	"log/slog"

	"github.com/felixbank/bank-back/internal/auth"
	"github.com/felixbank/bank-back/internal/clock"
	"github.com/felixbank/bank-back/internal/models"
	"github.com/felixbank/bank-back/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountService opens, looks up, and closes accounts. Opening hashes
// the caller-supplied secret key before the account ever reaches the
// store.
type AccountService struct {
	store   repository.AccountStore
	holders repository.HolderRepository
	clock   clock.Clock
	logger  *slog.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(store repository.AccountStore, holders repository.HolderRepository, clk clock.Clock, logger *slog.Logger) *AccountService {
	return &AccountService{
		store:   store,
		holders: holders,
		clock:   clk,
		logger:  logger,
	}
}

// OpenCheckingRequest carries the inputs for opening a checking
// account. Holders aged 18 to 23 are routed to a student checking
// account instead, mirroring what a branch clerk would do.
type OpenCheckingRequest struct {
	Balance          models.Money
	SecretKey        string
	PrimaryOwnerID   uuid.UUID
	SecondaryOwnerID *uuid.UUID
}

// OpenSavingsRequest carries the inputs for opening a savings account.
// A zero InterestRate selects the default rate.
type OpenSavingsRequest struct {
	Balance          models.Money
	SecretKey        string
	PrimaryOwnerID   uuid.UUID
	SecondaryOwnerID *uuid.UUID
	InterestRate     decimal.Decimal
}

// OpenCreditCardRequest carries the inputs for opening a credit card
// account. A zero InterestRate selects the default rate.
type OpenCreditCardRequest struct {
	Balance          models.Money
	SecretKey        string
	PrimaryOwnerID   uuid.UUID
	SecondaryOwnerID *uuid.UUID
	CreditLimit      models.Money
	InterestRate     decimal.Decimal
}

// OpenChecking opens a checking account, or a student checking account
// when the primary owner is student-aged.
func (s *AccountService) OpenChecking(ctx context.Context, req OpenCheckingRequest) (models.Account, error) {
	primary, secondary, err := s.resolveOwners(ctx, req.PrimaryOwnerID, req.SecondaryOwnerID)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()

	var account models.Account
	if primary.EligibleForStudentAccount(today) == nil {
		account, err = models.NewStudentChecking(req.Balance, req.SecretKey, primary, secondary, today)
	} else {
		account, err = models.NewChecking(req.Balance, req.SecretKey, primary, secondary, today)
	}
	if err != nil {
		return nil, err
	}

	return s.open(ctx, account)
}

// OpenStudentChecking opens a student checking account. Unlike
// OpenChecking it never falls back to a regular account: an ineligible
// owner is an error.
func (s *AccountService) OpenStudentChecking(ctx context.Context, req OpenCheckingRequest) (models.Account, error) {
	primary, secondary, err := s.resolveOwners(ctx, req.PrimaryOwnerID, req.SecondaryOwnerID)
	if err != nil {
		return nil, err
	}

	account, err := models.NewStudentChecking(req.Balance, req.SecretKey, primary, secondary, s.clock.Today())
	if err != nil {
		return nil, err
	}
	return s.open(ctx, account)
}

// OpenSavings opens a savings account.
func (s *AccountService) OpenSavings(ctx context.Context, req OpenSavingsRequest) (models.Account, error) {
	primary, secondary, err := s.resolveOwners(ctx, req.PrimaryOwnerID, req.SecondaryOwnerID)
	if err != nil {
		return nil, err
	}

	account, err := models.NewSavings(req.Balance, req.SecretKey, primary, secondary, req.InterestRate, s.clock.Today())
	if err != nil {
		return nil, err
	}
	return s.open(ctx, account)
}

// OpenCreditCard opens a credit card account.
func (s *AccountService) OpenCreditCard(ctx context.Context, req OpenCreditCardRequest) (models.Account, error) {
	primary, secondary, err := s.resolveOwners(ctx, req.PrimaryOwnerID, req.SecondaryOwnerID)
	if err != nil {
		return nil, err
	}

	account, err := models.NewCreditCard(req.Balance, req.SecretKey, primary, secondary, req.CreditLimit, req.InterestRate, s.clock.Today())
	if err != nil {
		return nil, err
	}
	return s.open(ctx, account)
}

// open hashes the secret key and persists the freshly built account.
func (s *AccountService) open(ctx context.Context, account models.Account) (models.Account, error) {
	record := account.Record()

	hash, err := auth.HashSecretKey(record.SecretKey)
	if err != nil {
		return nil, err
	}
	record.SecretKey = hash

	if err := s.store.Save(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("account opened",
		"account_id", record.ID,
		"account_type", account.Type(),
		"primary_owner_id", record.PrimaryOwner.ID,
	)
	return account, nil
}

// GetAccount returns the account with the given id.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (models.Account, error) {
	return s.store.FindByID(ctx, id)
}

// GetAccountAuthorized returns the account only when the supplied
// secret key matches the stored hash.
func (s *AccountService) GetAccountAuthorized(ctx context.Context, id uuid.UUID, secretKey string) (models.Account, error) {
	account, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.VerifySecretKey(account.Record().SecretKey, secretKey); err != nil {
		return nil, err
	}
	return account, nil
}

// ListByOwner returns every account the holder owns, as primary or
// secondary owner.
func (s *AccountService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Account, error) {
	return s.store.FindByOwner(ctx, ownerID)
}

// ListByStatus returns every account in the given status.
func (s *AccountService) ListByStatus(ctx context.Context, status models.AccountStatus) ([]models.Account, error) {
	return s.store.FindByStatus(ctx, status)
}

// ListByType returns every account of the given type.
func (s *AccountService) ListByType(ctx context.Context, accountType models.AccountType) ([]models.Account, error) {
	return s.store.FindByType(ctx, accountType)
}

// SetAccountStatus freezes, unfreezes, or closes an account.
func (s *AccountService) SetAccountStatus(ctx context.Context, id uuid.UUID, status models.AccountStatus) (models.Account, error) {
	switch status {
	case models.AccountStatusActive, models.AccountStatusFrozen, models.AccountStatusClosed:
	default:
		return nil, models.NewError(models.ErrCodeValidationRange, "invalid account status %q", status)
	}

	account, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	account.Record().Status = status
	if err := s.store.Save(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("account status changed", "account_id", id, "status", status)
	return account, nil
}

// DeleteAccount removes the account. Deleting an unknown id fails with
// a not found error.
func (s *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewError(models.ErrCodeNotFound, "account %s not found", id)
	}

	s.logger.Info("account deleted", "account_id", id)
	return nil
}

// resolveOwners loads the primary and optional secondary owner.
func (s *AccountService) resolveOwners(ctx context.Context, primaryID uuid.UUID, secondaryID *uuid.UUID) (*models.AccountHolder, *models.AccountHolder, error) {
	primary, err := s.holders.FindByID(ctx, primaryID)
	if err != nil {
		return nil, nil, err
	}

	var secondary *models.AccountHolder
	if secondaryID != nil {
		secondary, err = s.holders.FindByID(ctx, *secondaryID)
		if err != nil {
			return nil, nil, err
		}
	}
	return primary, secondary, nil
}
