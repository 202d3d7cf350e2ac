package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/felixbank/bank-back/internal/models"
	"github.com/felixbank/bank-back/internal/repository"
	"github.com/google/uuid"
)

// TransferService moves money: deposits, withdrawals, and transfers
// between two accounts. Each account id has its own lock; a transfer
// locks both accounts in id order so two opposing transfers cannot
// deadlock.
type TransferService struct {
	store  repository.AccountStore
	logger *slog.Logger

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewTransferService creates a new TransferService.
func NewTransferService(store repository.AccountStore, logger *slog.Logger) *TransferService {
	return &TransferService{
		store:  store,
		logger: logger,
		locks:  make(map[uuid.UUID]*sync.Mutex),
	}
}

// Deposit credits amount to the account. For a credit card this pays
// down debt.
func (s *TransferService) Deposit(ctx context.Context, accountID uuid.UUID, amount models.Money) (models.Account, error) {
	return s.withAccount(ctx, accountID, func(account models.TransactionalAccount) error {
		return account.Deposit(amount)
	})
}

// Withdraw debits amount from the account. For a credit card this is a
// purchase against the credit line.
func (s *TransferService) Withdraw(ctx context.Context, accountID uuid.UUID, amount models.Money) (models.Account, error) {
	return s.withAccount(ctx, accountID, func(account models.TransactionalAccount) error {
		return account.Withdraw(amount)
	})
}

// Transfer moves amount from one account to another. Validation runs
// on both sides before either balance mutates, so a rejected transfer
// leaves both accounts untouched.
func (s *TransferService) Transfer(ctx context.Context, fromID, toID uuid.UUID, amount models.Money) error {
	if fromID == toID {
		return models.NewError(models.ErrCodeValidationRange, "cannot transfer from an account to itself")
	}

	unlock := s.lockPair(fromID, toID)
	defer unlock()

	from, err := s.transactional(ctx, fromID)
	if err != nil {
		return err
	}
	to, err := s.transactional(ctx, toID)
	if err != nil {
		return err
	}

	if err := from.Withdraw(amount); err != nil {
		return err
	}
	if err := to.Deposit(amount); err != nil {
		return err
	}

	if err := s.store.Save(ctx, from); err != nil {
		return err
	}
	if err := s.store.Save(ctx, to); err != nil {
		return err
	}

	s.logger.Info("transfer completed",
		"from_account_id", fromID,
		"to_account_id", toID,
		"amount", amount.String(),
	)
	return nil
}

// withAccount runs a single-account mutation under that account's lock
// and persists the result.
func (s *TransferService) withAccount(ctx context.Context, accountID uuid.UUID, mutate func(models.TransactionalAccount) error) (models.Account, error) {
	lock := s.lockFor(accountID)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.transactional(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := mutate(account); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *TransferService) transactional(ctx context.Context, accountID uuid.UUID) (models.TransactionalAccount, error) {
	account, err := s.store.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	transactional, ok := account.(models.TransactionalAccount)
	if !ok {
		return nil, models.NewError(models.ErrCodeInternalError, "account %s does not support transactions", accountID)
	}
	return transactional, nil
}

// lockFor returns the mutex for an account id, creating it on first
// use. Locks are never evicted; the map grows with the set of accounts
// touched by this process.
func (s *TransferService) lockFor(accountID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[accountID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[accountID] = lock
	}
	return lock
}

// lockPair locks both account mutexes in a stable id order.
func (s *TransferService) lockPair(a, b uuid.UUID) func() {
	first, second := a, b
	if bytesCompare(first, second) > 0 {
		first, second = second, first
	}

	firstLock := s.lockFor(first)
	secondLock := s.lockFor(second)
	firstLock.Lock()
	secondLock.Lock()
	return func() {
		secondLock.Unlock()
		firstLock.Unlock()
	}
}

func bytesCompare(a, b uuid.UUID) int {
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}
