package service

import (
	"context"

	"github.com/felixbank/bank-back/internal/models"
	"github.com/google/uuid"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// AccountOpener handles account lifecycle operations.
type AccountOpener interface {
	OpenChecking(ctx context.Context, req OpenCheckingRequest) (models.Account, error)
	OpenStudentChecking(ctx context.Context, req OpenCheckingRequest) (models.Account, error)
	OpenSavings(ctx context.Context, req OpenSavingsRequest) (models.Account, error)
	OpenCreditCard(ctx context.Context, req OpenCreditCardRequest) (models.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (models.Account, error)
	GetAccountAuthorized(ctx context.Context, id uuid.UUID, secretKey string) (models.Account, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Account, error)
	ListByStatus(ctx context.Context, status models.AccountStatus) ([]models.Account, error)
	ListByType(ctx context.Context, accountType models.AccountType) ([]models.Account, error)
	SetAccountStatus(ctx context.Context, id uuid.UUID, status models.AccountStatus) (models.Account, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

// MoneyMover handles deposits, withdrawals, and transfers.
type MoneyMover interface {
	Deposit(ctx context.Context, accountID uuid.UUID, amount models.Money) (models.Account, error)
	Withdraw(ctx context.Context, accountID uuid.UUID, amount models.Money) (models.Account, error)
	Transfer(ctx context.Context, fromID, toID uuid.UUID, amount models.Money) error
}

// Sweeper runs the batch rule evaluations.
type Sweeper interface {
	ApplyLowBalancePenalties(ctx context.Context) (*SweepResult, error)
	ApplyStudentOverdraftPenalties(ctx context.Context) (*SweepResult, error)
	ApplyMaintenanceFees(ctx context.Context) (*SweepResult, error)
	ApplySavingsInterest(ctx context.Context) (*SweepResult, error)
	ApplyCreditCardInterest(ctx context.Context) (*SweepResult, error)
}

// HolderManager handles account holder operations.
type HolderManager interface {
	CreateHolder(ctx context.Context, req CreateHolderRequest) (*models.AccountHolder, error)
	GetHolder(ctx context.Context, id uuid.UUID) (*models.AccountHolder, error)
	ListHolders(ctx context.Context) ([]*models.AccountHolder, error)
	DeleteHolder(ctx context.Context, id uuid.UUID) error
}

// Ensure concrete types implement interfaces
var (
	_ AccountOpener = (*AccountService)(nil)
	_ MoneyMover    = (*TransferService)(nil)
	_ Sweeper       = (*SweepService)(nil)
	_ HolderManager = (*HolderService)(nil)
)
