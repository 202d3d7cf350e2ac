// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/felixbank/bank-back/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountStore is a mock implementation of repository.AccountStore.
type MockAccountStore struct {
	mock.Mock
}

// NewMockAccountStore creates a MockAccountStore that asserts its
// expectations on test cleanup.
func NewMockAccountStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountStore {
	m := &MockAccountStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountStore) FindByID(ctx context.Context, id uuid.UUID) (models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Account), args.Error(1)
}

func (m *MockAccountStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Account, error) {
	args := m.Called(ctx, ownerID)
	return accounts(args)
}

func (m *MockAccountStore) FindByStatus(ctx context.Context, status models.AccountStatus) ([]models.Account, error) {
	args := m.Called(ctx, status)
	return accounts(args)
}

func (m *MockAccountStore) FindByType(ctx context.Context, accountType models.AccountType) ([]models.Account, error) {
	args := m.Called(ctx, accountType)
	return accounts(args)
}

func (m *MockAccountStore) FindDueForPenalty(ctx context.Context) ([]models.Account, error) {
	args := m.Called(ctx)
	return accounts(args)
}

func (m *MockAccountStore) FindOverdrawnStudents(ctx context.Context) ([]models.Account, error) {
	args := m.Called(ctx)
	return accounts(args)
}

func (m *MockAccountStore) FindDueForMaintenance(ctx context.Context, today time.Time) ([]models.Account, error) {
	args := m.Called(ctx, today)
	return accounts(args)
}

func (m *MockAccountStore) FindDueForInterest(ctx context.Context, accountType models.AccountType, today time.Time) ([]models.Account, error) {
	args := m.Called(ctx, accountType, today)
	return accounts(args)
}

func (m *MockAccountStore) Save(ctx context.Context, account models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountStore) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func accounts(args mock.Arguments) ([]models.Account, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}
