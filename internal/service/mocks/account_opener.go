// Package mocks provides testify mocks for the service interfaces.
package mocks

import (
	"context"

	"github.com/felixbank/bank-back/internal/models"
	"github.com/felixbank/bank-back/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountOpener is a mock implementation of service.AccountOpener.
type MockAccountOpener struct {
	mock.Mock
}

// NewMockAccountOpener creates a MockAccountOpener that asserts its
// expectations on test cleanup.
func NewMockAccountOpener(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountOpener {
	m := &MockAccountOpener{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountOpener) OpenChecking(ctx context.Context, req service.OpenCheckingRequest) (models.Account, error) {
	args := m.Called(ctx, req)
	return account(args)
}

func (m *MockAccountOpener) OpenStudentChecking(ctx context.Context, req service.OpenCheckingRequest) (models.Account, error) {
	args := m.Called(ctx, req)
	return account(args)
}

func (m *MockAccountOpener) OpenSavings(ctx context.Context, req service.OpenSavingsRequest) (models.Account, error) {
	args := m.Called(ctx, req)
	return account(args)
}

func (m *MockAccountOpener) OpenCreditCard(ctx context.Context, req service.OpenCreditCardRequest) (models.Account, error) {
	args := m.Called(ctx, req)
	return account(args)
}

func (m *MockAccountOpener) GetAccount(ctx context.Context, id uuid.UUID) (models.Account, error) {
	args := m.Called(ctx, id)
	return account(args)
}

func (m *MockAccountOpener) GetAccountAuthorized(ctx context.Context, id uuid.UUID, secretKey string) (models.Account, error) {
	args := m.Called(ctx, id, secretKey)
	return account(args)
}

func (m *MockAccountOpener) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Account, error) {
	args := m.Called(ctx, ownerID)
	return accounts(args)
}

func (m *MockAccountOpener) ListByStatus(ctx context.Context, status models.AccountStatus) ([]models.Account, error) {
	args := m.Called(ctx, status)
	return accounts(args)
}

func (m *MockAccountOpener) ListByType(ctx context.Context, accountType models.AccountType) ([]models.Account, error) {
	args := m.Called(ctx, accountType)
	return accounts(args)
}

func (m *MockAccountOpener) SetAccountStatus(ctx context.Context, id uuid.UUID, status models.AccountStatus) (models.Account, error) {
	args := m.Called(ctx, id, status)
	return account(args)
}

func (m *MockAccountOpener) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func account(args mock.Arguments) (models.Account, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Account), args.Error(1)
}

func accounts(args mock.Arguments) ([]models.Account, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}
