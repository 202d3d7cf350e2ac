package mocks

import (
	"context"

	"github.com/felixbank/bank-back/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMoneyMover is a mock implementation of service.MoneyMover.
type MockMoneyMover struct {
	mock.Mock
}

// NewMockMoneyMover creates a MockMoneyMover that asserts its
// expectations on test cleanup.
func NewMockMoneyMover(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMoneyMover {
	m := &MockMoneyMover{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMoneyMover) Deposit(ctx context.Context, accountID uuid.UUID, amount models.Money) (models.Account, error) {
	args := m.Called(ctx, accountID, amount)
	return account(args)
}

func (m *MockMoneyMover) Withdraw(ctx context.Context, accountID uuid.UUID, amount models.Money) (models.Account, error) {
	args := m.Called(ctx, accountID, amount)
	return account(args)
}

func (m *MockMoneyMover) Transfer(ctx context.Context, fromID, toID uuid.UUID, amount models.Money) error {
	args := m.Called(ctx, fromID, toID, amount)
	return args.Error(0)
}
