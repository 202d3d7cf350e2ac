package mocks

import (
	"context"

	"github.com/felixbank/bank-back/internal/models"
	"github.com/felixbank/bank-back/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockHolderManager is a mock implementation of service.HolderManager.
type MockHolderManager struct {
	mock.Mock
}

// NewMockHolderManager creates a MockHolderManager that asserts its
// expectations on test cleanup.
func NewMockHolderManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHolderManager {
	m := &MockHolderManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockHolderManager) CreateHolder(ctx context.Context, req service.CreateHolderRequest) (*models.AccountHolder, error) {
	args := m.Called(ctx, req)
	return holder(args)
}

func (m *MockHolderManager) GetHolder(ctx context.Context, id uuid.UUID) (*models.AccountHolder, error) {
	args := m.Called(ctx, id)
	return holder(args)
}

func (m *MockHolderManager) ListHolders(ctx context.Context) ([]*models.AccountHolder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AccountHolder), args.Error(1)
}

func (m *MockHolderManager) DeleteHolder(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func holder(args mock.Arguments) (*models.AccountHolder, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AccountHolder), args.Error(1)
}
