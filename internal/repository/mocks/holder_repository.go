package mocks

import (
	"context"

	"github.com/felixbank/bank-back/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockHolderRepository is a mock implementation of
// repository.HolderRepository.
type MockHolderRepository struct {
	mock.Mock
}

// NewMockHolderRepository creates a MockHolderRepository that asserts
// its expectations on test cleanup.
func NewMockHolderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHolderRepository {
	m := &MockHolderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockHolderRepository) Create(ctx context.Context, holder *models.AccountHolder) error {
	args := m.Called(ctx, holder)
	return args.Error(0)
}

func (m *MockHolderRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.AccountHolder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AccountHolder), args.Error(1)
}

func (m *MockHolderRepository) FindAll(ctx context.Context) ([]*models.AccountHolder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AccountHolder), args.Error(1)
}

func (m *MockHolderRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
