package mocks

import (
	"context"
	"time"

	"github.com/felixbank/bank-back/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockIdempotencyRepository is a mock implementation of
// repository.IdempotencyRepository.
type MockIdempotencyRepository struct {
	mock.Mock
}

// NewMockIdempotencyRepository creates a MockIdempotencyRepository that
// asserts its expectations on test cleanup.
func NewMockIdempotencyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdempotencyRepository {
	m := &MockIdempotencyRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIdempotencyRepository) Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	args := m.Called(ctx, key, requestPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IdempotencyKey), args.Error(1)
}

func (m *MockIdempotencyRepository) Store(ctx context.Context, idemKey *models.IdempotencyKey) error {
	args := m.Called(ctx, idemKey)
	return args.Error(0)
}

func (m *MockIdempotencyRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
