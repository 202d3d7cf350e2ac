package mocks

import (
	"context"

	"github.com/felixbank/bank-back/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockSweeper is a mock implementation of service.Sweeper.
type MockSweeper struct {
	mock.Mock
}

// NewMockSweeper creates a MockSweeper that asserts its expectations on
// test cleanup.
func NewMockSweeper(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSweeper {
	m := &MockSweeper{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSweeper) ApplyLowBalancePenalties(ctx context.Context) (*service.SweepResult, error) {
	return sweepResult(m.Called(ctx))
}

func (m *MockSweeper) ApplyStudentOverdraftPenalties(ctx context.Context) (*service.SweepResult, error) {
	return sweepResult(m.Called(ctx))
}

func (m *MockSweeper) ApplyMaintenanceFees(ctx context.Context) (*service.SweepResult, error) {
	return sweepResult(m.Called(ctx))
}

func (m *MockSweeper) ApplySavingsInterest(ctx context.Context) (*service.SweepResult, error) {
	return sweepResult(m.Called(ctx))
}

func (m *MockSweeper) ApplyCreditCardInterest(ctx context.Context) (*service.SweepResult, error) {
	return sweepResult(m.Called(ctx))
}

func sweepResult(args mock.Arguments) (*service.SweepResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SweepResult), args.Error(1)
}
