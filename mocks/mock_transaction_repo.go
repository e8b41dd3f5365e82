package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"gstbooks/internal/domain"
)

// MockTransactionRepo is a mock implementation of port.TransactionRepository.
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) ListForPeriod(ctx context.Context, from, to time.Time, direction domain.Direction) ([]domain.TaxableTransaction, error) {
	args := m.Called(ctx, from, to, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxableTransaction), args.Error(1)
}

func (m *MockTransactionRepo) List(ctx context.Context, filters domain.TransactionFilters) ([]domain.TaxableTransaction, int, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.TaxableTransaction), args.Int(1), args.Error(2)
}
