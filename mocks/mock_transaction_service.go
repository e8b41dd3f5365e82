package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstbooks/internal/domain"
)

// MockTransactionService is a mock implementation of service.TransactionService.
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) List(ctx context.Context, filters domain.TransactionFilters) ([]domain.TaxableTransaction, int, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.TaxableTransaction), args.Int(1), args.Error(2)
}
