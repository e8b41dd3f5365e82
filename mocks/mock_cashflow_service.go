package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstbooks/internal/domain"
	"gstbooks/internal/gst"
)

// MockCashflowService is a mock implementation of service.CashflowService.
type MockCashflowService struct {
	mock.Mock
}

func (m *MockCashflowService) Summary(ctx context.Context, sel gst.PeriodSelector) (*domain.CashflowSummary, error) {
	args := m.Called(ctx, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashflowSummary), args.Error(1)
}
