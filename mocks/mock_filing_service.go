package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstbooks/internal/domain"
	"gstbooks/internal/gst"
)

// MockFilingService is a mock implementation of service.FilingService.
type MockFilingService struct {
	mock.Mock
}

func (m *MockFilingService) GetFilingReport(ctx context.Context, sel gst.PeriodSelector, reportType domain.ReportType) (*domain.GSTReport, error) {
	args := m.Called(ctx, sel, reportType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GSTReport), args.Error(1)
}
