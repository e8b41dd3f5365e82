package service

import (
	"context"

	"gstbooks/internal/domain"
	"gstbooks/internal/gst"
	"gstbooks/internal/port"
)

// CashflowService provides the dashboard inflow/outflow rollup.
type CashflowService interface {
	Summary(ctx context.Context, sel gst.PeriodSelector) (*domain.CashflowSummary, error)
}

type cashflowService struct {
	txnRepo port.TransactionRepository
}

// NewCashflowService creates a new CashflowService implementation.
func NewCashflowService(txnRepo port.TransactionRepository) CashflowService {
	return &cashflowService{txnRepo: txnRepo}
}

func (s *cashflowService) Summary(ctx context.Context, sel gst.PeriodSelector) (*domain.CashflowSummary, error) {
	period, err := gst.Resolve(sel)
	if err != nil {
		return nil, err
	}

	outTxns, err := s.txnRepo.ListForPeriod(ctx, period.Start, period.End, domain.DirectionOutward)
	if err != nil {
		return nil, err
	}
	inTxns, err := s.txnRepo.ListForPeriod(ctx, period.Start, period.End, domain.DirectionInward)
	if err != nil {
		return nil, err
	}

	outward := gst.Aggregate(outTxns, period, domain.DirectionOutward)
	inward := gst.Aggregate(inTxns, period, domain.DirectionInward)

	inflow := outward.TaxableValue.Add(outward.TotalTax())
	outflow := inward.TaxableValue.Add(inward.TotalTax())

	summary := &domain.CashflowSummary{
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		Inflow:      inflow,
		Outflow:     outflow,
		Net:         inflow.Sub(outflow),
	}

	// Ratio is undefined when nothing flowed out; leave it null rather than
	// emitting NaN or infinity.
	if !outflow.IsZero() {
		r := inflow.DivRound(outflow, 4)
		summary.Ratio = &r
	}

	return summary, nil
}
