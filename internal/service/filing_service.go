package service

import (
	"context"

	"gstbooks/internal/config"
	"gstbooks/internal/domain"
	"gstbooks/internal/gst"
	"gstbooks/internal/port"
)

// FilingService computes GST filing reports. Each call resolves the period,
// fetches the finalized transactions it needs, and recomputes the report
// from scratch; nothing is cached or persisted.
type FilingService interface {
	GetFilingReport(ctx context.Context, sel gst.PeriodSelector, reportType domain.ReportType) (*domain.GSTReport, error)
}

type filingService struct {
	txnRepo port.TransactionRepository
	cfg     config.ReportConfig
}

// NewFilingService creates a new FilingService implementation.
func NewFilingService(txnRepo port.TransactionRepository, cfg config.ReportConfig) FilingService {
	return &filingService{txnRepo: txnRepo, cfg: cfg}
}

func (s *filingService) GetFilingReport(ctx context.Context, sel gst.PeriodSelector, reportType domain.ReportType) (*domain.GSTReport, error) {
	period, err := gst.Resolve(sel)
	if err != nil {
		return nil, err
	}

	// GSTR-1 only reads outward supplies, GSTR-2 only inward; GSTR-3B nets
	// one against the other.
	var outward, inward domain.TaxAggregate
	var detail []domain.B2BRow

	switch reportType {
	case domain.ReportGSTR1:
		txns, err := s.txnRepo.ListForPeriod(ctx, period.Start, period.End, domain.DirectionOutward)
		if err != nil {
			return nil, err
		}
		outward = gst.Aggregate(txns, period, domain.DirectionOutward)
		detail = s.capDetail(gst.DetailRows(txns, period, domain.DirectionOutward))

	case domain.ReportGSTR2:
		txns, err := s.txnRepo.ListForPeriod(ctx, period.Start, period.End, domain.DirectionInward)
		if err != nil {
			return nil, err
		}
		inward = gst.Aggregate(txns, period, domain.DirectionInward)
		detail = s.capDetail(gst.DetailRows(txns, period, domain.DirectionInward))

	case domain.ReportGSTR3B:
		outTxns, err := s.txnRepo.ListForPeriod(ctx, period.Start, period.End, domain.DirectionOutward)
		if err != nil {
			return nil, err
		}
		inTxns, err := s.txnRepo.ListForPeriod(ctx, period.Start, period.End, domain.DirectionInward)
		if err != nil {
			return nil, err
		}
		outward = gst.Aggregate(outTxns, period, domain.DirectionOutward)
		inward = gst.Aggregate(inTxns, period, domain.DirectionInward)
	}

	report := gst.Assemble(reportType, period, outward, inward, detail)
	return &report, nil
}

// capDetail bounds the document-level rows in a single report.
func (s *filingService) capDetail(rows []domain.B2BRow) []domain.B2BRow {
	if s.cfg.MaxDetailRows > 0 && len(rows) > s.cfg.MaxDetailRows {
		return rows[:s.cfg.MaxDetailRows]
	}
	return rows
}
