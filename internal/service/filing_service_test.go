package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbooks/internal/config"
	"gstbooks/internal/domain"
	"gstbooks/internal/gst"
	"gstbooks/mocks"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(docNo string, day time.Time, dir domain.Direction, taxable, cgst, sgst, igst string) domain.TaxableTransaction {
	tv := dec(taxable)
	c, sg, ig := dec(cgst), dec(sgst), dec(igst)
	return domain.TaxableTransaction{
		DocumentNumber:  docNo,
		TransactionDate: day,
		Direction:       dir,
		GSTRate:         dec("18"),
		TaxableValue:    tv,
		CGST:            c,
		SGST:            sg,
		IGST:            ig,
		GrandTotal:      tv.Add(c).Add(sg).Add(ig),
	}
}

func TestGetFilingReport_GSTR1(t *testing.T) {
	repo := new(mocks.MockTransactionRepo)
	svc := NewFilingService(repo, config.ReportConfig{MaxDetailRows: 1000})

	from := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	txns := []domain.TaxableTransaction{
		txn("INV-1", from.AddDate(0, 0, 4), domain.DirectionOutward, "1000", "90", "90", "0"),
		txn("INV-2", from.AddDate(0, 0, 9), domain.DirectionOutward, "2000", "180", "180", "0"),
	}
	repo.On("ListForPeriod", context.Background(), from, to, domain.DirectionOutward).Return(txns, nil)

	report, err := svc.GetFilingReport(context.Background(), gst.PeriodSelector{Kind: domain.PeriodMonth, Value: "2024-02"}, domain.ReportGSTR1)
	require.NoError(t, err)

	assert.Equal(t, from, report.PeriodStart)
	assert.Equal(t, to, report.PeriodEnd)
	require.NotNil(t, report.Supplies)
	assert.Len(t, report.Supplies.B2B, 2)
	assert.True(t, report.Supplies.TaxableValue.Equal(dec("3000")))
	assert.True(t, report.Supplies.CGST.Equal(dec("270")))
	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "ListForPeriod", 1)
}

func TestGetFilingReport_GSTR2_FetchesInwardOnly(t *testing.T) {
	repo := new(mocks.MockTransactionRepo)
	svc := NewFilingService(repo, config.ReportConfig{})

	from := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	repo.On("ListForPeriod", context.Background(), from, to, domain.DirectionInward).
		Return([]domain.TaxableTransaction{
			txn("PUR-1", from, domain.DirectionInward, "500", "30", "30", "0"),
		}, nil)

	report, err := svc.GetFilingReport(context.Background(), gst.PeriodSelector{Kind: domain.PeriodMonth, Value: "2024-02"}, domain.ReportGSTR2)
	require.NoError(t, err)

	require.NotNil(t, report.Supplies)
	assert.True(t, report.Supplies.TaxableValue.Equal(dec("500")))
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "ListForPeriod", context.Background(), from, to, domain.DirectionOutward)
}

func TestGetFilingReport_GSTR3B_FetchesBothDirections(t *testing.T) {
	repo := new(mocks.MockTransactionRepo)
	svc := NewFilingService(repo, config.ReportConfig{})

	from := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	repo.On("ListForPeriod", context.Background(), from, to, domain.DirectionOutward).
		Return([]domain.TaxableTransaction{
			txn("INV-1", from, domain.DirectionOutward, "10000", "900", "900", "0"),
		}, nil)
	repo.On("ListForPeriod", context.Background(), from, to, domain.DirectionInward).
		Return([]domain.TaxableTransaction{
			txn("PUR-1", from, domain.DirectionInward, "4000", "360", "360", "0"),
		}, nil)

	report, err := svc.GetFilingReport(context.Background(), gst.PeriodSelector{Kind: domain.PeriodFinancialYear, Value: "2024"}, domain.ReportGSTR3B)
	require.NoError(t, err)

	require.NotNil(t, report.GSTR3B)
	assert.True(t, report.GSTR3B.Summary.NetCGST.Equal(dec("540")))
	assert.True(t, report.GSTR3B.Summary.TotalNetTax.Equal(dec("1080")))
	repo.AssertNumberOfCalls(t, "ListForPeriod", 2)
}

func TestGetFilingReport_InvalidPeriod(t *testing.T) {
	repo := new(mocks.MockTransactionRepo)
	svc := NewFilingService(repo, config.ReportConfig{})

	_, err := svc.GetFilingReport(context.Background(), gst.PeriodSelector{Kind: domain.PeriodMonth, Value: "bogus"}, domain.ReportGSTR1)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
	repo.AssertNotCalled(t, "ListForPeriod")
}

func TestGetFilingReport_RepoError(t *testing.T) {
	repo := new(mocks.MockTransactionRepo)
	svc := NewFilingService(repo, config.ReportConfig{})

	from := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	wantErr := fmt.Errorf("%w: connection refused", domain.ErrUpstreamFetch)
	repo.On("ListForPeriod", context.Background(), from, to, domain.DirectionOutward).
		Return(nil, wantErr)

	_, err := svc.GetFilingReport(context.Background(), gst.PeriodSelector{Kind: domain.PeriodMonth, Value: "2024-02"}, domain.ReportGSTR1)
	assert.ErrorIs(t, err, domain.ErrUpstreamFetch)
}

func TestGetFilingReport_CapsDetailRows(t *testing.T) {
	repo := new(mocks.MockTransactionRepo)
	svc := NewFilingService(repo, config.ReportConfig{MaxDetailRows: 2})

	from := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	txns := []domain.TaxableTransaction{
		txn("INV-1", from, domain.DirectionOutward, "100", "9", "9", "0"),
		txn("INV-2", from.AddDate(0, 0, 1), domain.DirectionOutward, "100", "9", "9", "0"),
		txn("INV-3", from.AddDate(0, 0, 2), domain.DirectionOutward, "100", "9", "9", "0"),
	}
	repo.On("ListForPeriod", context.Background(), from, to, domain.DirectionOutward).Return(txns, nil)

	report, err := svc.GetFilingReport(context.Background(), gst.PeriodSelector{Kind: domain.PeriodMonth, Value: "2024-02"}, domain.ReportGSTR1)
	require.NoError(t, err)

	assert.Len(t, report.Supplies.B2B, 2)
	// Totals still cover all three documents; the cap only trims detail rows.
	assert.True(t, report.Supplies.TaxableValue.Equal(dec("300")))
}
