package gst

import (
	"time"

	"gstbooks/internal/domain"
)

// Assemble composes a filing report from the period's aggregates. For GSTR-1
// the detail rows are the outward documents; for GSTR-2 the inward ones.
// GSTR-3B carries no document detail, only totals and the net liability
// (outward minus inward per tax component, negative when input tax credit
// exceeds output liability).
func Assemble(
	reportType domain.ReportType,
	period Period,
	outward, inward domain.TaxAggregate,
	detail []domain.B2BRow,
) domain.GSTReport {
	report := domain.GSTReport{
		ReportType:  reportType,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		GeneratedOn: time.Now().UTC(),
	}

	switch reportType {
	case domain.ReportGSTR1:
		report.Supplies = supplySection(outward, detail)
	case domain.ReportGSTR2:
		report.Supplies = supplySection(inward, detail)
	case domain.ReportGSTR3B:
		netCGST := outward.CGST.Sub(inward.CGST)
		netSGST := outward.SGST.Sub(inward.SGST)
		netIGST := outward.IGST.Sub(inward.IGST)
		report.GSTR3B = &domain.GSTR3BSection{
			OutwardSupplies: outward,
			InwardSupplies:  inward,
			Summary: domain.NetLiability{
				NetCGST:     netCGST,
				NetSGST:     netSGST,
				NetIGST:     netIGST,
				TotalNetTax: netCGST.Add(netSGST).Add(netIGST),
			},
		}
	}

	return report
}

func supplySection(agg domain.TaxAggregate, detail []domain.B2BRow) *domain.SupplySection {
	if detail == nil {
		detail = []domain.B2BRow{}
	}
	return &domain.SupplySection{
		B2B:             detail,
		RateWiseSummary: agg.RateBuckets,
		TaxableValue:    agg.TaxableValue,
		CGST:            agg.CGST,
		SGST:            agg.SGST,
		IGST:            agg.IGST,
	}
}
