package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"gstbooks/internal/domain"
)

// WriteReportXLSX renders an assembled GST report as an Excel workbook.
// GSTR-1/GSTR-2 get a "B2B" sheet plus a "Rate Summary" sheet; GSTR-3B a
// single "Summary" sheet. Monetary cells carry the exact fixed-point string
// so no float conversion touches the amounts.
func WriteReportXLSX(w io.Writer, report *domain.GSTReport, filerName string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	switch report.ReportType {
	case domain.ReportGSTR1, domain.ReportGSTR2:
		if err := writeSupplySheets(f, report); err != nil {
			return err
		}
	case domain.ReportGSTR3B:
		if err := writeGSTR3BSheet(f, report); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown report type %q", report.ReportType)
	}

	props := &excelize.DocProperties{
		Creator: filerName,
		Title:   fmt.Sprintf("%s %s to %s", report.ReportType, report.PeriodStart.Format("2006-01-02"), report.PeriodEnd.Format("2006-01-02")),
	}
	if err := f.SetDocProps(props); err != nil {
		return err
	}

	return f.Write(w)
}

func writeSupplySheets(f *excelize.File, report *domain.GSTReport) error {
	s := report.Supplies

	const b2bSheet = "B2B"
	if err := f.SetSheetName("Sheet1", b2bSheet); err != nil {
		return err
	}
	header := make([]interface{}, len(detailColumns))
	for i, c := range detailColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(b2bSheet, "A1", &header); err != nil {
		return err
	}
	for i := range s.B2B {
		row := &s.B2B[i]
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			row.DocumentNumber,
			row.Date.Format("2006-01-02"),
			row.PartyName,
			row.PartyGSTIN,
			money(row.TaxableValue),
			money(row.CGST),
			money(row.SGST),
			money(row.IGST),
			money(row.GrandTotal),
		}
		if err := f.SetSheetRow(b2bSheet, cell, &values); err != nil {
			return err
		}
	}

	const rateSheet = "Rate Summary"
	if _, err := f.NewSheet(rateSheet); err != nil {
		return err
	}
	rateHeader := make([]interface{}, len(rateColumns))
	for i, c := range rateColumns {
		rateHeader[i] = c
	}
	if err := f.SetSheetRow(rateSheet, "A1", &rateHeader); err != nil {
		return err
	}
	for i := range s.RateWiseSummary {
		b := &s.RateWiseSummary[i]
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			b.GSTRate.String(),
			b.Count,
			money(b.TaxableValue),
			money(b.CGST),
			money(b.SGST),
			money(b.IGST),
		}
		if err := f.SetSheetRow(rateSheet, cell, &values); err != nil {
			return err
		}
	}
	totalCell := fmt.Sprintf("A%d", len(s.RateWiseSummary)+2)
	totals := []interface{}{
		"Total", "",
		money(s.TaxableValue), money(s.CGST), money(s.SGST), money(s.IGST),
	}
	return f.SetSheetRow(rateSheet, totalCell, &totals)
}

func writeGSTR3BSheet(f *excelize.File, report *domain.GSTReport) error {
	s := report.GSTR3B

	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Section", "Taxable Value", "CGST", "SGST", "IGST"},
		{
			"Outward Supplies",
			money(s.OutwardSupplies.TaxableValue),
			money(s.OutwardSupplies.CGST),
			money(s.OutwardSupplies.SGST),
			money(s.OutwardSupplies.IGST),
		},
		{
			"Inward Supplies",
			money(s.InwardSupplies.TaxableValue),
			money(s.InwardSupplies.CGST),
			money(s.InwardSupplies.SGST),
			money(s.InwardSupplies.IGST),
		},
		{},
		{"Net CGST", money(s.Summary.NetCGST)},
		{"Net SGST", money(s.Summary.NetSGST)},
		{"Net IGST", money(s.Summary.NetIGST)},
		{"Total Net Tax", money(s.Summary.TotalNetTax)},
	}
	for i := range rows {
		if len(rows[i]) == 0 {
			continue
		}
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}
