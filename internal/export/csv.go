package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"gstbooks/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// detailColumns is the header row of the B2B detail section.
var detailColumns = []string{
	"Document Number",
	"Date",
	"Party Name",
	"Party GSTIN",
	"Taxable Value",
	"CGST",
	"SGST",
	"IGST",
	"Grand Total",
}

// rateColumns is the header row of the rate-wise summary section.
var rateColumns = []string{
	"GST Rate (%)",
	"Documents",
	"Taxable Value",
	"CGST",
	"SGST",
	"IGST",
}

// WriteReportCSV renders an assembled GST report as CSV. GSTR-1/GSTR-2 get a
// B2B detail section followed by the rate-wise summary and a totals row;
// GSTR-3B gets the outward/inward totals and the net liability block.
func WriteReportCSV(w io.Writer, report *domain.GSTReport) error {
	cw := csv.NewWriter(w)

	switch report.ReportType {
	case domain.ReportGSTR1, domain.ReportGSTR2:
		if err := writeSupplies(cw, report.Supplies); err != nil {
			return err
		}
	case domain.ReportGSTR3B:
		if err := writeGSTR3B(cw, report.GSTR3B); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown report type %q", report.ReportType)
	}

	cw.Flush()
	return cw.Error()
}

func writeSupplies(cw *csv.Writer, s *domain.SupplySection) error {
	if err := cw.Write(detailColumns); err != nil {
		return err
	}
	for i := range s.B2B {
		row := &s.B2B[i]
		record := []string{
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
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	if err := cw.Write(nil); err != nil {
		return err
	}
	if err := cw.Write(rateColumns); err != nil {
		return err
	}
	for i := range s.RateWiseSummary {
		b := &s.RateWiseSummary[i]
		record := []string{
			b.GSTRate.String(),
			strconv.Itoa(b.Count),
			money(b.TaxableValue),
			money(b.CGST),
			money(b.SGST),
			money(b.IGST),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	return cw.Write([]string{
		"Total", "",
		money(s.TaxableValue), money(s.CGST), money(s.SGST), money(s.IGST),
	})
}

func writeGSTR3B(cw *csv.Writer, s *domain.GSTR3BSection) error {
	if err := cw.Write([]string{"Section", "Taxable Value", "CGST", "SGST", "IGST"}); err != nil {
		return err
	}
	for _, row := range []struct {
		label string
		agg   domain.TaxAggregate
	}{
		{"Outward Supplies", s.OutwardSupplies},
		{"Inward Supplies", s.InwardSupplies},
	} {
		record := []string{
			row.label,
			money(row.agg.TaxableValue),
			money(row.agg.CGST),
			money(row.agg.SGST),
			money(row.agg.IGST),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	if err := cw.Write(nil); err != nil {
		return err
	}
	for _, record := range [][]string{
		{"Net CGST", money(s.Summary.NetCGST)},
		{"Net SGST", money(s.Summary.NetSGST)},
		{"Net IGST", money(s.Summary.NetIGST)},
		{"Total Net Tax", money(s.Summary.TotalNetTax)},
	} {
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func money(v decimal.Decimal) string {
	return v.StringFixed(2)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition. Replaces
// non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {filer}_{report_type}_{period_start}_{period_end}.{ext}
func BuildFilename(filerName string, report *domain.GSTReport, ext string) string {
	return fmt.Sprintf("%s_%s_%s_%s.%s",
		SanitizeFilename(filerName),
		report.ReportType,
		report.PeriodStart.Format("2006-01-02"),
		report.PeriodEnd.Format("2006-01-02"),
		ext,
	)
}
