package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxableTransaction is one finalized invoice or purchase document carrying
// a taxable value and its GST split. CGST/SGST are set for intra-state
// supplies (split equally), IGST for inter-state; the two are mutually
// exclusive on a single record.
type TaxableTransaction struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	DocumentNumber  string          `db:"document_number" json:"document_number"`
	TransactionDate time.Time       `db:"transaction_date" json:"transaction_date"`
	Direction       Direction       `db:"direction" json:"direction"`
	PartyName       string          `db:"party_name" json:"party_name"`
	PartyGSTIN      string          `db:"party_gstin" json:"party_gstin"`
	GSTRate         decimal.Decimal `db:"gst_rate" json:"gst_rate"`
	TaxableValue    decimal.Decimal `db:"taxable_value" json:"taxable_value"`
	CGST            decimal.Decimal `db:"cgst" json:"cgst"`
	SGST            decimal.Decimal `db:"sgst" json:"sgst"`
	IGST            decimal.Decimal `db:"igst" json:"igst"`
	GrandTotal      decimal.Decimal `db:"grand_total" json:"grand_total"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

// TotalTax returns the combined GST amount on the transaction.
func (t *TaxableTransaction) TotalTax() decimal.Decimal {
	return t.CGST.Add(t.SGST).Add(t.IGST)
}

// RateBucket aggregates all transactions sharing one GST rate within a
// period and direction.
type RateBucket struct {
	GSTRate      decimal.Decimal `json:"gst_rate"`
	Count        int             `json:"count"`
	TaxableValue decimal.Decimal `json:"taxable_value"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`
}

// TaxAggregate holds rate-wise buckets plus grand totals for one direction
// over one period.
type TaxAggregate struct {
	Direction    Direction       `json:"direction"`
	TaxableValue decimal.Decimal `json:"taxable_value"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`
	RateBuckets  []RateBucket    `json:"rate_buckets"`
}

// TotalTax returns the combined GST amount across all buckets.
func (a *TaxAggregate) TotalTax() decimal.Decimal {
	return a.CGST.Add(a.SGST).Add(a.IGST)
}

// B2BRow is one invoice-level detail line in a GSTR-1/GSTR-2 report.
type B2BRow struct {
	DocumentNumber string          `json:"document_number"`
	Date           time.Time       `json:"date"`
	PartyName      string          `json:"party_name"`
	PartyGSTIN     string          `json:"party_gstin"`
	TaxableValue   decimal.Decimal `json:"taxable_value"`
	CGST           decimal.Decimal `json:"cgst"`
	SGST           decimal.Decimal `json:"sgst"`
	IGST           decimal.Decimal `json:"igst"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
}

// SupplySection is the detail section of a GSTR-1 or GSTR-2 report:
// document-level B2B rows plus the rate-wise summary for one direction.
type SupplySection struct {
	B2B             []B2BRow        `json:"b2b"`
	RateWiseSummary []RateBucket    `json:"rate_wise_summary"`
	TaxableValue    decimal.Decimal `json:"taxable_value"`
	CGST            decimal.Decimal `json:"cgst"`
	SGST            decimal.Decimal `json:"sgst"`
	IGST            decimal.Decimal `json:"igst"`
}

// NetLiability is the GSTR-3B summary block. Net values are outward minus
// inward per component and may be negative when input tax credit exceeds
// output liability.
type NetLiability struct {
	NetCGST     decimal.Decimal `json:"net_cgst"`
	NetSGST     decimal.Decimal `json:"net_sgst"`
	NetIGST     decimal.Decimal `json:"net_igst"`
	TotalNetTax decimal.Decimal `json:"total_net_tax"`
}

// GSTR3BSection carries outward/inward totals and the net liability summary.
type GSTR3BSection struct {
	OutwardSupplies TaxAggregate `json:"outward_supplies"`
	InwardSupplies  TaxAggregate `json:"inward_supplies"`
	Summary         NetLiability `json:"summary"`
}

// GSTReport is an assembled filing report. Exactly one of Supplies or
// GSTR3B is populated depending on ReportType.
type GSTReport struct {
	ReportType  ReportType     `json:"report_type"`
	PeriodStart time.Time      `json:"period_start"`
	PeriodEnd   time.Time      `json:"period_end"`
	GeneratedOn time.Time      `json:"generated_on"`
	Supplies    *SupplySection `json:"supplies,omitempty"`
	GSTR3B      *GSTR3BSection `json:"gstr3b,omitempty"`
}

// CashflowSummary is the dashboard rollup for one period. Ratio is nil when
// outflow is zero: the quotient is undefined, never NaN or infinity.
type CashflowSummary struct {
	PeriodStart time.Time        `json:"period_start"`
	PeriodEnd   time.Time        `json:"period_end"`
	Inflow      decimal.Decimal  `json:"inflow"`
	Outflow     decimal.Decimal  `json:"outflow"`
	Net         decimal.Decimal  `json:"net"`
	Ratio       *decimal.Decimal `json:"inflow_outflow_ratio"`
}

// TransactionFilters narrows transaction listings.
type TransactionFilters struct {
	From       *time.Time
	To         *time.Time
	Direction  Direction // empty = both
	PartyGSTIN string
	Offset     int
	Limit      int
}
