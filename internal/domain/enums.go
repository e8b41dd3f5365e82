package domain

// Direction distinguishes outward supplies (sales invoices) from inward
// supplies (purchases).
type Direction string

const (
	DirectionOutward Direction = "outward"
	DirectionInward  Direction = "inward"
)

// ValidDirections maps accepted direction query values.
var ValidDirections = map[Direction]bool{
	DirectionOutward: true,
	DirectionInward:  true,
}

// ReportType identifies the statutory GST filing report shape.
type ReportType string

const (
	ReportGSTR1  ReportType = "gstr1"
	ReportGSTR2  ReportType = "gstr2"
	ReportGSTR3B ReportType = "gstr3b"
)

// ValidReportTypes maps accepted report_type query values.
var ValidReportTypes = map[ReportType]bool{
	ReportGSTR1:  true,
	ReportGSTR2:  true,
	ReportGSTR3B: true,
}

// PeriodKind identifies how a period selector value is interpreted.
// Calendar year and financial year are deliberately distinct kinds; callers
// must pick one, there is no plain "year".
type PeriodKind string

const (
	PeriodMonth         PeriodKind = "month"
	PeriodQuarter       PeriodKind = "quarter"
	PeriodCalendarYear  PeriodKind = "calendar_year"
	PeriodFinancialYear PeriodKind = "financial_year"
	PeriodCustom        PeriodKind = "custom"
)

// ValidPeriodKinds maps accepted period_type query values.
var ValidPeriodKinds = map[PeriodKind]bool{
	PeriodMonth:         true,
	PeriodQuarter:       true,
	PeriodCalendarYear:  true,
	PeriodFinancialYear: true,
	PeriodCustom:        true,
}

// ExportFormat identifies the serialization of an assembled report.
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

// ValidExportFormats maps accepted format query values.
var ValidExportFormats = map[ExportFormat]bool{
	FormatJSON: true,
	FormatCSV:  true,
	FormatXLSX: true,
}
