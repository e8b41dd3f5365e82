package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gstbooks/internal/config"
	"gstbooks/internal/domain"
	"gstbooks/internal/export"
	"gstbooks/internal/gst"
	"gstbooks/internal/service"
)

// ReportHandler handles GST filing report endpoints.
type ReportHandler struct {
	filingService service.FilingService
	cfg           config.ReportConfig
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(filingService service.FilingService, cfg config.ReportConfig) *ReportHandler {
	return &ReportHandler{filingService: filingService, cfg: cfg}
}

// parsePeriodSelector extracts period parameters from query params.
// defaultKind applies when period_type is absent; custom periods read
// from/to instead of period_value.
func parsePeriodSelector(c *gin.Context, defaultKind domain.PeriodKind) (gst.PeriodSelector, error) {
	sel := gst.PeriodSelector{}

	kind := domain.PeriodKind(c.Query("period_type"))
	if kind == "" {
		kind = defaultKind
	}
	if !domain.ValidPeriodKinds[kind] {
		return sel, fmt.Errorf("invalid 'period_type': must be one of month, quarter, calendar_year, financial_year, custom")
	}
	sel.Kind = kind

	if kind == domain.PeriodCustom {
		fromStr, toStr := c.Query("from"), c.Query("to")
		if fromStr == "" || toStr == "" {
			return sel, fmt.Errorf("custom periods require 'from' and 'to' dates (YYYY-MM-DD)")
		}
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return sel, fmt.Errorf("invalid 'from' date: must be YYYY-MM-DD")
		}
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return sel, fmt.Errorf("invalid 'to' date: must be YYYY-MM-DD")
		}
		sel.Start, sel.End = from, to
		return sel, nil
	}

	sel.Value = c.Query("period_value")
	if sel.Value == "" {
		return sel, fmt.Errorf("'period_value' is required for period_type %s", kind)
	}
	return sel, nil
}

// GetReturn handles GET /api/v1/gst/returns
// @Summary      GST filing report
// @Description  Assembles a GSTR-1, GSTR-2, or GSTR-3B report for the period
// @Tags         gst
// @Produce      json
// @Param        report_type query string true "Report type" Enums(gstr1, gstr2, gstr3b)
// @Param        period_type query string false "Period kind" Enums(month, quarter, calendar_year, financial_year, custom) default(financial_year)
// @Param        period_value query string false "Period value, e.g. 2024-02, 2024-Q1, 2024"
// @Param        from query string false "Custom period start (YYYY-MM-DD)"
// @Param        to query string false "Custom period end (YYYY-MM-DD)"
// @Param        format query string false "Output format" Enums(json, csv, xlsx) default(json)
// @Success      200 {object} APIResponse{data=domain.GSTReport}
// @Failure      400 {object} APIResponse
// @Failure      502 {object} APIResponse
// @Router       /gst/returns [get]
func (h *ReportHandler) GetReturn(c *gin.Context) {
	reportType := domain.ReportType(c.Query("report_type"))
	if !domain.ValidReportTypes[reportType] {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid 'report_type': must be one of gstr1, gstr2, gstr3b")
		return
	}

	format := domain.ExportFormat(c.Query("format"))
	if format == "" {
		format = domain.FormatJSON
	}
	if !domain.ValidExportFormats[format] {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid 'format': must be one of json, csv, xlsx")
		return
	}

	sel, err := parsePeriodSelector(c, domain.PeriodFinancialYear)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	report, err := h.filingService.GetFilingReport(c.Request.Context(), sel, reportType)
	if err != nil {
		HandleError(c, err)
		return
	}

	switch format {
	case domain.FormatCSV:
		h.respondCSV(c, report)
	case domain.FormatXLSX:
		h.respondXLSX(c, report)
	default:
		RespondOK(c, report)
	}
}

func (h *ReportHandler) respondCSV(c *gin.Context, report *domain.GSTReport) {
	var buf bytes.Buffer
	buf.Write(export.BOM)
	if err := export.WriteReportCSV(&buf, report); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(h.cfg.FilerName, report, "csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *ReportHandler) respondXLSX(c *gin.Context, report *domain.GSTReport) {
	var buf bytes.Buffer
	if err := export.WriteReportXLSX(&buf, report, h.cfg.FilerName); err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(h.cfg.FilerName, report, "xlsx")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
