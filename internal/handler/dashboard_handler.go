package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbooks/internal/domain"
	"gstbooks/internal/service"
)

// DashboardHandler handles cashflow dashboard endpoints.
type DashboardHandler struct {
	cashflowService service.CashflowService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(cashflowService service.CashflowService) *DashboardHandler {
	return &DashboardHandler{cashflowService: cashflowService}
}

// Cashflow handles GET /api/v1/dashboard/cashflow
// @Summary      Cashflow summary
// @Description  Inflow/outflow rollup for the period; ratio is null when outflow is zero
// @Tags         dashboard
// @Produce      json
// @Param        period_type query string false "Period kind" Enums(month, quarter, calendar_year, financial_year, custom) default(calendar_year)
// @Param        period_value query string false "Period value, e.g. 2024-02, 2024-Q1, 2024"
// @Param        from query string false "Custom period start (YYYY-MM-DD)"
// @Param        to query string false "Custom period end (YYYY-MM-DD)"
// @Success      200 {object} APIResponse{data=domain.CashflowSummary}
// @Failure      400 {object} APIResponse
// @Failure      502 {object} APIResponse
// @Router       /dashboard/cashflow [get]
func (h *DashboardHandler) Cashflow(c *gin.Context) {
	sel, err := parsePeriodSelector(c, domain.PeriodCalendarYear)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	summary, err := h.cashflowService.Summary(c.Request.Context(), sel)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}
