package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gstbooks/internal/domain"
	"gstbooks/internal/service"
)

// TransactionHandler handles transaction listing endpoints.
type TransactionHandler struct {
	transactionService service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// parseTransactionFilters extracts listing filter parameters from query params.
func parseTransactionFilters(c *gin.Context) (domain.TransactionFilters, error) {
	filters := domain.TransactionFilters{
		Offset: 0,
		Limit:  20,
	}

	if fromStr := c.Query("from"); fromStr != "" {
		t, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return filters, fmt.Errorf("invalid 'from' date: must be YYYY-MM-DD")
		}
		filters.From = &t
	}
	if toStr := c.Query("to"); toStr != "" {
		t, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return filters, fmt.Errorf("invalid 'to' date: must be YYYY-MM-DD")
		}
		filters.To = &t
	}

	if dirStr := c.Query("direction"); dirStr != "" {
		dir := domain.Direction(dirStr)
		if !domain.ValidDirections[dir] {
			return filters, fmt.Errorf("invalid 'direction': must be outward or inward")
		}
		filters.Direction = dir
	}

	filters.PartyGSTIN = c.Query("party_gstin")

	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return filters, fmt.Errorf("invalid 'offset': must be a non-negative integer")
		}
		filters.Offset = offset
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return filters, fmt.Errorf("invalid 'limit': must be a positive integer")
		}
		filters.Limit = limit
	}

	return filters, nil
}

// List handles GET /api/v1/transactions
// @Summary      Transaction listing
// @Description  Lists finalized invoices and purchases with direction, date, and GSTIN filters
// @Tags         transactions
// @Produce      json
// @Param        direction query string false "Direction filter" Enums(outward, inward)
// @Param        from query string false "Start date (YYYY-MM-DD)"
// @Param        to query string false "End date (YYYY-MM-DD)"
// @Param        party_gstin query string false "Filter by party GSTIN"
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(20)
// @Success      200 {object} APIResponse{data=[]domain.TaxableTransaction,meta=PagMeta}
// @Failure      400 {object} APIResponse
// @Failure      502 {object} APIResponse
// @Router       /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	filters, err := parseTransactionFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	txns, total, err := h.transactionService.List(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, txns, PagMeta{Total: total, Offset: filters.Offset, Limit: filters.Limit})
}
