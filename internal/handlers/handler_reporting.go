package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/apperrors"
	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portssvc "github.com/SscSPs/gl_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/gl_ledger_service/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		now:              time.Now,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	rg.GET("/trial-balance", h.getTrialBalance)
	rg.GET("/account-balances", h.getAccountBalances)
}

// asOfDate parses the as_of_date parameter, defaulting to today in UTC.
func (h *reportingHandler) asOfDate(raw string) (time.Time, error) {
	if raw == "" {
		y, m, d := h.now().UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	asOf, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: as_of_date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	return asOf, nil
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Sums posted entries dated on or before as_of_date. Rows carry each account's net on its debit or credit column.
// @Tags reports
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param X-Company-ID header string true "Caller company ID"
// @Param as_of_date query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Router /trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	_, companyID, ok := identity(c)
	if !ok {
		return
	}

	var params dto.ReportQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	asOf, err := h.asOfDate(params.AsOfDate)
	if err != nil {
		respondError(c, err)
		return
	}

	tb, err := h.reportingService.TrialBalance(c.Request.Context(), companyID, asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}

// getAccountBalances godoc
// @Summary Posted account balances
// @Description Returns each account's posted totals netted on its normal side.
// @Tags reports
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param X-Company-ID header string true "Caller company ID"
// @Param as_of_date query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param account_id query string false "Restrict to one account"
// @Success 200 {object} dto.AccountBalancesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Router /account-balances [get]
func (h *reportingHandler) getAccountBalances(c *gin.Context) {
	_, companyID, ok := identity(c)
	if !ok {
		return
	}

	var params dto.ReportQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	asOf, err := h.asOfDate(params.AsOfDate)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.reportingService.AccountBalances(c.Request.Context(), companyID, asOf, params.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountBalancesResponse(report))
}
