package handlers

import (
	"net/http"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portssvc "github.com/SscSPs/gl_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/gl_ledger_service/internal/dto"
	"github.com/gin-gonic/gin"
)

type auditHandler struct {
	auditService portssvc.AuditService
}

func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditService) {
	h := &auditHandler{auditService: auditService}
	rg.GET("/audit-logs", h.listAuditLogs)
}

// listAuditLogs godoc
// @Summary List audit records
// @Description Lists the company's audit records newest first, optionally for one table and record.
// @Tags audit
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param X-Company-ID header string true "Caller company ID"
// @Param table_name query string false "Audited table" default(journal_entries)
// @Param record_id query string false "Audited record ID"
// @Param limit query int false "Page size (max 100)" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.AuditLogResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /audit-logs [get]
func (h *auditHandler) listAuditLogs(c *gin.Context) {
	_, companyID, ok := identity(c)
	if !ok {
		return
	}

	var params dto.ListAuditLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	recs, err := h.auditService.ListAuditLogs(c.Request.Context(), companyID, domain.AuditLogFilter{
		TableName: params.TableName,
		RecordID:  params.RecordID,
		Limit:     params.Limit,
		Offset:    params.Offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditLogResponses(recs))
}
