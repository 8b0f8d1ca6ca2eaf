package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portssvc "github.com/SscSPs/gl_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/gl_ledger_service/internal/dto"
	"github.com/SscSPs/gl_ledger_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalEntryHandler handles HTTP requests related to journal entries.
type journalEntryHandler struct {
	journalEntryService portssvc.JournalEntrySvcFacade
}

// newJournalEntryHandler creates a new journalEntryHandler.
func newJournalEntryHandler(journalEntryService portssvc.JournalEntrySvcFacade) *journalEntryHandler {
	return &journalEntryHandler{
		journalEntryService: journalEntryService,
	}
}

// registerJournalEntryRoutes registers the journal entry routes.
func registerJournalEntryRoutes(rg *gin.RouterGroup, journalEntryService portssvc.JournalEntrySvcFacade) {
	h := newJournalEntryHandler(journalEntryService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createJournalEntry)
		entries.GET("", h.listJournalEntries)
		entries.GET("/:entryID", h.getJournalEntry)
		entries.PUT("/:entryID/status", h.updateJournalEntryStatus)
		entries.DELETE("/:entryID", h.deleteJournalEntry)
	}
}

// identity returns the caller's user and company ids set by the identity middleware.
func identity(c *gin.Context) (userID, companyID string, ok bool) {
	userID, okUser := middleware.GetUserIDFromContext(c)
	companyID, okCompany := middleware.GetCompanyIDFromContext(c)
	if !okUser || !okCompany {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Identity not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized", Code: CodeUnauthorized})
		return "", "", false
	}
	return userID, companyID, true
}

// createJournalEntry godoc
// @Summary Create a journal entry
// @Description Validates and stores a balanced draft entry with its lines. The entry number is assigned by the server.
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param X-Company-ID header string true "Caller company ID"
// @Param entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unknown account"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Entry number conflict"
// @Failure 422 {object} dto.ErrorResponse "Entry violates an accounting rule"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /journal-entries [post]
func (h *journalEntryHandler) createJournalEntry(c *gin.Context) {
	userID, companyID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.journalEntryService.CreateJournalEntry(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal entry created",
		slog.String("entry_id", entry.ID), slog.String("entry_number", entry.EntryNumber))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Lists the company's entries, newest first, optionally filtered by status.
// @Tags journal-entries
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param X-Company-ID header string true "Caller company ID"
// @Param status query string false "Status filter" Enums(DRAFT, PENDING_APPROVAL, APPROVED, POSTED, CANCELLED)
// @Param limit query int false "Page size (max 100)" default(20)
// @Param offset query int false "Offset" default(0)
// @Param include_lines query bool false "Include lines"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /journal-entries [get]
func (h *journalEntryHandler) listJournalEntries(c *gin.Context) {
	_, companyID, ok := identity(c)
	if !ok {
		return
	}

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.journalEntryService.ListJournalEntries(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListJournalEntriesResponse(page))
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Description Returns the entry with its lines ordered by line number.
// @Tags journal-entries
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param X-Company-ID header string true "Caller company ID"
// @Param entryID path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /journal-entries/{entryID} [get]
func (h *journalEntryHandler) getJournalEntry(c *gin.Context) {
	_, companyID, ok := identity(c)
	if !ok {
		return
	}

	entry, err := h.journalEntryService.GetJournalEntry(c.Request.Context(), companyID, c.Param("entryID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// updateJournalEntryStatus godoc
// @Summary Change the status of a journal entry
// @Description Applies one lifecycle transition. Posted and cancelled entries cannot change.
// @Tags journal-entries
// @Produce json
// @Param X-User-ID header string true "Caller user ID"
// @Param X-Company-ID header string true "Caller company ID"
// @Param entryID path string true "Journal entry ID"
// @Param status query string true "Target status" Enums(DRAFT, PENDING_APPROVAL, APPROVED, POSTED, CANCELLED)
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 409 {object} dto.ErrorResponse "Transition not allowed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /journal-entries/{entryID}/status [put]
func (h *journalEntryHandler) updateJournalEntryStatus(c *gin.Context) {
	userID, companyID, ok := identity(c)
	if !ok {
		return
	}

	status, err := domain.ParseJournalEntryStatus(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	entry, err := h.journalEntryService.UpdateJournalEntryStatus(c.Request.Context(), companyID, c.Param("entryID"), status, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal entry status changed",
		slog.String("entry_id", entry.ID), slog.String("status", string(entry.Status)))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// deleteJournalEntry godoc
// @Summary Delete a draft journal entry
// @Tags journal-entries
// @Param X-User-ID header string true "Caller user ID"
// @Param X-Company-ID header string true "Caller company ID"
// @Param entryID path string true "Journal entry ID"
// @Success 204 "Deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 409 {object} dto.ErrorResponse "Entry is not a draft"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /journal-entries/{entryID} [delete]
func (h *journalEntryHandler) deleteJournalEntry(c *gin.Context) {
	userID, companyID, ok := identity(c)
	if !ok {
		return
	}

	entryID := c.Param("entryID")
	if err := h.journalEntryService.DeleteJournalEntry(c.Request.Context(), companyID, entryID, userID); err != nil {
		respondError(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal entry deleted", slog.String("entry_id", entryID))
	c.Status(http.StatusNoContent)
}
