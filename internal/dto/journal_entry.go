package dto

import (
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalEntryLineRequest is one proposed debit or credit line.
type CreateJournalEntryLineRequest struct {
	AccountID   string          `json:"account_id" binding:"required,max=64,excludes=0x2C"`
	Description string          `json:"description" binding:"max=255"`
	Debit       decimal.Decimal `json:"debit" binding:"decimal_gte0" swaggertype:"string" example:"500.00"`
	Credit      decimal.Decimal `json:"credit" binding:"decimal_gte0" swaggertype:"string" example:"0"`
}

// CreateJournalEntryRequest is the body of POST /journal-entries.
// An empty lines array is accepted here and rejected by the ledger rules.
type CreateJournalEntryRequest struct {
	CompanyID   string                          `json:"company_id" binding:"omitempty,max=64"`
	EntryDate   string                          `json:"entry_date" binding:"required,datetime=2006-01-02" example:"2024-03-15"`
	Description string                          `json:"description" binding:"max=1000"`
	Reference   string                          `json:"reference" binding:"max=100"`
	Lines       []CreateJournalEntryLineRequest `json:"lines" binding:"dive"`
}

// ListJournalEntriesParams are the query parameters of GET /journal-entries.
type ListJournalEntriesParams struct {
	Status       string `form:"status"`
	Limit        int    `form:"limit" binding:"omitempty,min=0"`
	Offset       int    `form:"offset" binding:"omitempty,min=0"`
	IncludeLines bool   `form:"include_lines"`
}

// JournalEntryLineResponse defines the data returned for a journal entry line.
type JournalEntryLineResponse struct {
	ID            string `json:"id"`
	LineNumber    int    `json:"line_number"`
	AccountID     string `json:"account_id"`
	AccountCode   string `json:"account_code"`
	AccountName   string `json:"account_name"`
	NormalBalance string `json:"normal_balance"`
	Description   string `json:"description,omitempty"`
	DebitAmount   string `json:"debit_amount" example:"500.00"`
	CreditAmount  string `json:"credit_amount" example:"0.00"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	ID          string                     `json:"id"`
	CompanyID   string                     `json:"company_id"`
	EntryNumber string                     `json:"entry_number" example:"JE-202403-000001"`
	EntryDate   string                     `json:"entry_date" example:"2024-03-15"`
	Description string                     `json:"description,omitempty"`
	Reference   string                     `json:"reference,omitempty"`
	TotalDebit  string                     `json:"total_debit"`
	TotalCredit string                     `json:"total_credit"`
	Status      string                     `json:"status"`
	IsPosted    bool                       `json:"is_posted"`
	CreatedBy   string                     `json:"created_by"`
	CreatedAt   time.Time                  `json:"created_at"`
	ApprovedBy  *string                    `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time                 `json:"approved_at,omitempty"`
	PostedBy    *string                    `json:"posted_by,omitempty"`
	PostedAt    *time.Time                 `json:"posted_at,omitempty"`
	CancelledBy *string                    `json:"cancelled_by,omitempty"`
	CancelledAt *time.Time                 `json:"cancelled_at,omitempty"`
	UpdatedBy   string                     `json:"updated_by"`
	UpdatedAt   time.Time                  `json:"updated_at"`
	Lines       []JournalEntryLineResponse `json:"lines,omitempty"`
}

// ListJournalEntriesResponse is one page of journal entries.
type ListJournalEntriesResponse struct {
	Items  []JournalEntryResponse `json:"items"`
	Total  int                    `json:"total"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

// Money renders an amount with exactly two decimal places.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ToJournalEntryLineResponse converts a domain.JournalEntryLine to its DTO.
func ToJournalEntryLineResponse(l domain.JournalEntryLine) JournalEntryLineResponse {
	return JournalEntryLineResponse{
		ID:            l.ID,
		LineNumber:    l.LineNumber,
		AccountID:     l.AccountID,
		AccountCode:   l.AccountCode,
		AccountName:   l.AccountName,
		NormalBalance: string(l.NormalBalance),
		Description:   l.Description,
		DebitAmount:   Money(l.DebitAmount),
		CreditAmount:  Money(l.CreditAmount),
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		ID:          e.ID,
		CompanyID:   e.CompanyID,
		EntryNumber: e.EntryNumber,
		EntryDate:   e.EntryDate.Format(domain.DateLayout),
		Description: e.Description,
		Reference:   e.Reference,
		TotalDebit:  Money(e.TotalDebit),
		TotalCredit: Money(e.TotalCredit),
		Status:      string(e.Status),
		IsPosted:    e.IsPosted,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		ApprovedBy:  e.ApprovedBy,
		ApprovedAt:  e.ApprovedAt,
		PostedBy:    e.PostedBy,
		PostedAt:    e.PostedAt,
		CancelledBy: e.CancelledBy,
		CancelledAt: e.CancelledAt,
		UpdatedBy:   e.UpdatedBy,
		UpdatedAt:   e.UpdatedAt,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]JournalEntryLineResponse, len(e.Lines))
		for i, l := range e.Lines {
			resp.Lines[i] = ToJournalEntryLineResponse(l)
		}
	}
	return resp
}

// ToListJournalEntriesResponse converts a domain page to its DTO.
func ToListJournalEntriesResponse(p *domain.JournalEntryPage) ListJournalEntriesResponse {
	items := make([]JournalEntryResponse, len(p.Items))
	for i := range p.Items {
		items[i] = ToJournalEntryResponse(&p.Items[i])
	}
	return ListJournalEntriesResponse{Items: items, Total: p.Total, Limit: p.Limit, Offset: p.Offset}
}
