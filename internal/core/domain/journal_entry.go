package domain

import (
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/apperrors"
	"github.com/shopspring/decimal"
)

// JournalEntry is a balanced double-entry accounting record owned by one company.
type JournalEntry struct {
	ID          string             `json:"id"`           // Primary Key (UUID)
	CompanyID   string             `json:"company_id"`   // Tenant scope
	EntryNumber string             `json:"entry_number"` // JE-YYYYMM-NNNNNN, unique per company
	EntryDate   time.Time          `json:"entry_date"`
	Description string             `json:"description,omitempty"`
	Reference   string             `json:"reference,omitempty"`
	TotalDebit  decimal.Decimal    `json:"total_debit"`
	TotalCredit decimal.Decimal    `json:"total_credit"`
	Status      JournalEntryStatus `json:"status"`
	IsPosted    bool               `json:"is_posted"`
	ApprovedBy  *string            `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time         `json:"approved_at,omitempty"`
	PostedBy    *string            `json:"posted_by,omitempty"`
	PostedAt    *time.Time         `json:"posted_at,omitempty"`
	CancelledBy *string            `json:"cancelled_by,omitempty"`
	CancelledAt *time.Time         `json:"cancelled_at,omitempty"`
	AuditFields
	Lines []JournalEntryLine `json:"lines,omitempty"`
}

// JournalEntryLine is a single debit or credit against one account.
type JournalEntryLine struct {
	ID             string          `json:"id"`
	JournalEntryID string          `json:"journal_entry_id"`
	LineNumber     int             `json:"line_number"` // 1-based, unique within the entry
	AccountID      string          `json:"account_id"`
	AccountCode    string          `json:"account_code"` // Captured from the chart of accounts at insert
	AccountName    string          `json:"account_name"`
	NormalBalance  NormalBalance   `json:"normal_balance"`
	Description    string          `json:"description,omitempty"`
	DebitAmount    decimal.Decimal `json:"debit_amount"`
	CreditAmount   decimal.Decimal `json:"credit_amount"`
	CreatedAt      time.Time       `json:"created_at"`
}

// JournalEntryLineInput is a proposed line before validation.
type JournalEntryLineInput struct {
	AccountID   string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// EnsureDeletable returns an error unless the entry is an unposted draft.
func (e *JournalEntry) EnsureDeletable() error {
	if e.Status != StatusDraft || e.IsPosted {
		return apperrors.EntryNotDeletableError{EntryID: e.ID, Status: string(e.Status)}
	}
	return nil
}

// LineTotals sums the debit and credit sides of the entry's lines.
func (e *JournalEntry) LineTotals() (debits, credits decimal.Decimal) {
	for _, l := range e.Lines {
		debits = debits.Add(l.DebitAmount)
		credits = credits.Add(l.CreditAmount)
	}
	return debits, credits
}

// JournalEntryFilter narrows a journal entry listing.
type JournalEntryFilter struct {
	Status       *JournalEntryStatus
	Limit        int
	Offset       int
	IncludeLines bool
}

// JournalEntryPage is one page of a journal entry listing.
type JournalEntryPage struct {
	Items  []JournalEntry `json:"items"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
