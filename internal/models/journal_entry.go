package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields mirrors the created/updated columns shared by ledger tables.
type AuditFields struct {
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string
}

// JournalEntry is the journal_entries row. Nullable columns are pointers.
type JournalEntry struct {
	ID          string
	CompanyID   string
	EntryNumber string
	EntryDate   time.Time
	Description *string
	Reference   *string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Status      string
	IsPosted    bool
	ApprovedBy  *string
	ApprovedAt  *time.Time
	PostedBy    *string
	PostedAt    *time.Time
	CancelledBy *string
	CancelledAt *time.Time
	AuditFields
}

// JournalEntryLine is the journal_entry_lines row.
type JournalEntryLine struct {
	ID             string
	JournalEntryID string
	LineNumber     int
	AccountID      string
	AccountCode    string
	AccountName    string
	NormalBalance  string
	Description    *string
	DebitAmount    decimal.Decimal
	CreditAmount   decimal.Decimal
	CreatedAt      time.Time
}
