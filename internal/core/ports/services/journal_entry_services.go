package services

import (
	"context"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	"github.com/SscSPs/gl_ledger_service/internal/dto"
)

// JournalEntryReaderSvc defines read operations for journal entries
type JournalEntryReaderSvc interface {
	// GetJournalEntry retrieves an entry of the company with its lines.
	GetJournalEntry(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a page of the company's entries.
	ListJournalEntries(ctx context.Context, companyID string, params dto.ListJournalEntriesParams) (*domain.JournalEntryPage, error)
}

// JournalEntryWriterSvc defines write operations for journal entries
type JournalEntryWriterSvc interface {
	// CreateJournalEntry validates, numbers and persists a new draft entry.
	CreateJournalEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// UpdateJournalEntryStatus moves an entry along its lifecycle.
	UpdateJournalEntryStatus(ctx context.Context, companyID, entryID string, status domain.JournalEntryStatus, userID string) (*domain.JournalEntry, error)

	// DeleteJournalEntry removes an unposted draft entry.
	DeleteJournalEntry(ctx context.Context, companyID, entryID, userID string) error
}

// JournalEntrySvcFacade combines all journal entry service interfaces
type JournalEntrySvcFacade interface {
	JournalEntryReaderSvc
	JournalEntryWriterSvc
}
