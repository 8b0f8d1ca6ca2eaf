package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// EntryNumberer assigns an entry number inside the transaction that persists the entry.
type EntryNumberer interface {
	NextEntryNumber(ctx context.Context, tx pgx.Tx, companyID string, entryDate time.Time) (string, error)
}

// JournalEntryReader defines read operations for journal entries
type JournalEntryReader interface {
	// FindJournalEntryByID retrieves an entry of the company with its lines ordered by line number.
	FindJournalEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a page of the company's entries and the total matching count.
	ListJournalEntries(ctx context.Context, companyID string, filter domain.JournalEntryFilter) ([]domain.JournalEntry, int, error)
}

// JournalEntryWriter defines write operations for journal entries. Each call is one database transaction
// that also appends the audit record for the change.
type JournalEntryWriter interface {
	// CreateJournalEntry numbers the entry, persists it with its lines and returns the stored entry.
	CreateJournalEntry(ctx context.Context, entry domain.JournalEntry, numberer EntryNumberer) (*domain.JournalEntry, error)

	// UpdateJournalEntryStatus locks the entry, applies the lifecycle transition and persists it.
	UpdateJournalEntryStatus(ctx context.Context, companyID, entryID string, to domain.JournalEntryStatus, userID string, at time.Time) (*domain.JournalEntry, error)

	// DeleteJournalEntry locks the entry and deletes it with its lines if it is still an unposted draft.
	DeleteJournalEntry(ctx context.Context, companyID, entryID, userID string, at time.Time) error
}

// JournalEntryRepositoryFacade combines all journal entry repository interfaces
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}

// JournalEntryRepositoryWithTx extends JournalEntryRepositoryFacade with transaction capabilities
type JournalEntryRepositoryWithTx interface {
	JournalEntryRepositoryFacade
	TransactionManager
}

// EntrySequenceRepository issues per-company, per-month sequence values.
type EntrySequenceRepository interface {
	// NextSequenceValue atomically increments and returns the period's counter inside tx.
	// A failure leaves tx usable.
	NextSequenceValue(ctx context.Context, tx pgx.Tx, companyID string, period domain.EntryPeriod) (int64, error)
}
