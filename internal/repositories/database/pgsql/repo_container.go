package pgsql

import (
	portsrepo "github.com/SscSPs/gl_ledger_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	auditRepo := newPgxAuditRepository(dbPool)
	journalEntryRepo := newPgxJournalEntryRepository(dbPool, auditRepo)
	entrySequenceRepo := newPgxEntrySequenceRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		JournalEntryRepo:  journalEntryRepo,
		EntrySequenceRepo: entrySequenceRepo,
		AuditRepo:         auditRepo,
		ReportingRepo:     reportingRepo,
	}
}
