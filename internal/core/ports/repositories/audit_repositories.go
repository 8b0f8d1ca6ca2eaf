package repositories

import (
	"context"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AuditRecorder appends audit records. It never updates or deletes them.
type AuditRecorder interface {
	// Record inserts rec using the caller's transaction.
	Record(ctx context.Context, tx pgx.Tx, rec domain.AuditLogRecord) error
}

// AuditReader defines read operations for audit records
type AuditReader interface {
	// ListAuditLogs returns the company's audit records newest first.
	ListAuditLogs(ctx context.Context, companyID string, filter domain.AuditLogFilter) ([]domain.AuditLogRecord, error)
}

// AuditRepositoryFacade combines audit read and write operations
type AuditRepositoryFacade interface {
	AuditRecorder
	AuditReader
}
