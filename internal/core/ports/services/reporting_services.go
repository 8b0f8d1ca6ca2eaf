package services

import (
	"context"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
)

// ReportingService defines operations for generating ledger reports from posted entries
type ReportingService interface {
	// TrialBalance generates a trial balance report as of a specific date
	TrialBalance(ctx context.Context, companyID string, asOf time.Time) (*domain.TrialBalance, error)

	// AccountBalances returns per-account balances as of a date, optionally for one account
	AccountBalances(ctx context.Context, companyID string, asOf time.Time, accountID string) (*domain.AccountBalancesReport, error)
}

// AuditService exposes the audit trail for reading
type AuditService interface {
	ListAuditLogs(ctx context.Context, companyID string, filter domain.AuditLogFilter) ([]domain.AuditLogRecord, error)
}
