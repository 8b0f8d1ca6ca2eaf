package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// GetPostedAccountTotals sums posted debits and credits per account for entries dated on or before asOf.
	// An empty accountID means all accounts.
	GetPostedAccountTotals(ctx context.Context, companyID string, asOf time.Time, accountID string) ([]domain.PostedAccountTotals, error)
}
