package services

import (
	"context"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
)

// ChartOfAccounts resolves account identifiers against the company's chart of accounts.
type ChartOfAccounts interface {
	// LookupAccounts returns the accounts it found, keyed by account id. Ids that do not
	// resolve are absent from the map; that is not an error.
	LookupAccounts(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.AccountRef, error)
}

// AccountCheckerSvc verifies that accounts exist, belong to the company and are active.
type AccountCheckerSvc interface {
	// CheckAccounts returns the resolved accounts or an AccountNotFoundError for the first id that fails.
	CheckAccounts(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.AccountRef, error)
}
