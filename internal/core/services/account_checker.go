package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/gl_ledger_service/internal/apperrors"
	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portssvc "github.com/SscSPs/gl_ledger_service/internal/core/ports/services"
)

type accountChecker struct {
	BaseService
	directory portssvc.ChartOfAccounts
}

// NewAccountChecker creates an AccountCheckerSvc backed by a chart-of-accounts directory.
func NewAccountChecker(directory portssvc.ChartOfAccounts) portssvc.AccountCheckerSvc {
	return &accountChecker{directory: directory}
}

var _ portssvc.AccountCheckerSvc = (*accountChecker)(nil)

// CheckAccounts resolves every id in one directory call. Ids are checked in the given order,
// so the first failing id is the one reported.
func (c *accountChecker) CheckAccounts(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.AccountRef, error) {
	found, err := c.directory.LookupAccounts(ctx, companyID, accountIDs)
	if err != nil {
		c.LogError(ctx, err, "Chart of accounts lookup failed", slog.String("company_id", companyID), slog.Int("account_count", len(accountIDs)))
		return nil, fmt.Errorf("failed to look up accounts: %w", err)
	}

	resolved := make(map[string]domain.AccountRef, len(accountIDs))
	for _, id := range accountIDs {
		acc, ok := found[id]
		var reason string
		switch {
		case !ok:
			reason = "not found"
		case acc.CompanyID != companyID:
			reason = "belongs to another company"
		case !acc.IsActive:
			reason = "inactive"
		}
		if reason != "" {
			c.LogWarn(ctx, "Account rejected", slog.String("account_id", id), slog.String("company_id", companyID), slog.String("reason", reason))
			return nil, apperrors.AccountNotFoundError{AccountID: id}
		}
		resolved[id] = acc
	}
	return resolved, nil
}
