package coa

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portssvc "github.com/SscSPs/gl_ledger_service/internal/core/ports/services"
)

// SQLDirectory reads a chart of accounts that lives in an accounts table of a reachable database.
type SQLDirectory struct {
	db *sql.DB
}

var _ portssvc.ChartOfAccounts = (*SQLDirectory)(nil)

func NewSQLDirectory(db *sql.DB) *SQLDirectory {
	return &SQLDirectory{db: db}
}

func (d *SQLDirectory) LookupAccounts(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.AccountRef, error) {
	found := make(map[string]domain.AccountRef, len(accountIDs))
	if len(accountIDs) == 0 {
		return found, nil
	}

	placeholders := make([]string, len(accountIDs))
	args := make([]any, 0, len(accountIDs)+1)
	args = append(args, companyID)
	for i, id := range accountIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, id)
	}
	query := `SELECT id, company_id, code, name, account_type, COALESCE(normal_balance, ''), is_active
		FROM accounts
		WHERE company_id = $1 AND id IN (` + strings.Join(placeholders, ", ") + `)`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a domain.AccountRef
		var accountType, normalBalance string
		if err := rows.Scan(&a.AccountID, &a.CompanyID, &a.Code, &a.Name, &accountType, &normalBalance, &a.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		a.AccountType = domain.AccountType(strings.ToUpper(accountType))
		a.NormalBalance = domain.NormalBalance(strings.ToUpper(normalBalance))
		found[a.AccountID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}
	return found, nil
}
