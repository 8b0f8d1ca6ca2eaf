package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_ledger_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetPostedAccountTotals sums posted line amounts per account as of a date.
// Account attributes come from the most recently captured line. MixedNormalBalance is set when
// the lines of an account disagree on its normal side.
func (r *reportingRepository) GetPostedAccountTotals(ctx context.Context, companyID string, asOf time.Time, accountID string) ([]domain.PostedAccountTotals, error) {
	query := `
		SELECT
			l.account_id,
			(ARRAY_AGG(l.account_code ORDER BY e.entry_date DESC, l.created_at DESC))[1] AS account_code,
			(ARRAY_AGG(l.account_name ORDER BY e.entry_date DESC, l.created_at DESC))[1] AS account_name,
			(ARRAY_AGG(l.normal_balance ORDER BY e.entry_date DESC, l.created_at DESC))[1] AS normal_balance,
			COUNT(DISTINCT l.normal_balance) > 1 AS mixed_normal_balance,
			COALESCE(SUM(l.debit_amount), 0) AS total_debit,
			COALESCE(SUM(l.credit_amount), 0) AS total_credit
		FROM journal_entry_lines l
		JOIN journal_entries e ON l.journal_entry_id = e.id
		WHERE e.company_id = $1
			AND e.status = 'POSTED'
			AND e.is_posted
			AND e.entry_date <= $2
			AND ($3::text = '' OR l.account_id = $3::text)
		GROUP BY l.account_id
		ORDER BY account_code, l.account_id
	`

	rows, err := r.Pool.Query(ctx, query, companyID, asOf, accountID)
	if err != nil {
		return nil, fmt.Errorf("error querying posted account totals: %w", err)
	}
	defer rows.Close()

	result := []domain.PostedAccountTotals{}
	for rows.Next() {
		var row domain.PostedAccountTotals
		var normalBalance string

		if err := rows.Scan(
			&row.AccountID,
			&row.AccountCode,
			&row.AccountName,
			&normalBalance,
			&row.MixedNormalBalance,
			&row.Debit,
			&row.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning posted account totals row: %w", err)
		}

		row.NormalBalance = domain.NormalBalance(normalBalance)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posted account totals rows: %w", err)
	}

	return result, nil
}
