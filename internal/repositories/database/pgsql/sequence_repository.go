package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/apperrors"
	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_ledger_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEntrySequenceRepository struct {
	BaseRepository
}

func newPgxEntrySequenceRepository(pool *pgxpool.Pool) portsrepo.EntrySequenceRepository {
	return &PgxEntrySequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntrySequenceRepository = (*PgxEntrySequenceRepository)(nil)

// NextSequenceValue increments the period counter inside a savepoint of tx.
// The counter row stays locked until tx ends; a failed statement is rolled back to the savepoint.
// A missing counter row is seeded past the highest number already stored for the period, so
// entries numbered while the counter was unavailable are never handed out again.
func (r *PgxEntrySequenceRepository) NextSequenceValue(ctx context.Context, tx pgx.Tx, companyID string, period domain.EntryPeriod) (int64, error) {
	sp, err := tx.Begin(ctx)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to open savepoint for entry sequence", err)
	}
	defer r.Rollback(ctx, sp)

	advance := `
		UPDATE journal_entry_sequences
		SET last_value = last_value + 1, updated_at = NOW()
		WHERE company_id = $1 AND period_year = $2 AND period_month = $3
		RETURNING last_value;
	`
	var value int64
	err = sp.QueryRow(ctx, advance, companyID, period.Year, int(period.Month)).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		value, err = seedSequence(ctx, sp, companyID, period)
	}
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to advance entry sequence for "+period.String(), err)
	}

	if err := sp.Commit(ctx); err != nil {
		return 0, apperrors.NewAppError(500, "failed to release savepoint for entry sequence", err)
	}
	return value, nil
}

// seedSequence creates the period counter one past the highest stored entry number.
// A concurrent creator that seeded first is advanced instead.
func seedSequence(ctx context.Context, tx pgx.Tx, companyID string, period domain.EntryPeriod) (int64, error) {
	from := time.Date(period.Year, period.Month, 1, 0, 0, 0, 0, time.UTC)
	seed := `
		INSERT INTO journal_entry_sequences (company_id, period_year, period_month, last_value)
		SELECT $1, $2, $3, COALESCE(MAX(CAST(RIGHT(entry_number, 6) AS BIGINT)), 0) + 1
		FROM journal_entries
		WHERE company_id = $1 AND entry_date >= $4 AND entry_date < $5
		ON CONFLICT (company_id, period_year, period_month)
		DO UPDATE SET last_value = GREATEST(journal_entry_sequences.last_value + 1, EXCLUDED.last_value), updated_at = NOW()
		RETURNING last_value;
	`
	var value int64
	err := tx.QueryRow(ctx, seed, companyID, period.Year, int(period.Month), from, from.AddDate(0, 1, 0)).Scan(&value)
	return value, err
}
