package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/apperrors"
	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_ledger_service/internal/core/ports/repositories"
	"github.com/SscSPs/gl_ledger_service/internal/models"
	"github.com/SscSPs/gl_ledger_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const journalEntryColumns = `id, company_id, entry_number, entry_date, description, reference,
	total_debit, total_credit, status, is_posted,
	approved_by, approved_at, posted_by, posted_at, cancelled_by, cancelled_at,
	created_at, created_by, updated_at, updated_by`

const journalEntryLineColumns = `id, journal_entry_id, line_number, account_id, account_code, account_name,
	normal_balance, description, debit_amount, credit_amount, created_at`

type PgxJournalEntryRepository struct {
	BaseRepository
	audit portsrepo.AuditRecorder
}

// newPgxJournalEntryRepository creates a repository for journal entries and their lines.
// Every write appends its audit record through audit inside the same transaction.
func newPgxJournalEntryRepository(pool *pgxpool.Pool, audit portsrepo.AuditRecorder) portsrepo.JournalEntryRepositoryWithTx {
	return &PgxJournalEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
		audit:          audit,
	}
}

var _ portsrepo.JournalEntryRepositoryWithTx = (*PgxJournalEntryRepository)(nil)

// CreateJournalEntry numbers and stores the entry with its lines and the CREATE audit record.
func (r *PgxJournalEntryRepository) CreateJournalEntry(ctx context.Context, entry domain.JournalEntry, numberer portsrepo.EntryNumberer) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	// The sequence upsert holds the period row lock until commit, serializing concurrent creators.
	number, err := numberer.NextEntryNumber(ctx, tx, entry.CompanyID, entry.EntryDate)
	if err != nil {
		return nil, err
	}
	entry.EntryNumber = number

	debits, credits := entry.LineTotals()
	if !debits.Equal(credits) || !debits.Equal(entry.TotalDebit) || !credits.Equal(entry.TotalCredit) {
		return nil, apperrors.DebitCreditMismatchError{Debits: debits, Credits: credits}
	}

	m := mapping.ToModelJournalEntry(entry)
	insertEntry := `
		INSERT INTO journal_entries (` + journalEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err = tx.Exec(ctx, insertEntry,
		m.ID, m.CompanyID, m.EntryNumber, m.EntryDate, m.Description, m.Reference,
		m.TotalDebit, m.TotalCredit, m.Status, m.IsPosted,
		m.ApprovedBy, m.ApprovedAt, m.PostedBy, m.PostedAt, m.CancelledBy, m.CancelledAt,
		m.CreatedAt, m.CreatedBy, m.UpdatedAt, m.UpdatedBy,
	)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return nil, apperrors.NewAppError(409,
				fmt.Sprintf("journal entry number %s already exists for this company", number),
				fmt.Errorf("%w: %s", apperrors.ErrDuplicate, constraint))
		}
		return nil, apperrors.NewAppError(500, "failed to insert journal entry "+m.ID, err)
	}

	batch := &pgx.Batch{}
	insertLine := `
		INSERT INTO journal_entry_lines (` + journalEntryLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, line := range entry.Lines {
		ml := mapping.ToModelJournalEntryLine(line)
		batch.Queue(insertLine,
			ml.ID, ml.JournalEntryID, ml.LineNumber, ml.AccountID, ml.AccountCode, ml.AccountName,
			ml.NormalBalance, ml.Description, ml.DebitAmount, ml.CreditAmount, ml.CreatedAt,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert lines for journal entry "+m.ID, err)
	}

	rec, err := domain.NewJournalEntryAudit(domain.AuditCreate, nil, &entry, entry.CreatedBy, entry.CreatedAt)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to build audit record", err)
	}
	if err := r.audit.Record(ctx, tx, rec); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateJournalEntryStatus applies one lifecycle transition under a row lock.
func (r *PgxJournalEntryRepository) UpdateJournalEntryStatus(ctx context.Context, companyID, entryID string, to domain.JournalEntryStatus, userID string, at time.Time) (*domain.JournalEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	current, err := r.lockJournalEntry(ctx, tx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	before := *current

	if err := current.TransitionTo(to, userID, at); err != nil {
		return nil, err
	}

	m := mapping.ToModelJournalEntry(*current)
	update := `
		UPDATE journal_entries
		SET status = $1, is_posted = $2,
		    approved_by = $3, approved_at = $4,
		    posted_by = $5, posted_at = $6,
		    cancelled_by = $7, cancelled_at = $8,
		    updated_at = $9, updated_by = $10
		WHERE id = $11 AND company_id = $12;
	`
	cmdTag, err := tx.Exec(ctx, update,
		m.Status, m.IsPosted,
		m.ApprovedBy, m.ApprovedAt,
		m.PostedBy, m.PostedAt,
		m.CancelledBy, m.CancelledAt,
		m.UpdatedAt, m.UpdatedBy,
		m.ID, m.CompanyID,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update status of journal entry "+entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.NewNotFoundError("journal entry " + entryID)
	}

	rec, err := domain.NewJournalEntryAudit(domain.AuditStatusUpdate, &before, current, userID, at)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to build audit record", err)
	}
	if err := r.audit.Record(ctx, tx, rec); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return current, nil
}

// DeleteJournalEntry removes an unposted draft and its lines.
func (r *PgxJournalEntryRepository) DeleteJournalEntry(ctx context.Context, companyID, entryID, userID string, at time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	current, err := r.lockJournalEntry(ctx, tx, companyID, entryID)
	if err != nil {
		return err
	}
	if err := current.EnsureDeletable(); err != nil {
		return err
	}

	// Lines go with the entry through ON DELETE CASCADE.
	if _, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE id = $1 AND company_id = $2;`, entryID, companyID); err != nil {
		return apperrors.NewAppError(500, "failed to delete journal entry "+entryID, err)
	}

	rec, err := domain.NewJournalEntryAudit(domain.AuditDelete, current, nil, userID, at)
	if err != nil {
		return apperrors.NewAppError(500, "failed to build audit record", err)
	}
	if err := r.audit.Record(ctx, tx, rec); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindJournalEntryByID retrieves a company's entry with its lines.
func (r *PgxJournalEntryRepository) FindJournalEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE id = $1 AND company_id = $2;`
	entry, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, entryID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("journal entry " + entryID)
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry "+entryID, err)
	}

	lines, err := findLinesByEntryIDs(ctx, r.Pool, []string{entryID})
	if err != nil {
		return nil, err
	}
	entry.Lines = lines[entryID]
	return entry, nil
}

// ListJournalEntries retrieves a page of a company's entries, newest first.
func (r *PgxJournalEntryRepository) ListJournalEntries(ctx context.Context, companyID string, filter domain.JournalEntryFilter) ([]domain.JournalEntry, int, error) {
	conditions := []string{"company_id = $1"}
	args := []any{companyID}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	where := strings.Join(conditions, " AND ")

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM journal_entries WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count journal entries", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM journal_entries WHERE %s
		ORDER BY entry_date DESC, entry_number DESC
		LIMIT $%d OFFSET $%d;`, journalEntryColumns, where, len(args)+1, len(args)+2)
	rows, err := r.Pool.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list journal entries", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		entry, err := scanJournalEntry(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to iterate journal entry rows", err)
	}

	if filter.IncludeLines && len(entries) > 0 {
		ids := make([]string, len(entries))
		for i := range entries {
			ids[i] = entries[i].ID
		}
		lines, err := findLinesByEntryIDs(ctx, r.Pool, ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range entries {
			entries[i].Lines = lines[entries[i].ID]
		}
	}

	return entries, total, nil
}

// lockJournalEntry reads the entry and its lines holding a row lock until tx ends.
func (r *PgxJournalEntryRepository) lockJournalEntry(ctx context.Context, tx pgx.Tx, companyID, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE id = $1 AND company_id = $2 FOR UPDATE;`
	entry, err := scanJournalEntry(tx.QueryRow(ctx, query, entryID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("journal entry " + entryID)
		}
		return nil, apperrors.NewAppError(500, "failed to lock journal entry "+entryID, err)
	}

	lines, err := findLinesByEntryIDs(ctx, tx, []string{entryID})
	if err != nil {
		return nil, err
	}
	entry.Lines = lines[entryID]
	return entry, nil
}

func scanJournalEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.ID, &m.CompanyID, &m.EntryNumber, &m.EntryDate, &m.Description, &m.Reference,
		&m.TotalDebit, &m.TotalCredit, &m.Status, &m.IsPosted,
		&m.ApprovedBy, &m.ApprovedAt, &m.PostedBy, &m.PostedAt, &m.CancelledBy, &m.CancelledAt,
		&m.CreatedAt, &m.CreatedBy, &m.UpdatedAt, &m.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

// findLinesByEntryIDs loads lines grouped by entry id, each group ordered by line number.
func findLinesByEntryIDs(ctx context.Context, db dbtx, entryIDs []string) (map[string][]domain.JournalEntryLine, error) {
	query := `SELECT ` + journalEntryLineColumns + `
		FROM journal_entry_lines
		WHERE journal_entry_id = ANY($1)
		ORDER BY journal_entry_id, line_number;`
	rows, err := db.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entry lines", err)
	}
	defer rows.Close()

	grouped := make(map[string][]models.JournalEntryLine, len(entryIDs))
	for rows.Next() {
		var l models.JournalEntryLine
		if err := rows.Scan(
			&l.ID, &l.JournalEntryID, &l.LineNumber, &l.AccountID, &l.AccountCode, &l.AccountName,
			&l.NormalBalance, &l.Description, &l.DebitAmount, &l.CreditAmount, &l.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry line row", err)
		}
		grouped[l.JournalEntryID] = append(grouped[l.JournalEntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate journal entry line rows", err)
	}

	result := make(map[string][]domain.JournalEntryLine, len(grouped))
	for id, ls := range grouped {
		result[id] = mapping.ToDomainJournalEntryLineSlice(ls)
	}
	return result, nil
}
