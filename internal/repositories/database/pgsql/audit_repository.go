package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/gl_ledger_service/internal/apperrors"
	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_ledger_service/internal/core/ports/repositories"
	"github.com/SscSPs/gl_ledger_service/internal/models"
	"github.com/SscSPs/gl_ledger_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// Record appends rec using tx. Snapshots are stored as JSONB.
func (r *PgxAuditRepository) Record(ctx context.Context, tx pgx.Tx, rec domain.AuditLogRecord) error {
	m := mapping.ToModelAuditLog(rec)
	query := `
		INSERT INTO audit_logs (id, company_id, table_name, record_id, action, old_values, new_values, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query,
		m.ID, m.CompanyID, m.TableName, m.RecordID, m.Action,
		jsonbArg(m.OldValues), jsonbArg(m.NewValues),
		m.UserID, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to record %s audit for %s %s", m.Action, m.TableName, m.RecordID), err)
	}
	return nil
}

// ListAuditLogs retrieves a company's audit records, newest first.
func (r *PgxAuditRepository) ListAuditLogs(ctx context.Context, companyID string, filter domain.AuditLogFilter) ([]domain.AuditLogRecord, error) {
	conditions := []string{"company_id = $1"}
	args := []any{companyID}
	if filter.TableName != "" {
		args = append(args, filter.TableName)
		conditions = append(conditions, fmt.Sprintf("table_name = $%d", len(args)))
	}
	if filter.RecordID != "" {
		args = append(args, filter.RecordID)
		conditions = append(conditions, fmt.Sprintf("record_id = $%d", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT id, company_id, table_name, record_id, action, old_values, new_values, user_id, created_at
		FROM audit_logs
		WHERE %s
		ORDER BY created_at DESC, id
		LIMIT $%d OFFSET $%d;`, strings.Join(conditions, " AND "), len(args)+1, len(args)+2)

	rows, err := r.Pool.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list audit logs", err)
	}
	defer rows.Close()

	records := []domain.AuditLogRecord{}
	for rows.Next() {
		var m models.AuditLog
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.TableName, &m.RecordID, &m.Action,
			&m.OldValues, &m.NewValues, &m.UserID, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan audit log row", err)
		}
		records = append(records, mapping.ToDomainAuditLog(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate audit log rows", err)
	}
	return records, nil
}

// jsonbArg sends an absent snapshot as SQL NULL.
func jsonbArg(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
