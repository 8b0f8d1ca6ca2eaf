package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_ledger_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type entryNumberGenerator struct {
	BaseService
	sequenceRepo portsrepo.EntrySequenceRepository
}

// NewEntryNumberGenerator creates the generator that numbers entries JE-YYYYMM-NNNNNN per company and month.
func NewEntryNumberGenerator(sequenceRepo portsrepo.EntrySequenceRepository) portsrepo.EntryNumberer {
	return &entryNumberGenerator{sequenceRepo: sequenceRepo}
}

var _ portsrepo.EntryNumberer = (*entryNumberGenerator)(nil)

// NextEntryNumber draws the next value of the period's counter inside tx.
// If the counter fails the first number of the period is used; the unique
// (company, entry number) constraint then rejects a colliding insert.
func (g *entryNumberGenerator) NextEntryNumber(ctx context.Context, tx pgx.Tx, companyID string, entryDate time.Time) (string, error) {
	period := domain.PeriodOf(entryDate)

	seq, err := g.sequenceRepo.NextSequenceValue(ctx, tx, companyID, period)
	switch {
	case err != nil:
		g.LogWarn(ctx, "Entry sequence unavailable, using first number of period",
			slog.String("company_id", companyID), slog.String("period", period.String()), slog.String("error", err.Error()))
		seq = 1
	case seq <= 0:
		g.LogWarn(ctx, "Entry sequence returned a non-positive value, using first number of period",
			slog.String("company_id", companyID), slog.String("period", period.String()), slog.Int64("value", seq))
		seq = 1
	}

	number, err := domain.FormatEntryNumber(period, seq)
	if err != nil {
		g.LogError(ctx, err, "Entry sequence exhausted", slog.String("company_id", companyID), slog.String("period", period.String()))
		return "", err
	}
	return number, nil
}
