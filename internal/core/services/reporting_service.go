package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_ledger_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/gl_ledger_service/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: repo}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance generates a trial balance report as of a specific date.
// The totals are the raw posted sums; a ledger that does not close is reported, never adjusted.
func (s *reportingService) TrialBalance(ctx context.Context, companyID string, asOf time.Time) (*domain.TrialBalance, error) {
	totals, err := s.reportingRepo.GetPostedAccountTotals(ctx, companyID, asOf, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data",
			slog.String("company_id", companyID),
			slog.String("as_of", asOf.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	tb := &domain.TrialBalance{
		CompanyID: companyID,
		AsOfDate:  asOf,
		Rows:      make([]domain.TrialBalanceRow, 0, len(totals)),
	}
	for _, t := range totals {
		s.warnMixedSides(ctx, companyID, t)
		dr, cr := accounting.TrialBalanceColumns(t.Debit, t.Credit, t.NormalBalance)
		tb.Rows = append(tb.Rows, domain.TrialBalanceRow{
			AccountID:     t.AccountID,
			AccountCode:   t.AccountCode,
			AccountName:   t.AccountName,
			NormalBalance: t.NormalBalance,
			Debit:         dr,
			Credit:        cr,
		})
		tb.TotalDebits = tb.TotalDebits.Add(t.Debit)
		tb.TotalCredits = tb.TotalCredits.Add(t.Credit)
	}
	tb.Difference = tb.TotalDebits.Sub(tb.TotalCredits)
	tb.IsBalanced = tb.Difference.Equal(decimal.Zero)

	if !tb.IsBalanced {
		s.LogError(ctx, fmt.Errorf("trial balance difference %s", tb.Difference.StringFixed(2)), "Ledger does not balance",
			slog.String("company_id", companyID),
			slog.String("as_of", asOf.Format(domain.DateLayout)),
			slog.String("total_debits", tb.TotalDebits.StringFixed(2)),
			slog.String("total_credits", tb.TotalCredits.StringFixed(2)))
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("company_id", companyID),
		slog.String("as_of", asOf.Format(domain.DateLayout)),
		slog.Int("row_count", len(tb.Rows)))
	return tb, nil
}

// AccountBalances nets each account's posted activity on the normal side captured with its lines.
func (s *reportingService) AccountBalances(ctx context.Context, companyID string, asOf time.Time, accountID string) (*domain.AccountBalancesReport, error) {
	totals, err := s.reportingRepo.GetPostedAccountTotals(ctx, companyID, asOf, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve account balances",
			slog.String("company_id", companyID),
			slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to retrieve account balances: %w", err)
	}

	report := &domain.AccountBalancesReport{
		CompanyID: companyID,
		AsOfDate:  asOf,
		Balances:  make([]domain.AccountBalance, 0, len(totals)),
	}
	for _, t := range totals {
		s.warnMixedSides(ctx, companyID, t)
		report.Balances = append(report.Balances, domain.AccountBalance{
			AccountID:     t.AccountID,
			AccountCode:   t.AccountCode,
			AccountName:   t.AccountName,
			NormalBalance: t.NormalBalance,
			TotalDebit:    t.Debit,
			TotalCredit:   t.Credit,
			Balance:       accounting.SignedBalance(t.Debit, t.Credit, t.NormalBalance),
		})
	}
	return report, nil
}

// warnMixedSides reports an account whose lines were captured with both normal sides.
// The side of its latest line is used.
func (s *reportingService) warnMixedSides(ctx context.Context, companyID string, t domain.PostedAccountTotals) {
	if !t.MixedNormalBalance {
		return
	}
	s.LogWarn(ctx, "Account lines disagree on normal balance",
		slog.String("company_id", companyID),
		slog.String("account_id", t.AccountID),
		slog.String("normal_balance_used", string(t.NormalBalance)))
}
