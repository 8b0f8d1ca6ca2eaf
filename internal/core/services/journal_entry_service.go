package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/apperrors"
	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_ledger_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/gl_ledger_service/internal/dto"
	"github.com/SscSPs/gl_ledger_service/internal/utils/accounting"
	"github.com/SscSPs/gl_ledger_service/internal/utils/pagination"
	"github.com/google/uuid"
)

type journalEntryService struct {
	BaseService
	journalRepo    portsrepo.JournalEntryRepositoryFacade
	accountChecker portssvc.AccountCheckerSvc
	numberer       portsrepo.EntryNumberer
}

// JournalEntryServiceOption is a functional option for configuring the journal entry service
type JournalEntryServiceOption func(*journalEntryService)

// WithJournalEntryClock sets the time source used for audit timestamps.
func WithJournalEntryClock(now func() time.Time) JournalEntryServiceOption {
	return func(s *journalEntryService) {
		s.Now = now
	}
}

// NewJournalEntryService creates a new journal entry service with the provided options
func NewJournalEntryService(
	journalRepo portsrepo.JournalEntryRepositoryFacade,
	accountChecker portssvc.AccountCheckerSvc,
	numberer portsrepo.EntryNumberer,
	options ...JournalEntryServiceOption,
) portssvc.JournalEntrySvcFacade {
	svc := &journalEntryService{
		journalRepo:    journalRepo,
		accountChecker: accountChecker,
		numberer:       numberer,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

// CreateJournalEntry runs every check before any write; only a fully valid entry reaches the repository.
func (s *journalEntryService) CreateJournalEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	if req.CompanyID != "" && req.CompanyID != companyID {
		return nil, fmt.Errorf("%w: company_id in body does not match the caller's company", apperrors.ErrValidation)
	}
	entryDate, err := domain.ParseDate(req.EntryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: entry_date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	inputs := make([]domain.JournalEntryLineInput, len(req.Lines))
	accountIDs := make([]string, 0, len(req.Lines))
	for i, l := range req.Lines {
		inputs[i] = domain.JournalEntryLineInput{
			AccountID:   strings.TrimSpace(l.AccountID),
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
		accountIDs = append(accountIDs, inputs[i].AccountID)
	}

	debits, credits, err := accounting.ValidateLines(inputs)
	if err != nil {
		s.LogWarn(ctx, "Journal entry rejected", slog.String("company_id", companyID), slog.String("reason", err.Error()))
		return nil, err
	}

	accounts, err := s.accountChecker.CheckAccounts(ctx, companyID, uniqueStrings(accountIDs))
	if err != nil {
		return nil, err
	}

	now := s.now()
	entryID := uuid.NewString()
	entry := domain.JournalEntry{
		ID:          entryID,
		CompanyID:   companyID,
		EntryDate:   entryDate,
		Description: strings.TrimSpace(req.Description),
		Reference:   strings.TrimSpace(req.Reference),
		TotalDebit:  debits,
		TotalCredit: credits,
		Status:      domain.StatusDraft,
		IsPosted:    false,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: creatorUserID,
			UpdatedAt: now,
			UpdatedBy: creatorUserID,
		},
		Lines: make([]domain.JournalEntryLine, len(inputs)),
	}
	for i, in := range inputs {
		acc := accounts[in.AccountID]
		entry.Lines[i] = domain.JournalEntryLine{
			ID:             uuid.NewString(),
			JournalEntryID: entryID,
			LineNumber:     i + 1,
			AccountID:      in.AccountID,
			AccountCode:    acc.Code,
			AccountName:    acc.Name,
			NormalBalance:  acc.Side(),
			Description:    strings.TrimSpace(in.Description),
			DebitAmount:    in.Debit,
			CreditAmount:   in.Credit,
			CreatedAt:      now,
		}
	}

	created, err := s.journalRepo.CreateJournalEntry(ctx, entry, s.numberer)
	if err != nil {
		s.LogError(ctx, err, "Failed to persist journal entry", slog.String("company_id", companyID), slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("company_id", companyID),
		slog.String("entry_id", created.ID),
		slog.String("entry_number", created.EntryNumber),
		slog.Int("line_count", len(created.Lines)))
	return created, nil
}

func (s *journalEntryService) GetJournalEntry(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalEntryByID(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *journalEntryService) ListJournalEntries(ctx context.Context, companyID string, params dto.ListJournalEntriesParams) (*domain.JournalEntryPage, error) {
	filter := domain.JournalEntryFilter{IncludeLines: params.IncludeLines}
	filter.Limit, filter.Offset = pagination.Normalize(params.Limit, params.Offset)
	if params.Status != "" {
		status, err := domain.ParseJournalEntryStatus(params.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}

	items, total, err := s.journalRepo.ListJournalEntries(ctx, companyID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	if items == nil {
		items = []domain.JournalEntry{}
	}
	return &domain.JournalEntryPage{Items: items, Total: total, Limit: filter.Limit, Offset: filter.Offset}, nil
}

func (s *journalEntryService) UpdateJournalEntryStatus(ctx context.Context, companyID, entryID string, status domain.JournalEntryStatus, userID string) (*domain.JournalEntry, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown journal entry status %q", apperrors.ErrValidation, status)
	}

	updated, err := s.journalRepo.UpdateJournalEntryStatus(ctx, companyID, entryID, status, userID, s.now())
	if err != nil {
		s.LogWarn(ctx, "Journal entry status change failed",
			slog.String("entry_id", entryID), slog.String("target_status", string(status)), slog.String("error", err.Error()))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry status changed", slog.String("entry_id", entryID), slog.String("status", string(updated.Status)))
	return updated, nil
}

func (s *journalEntryService) DeleteJournalEntry(ctx context.Context, companyID, entryID, userID string) error {
	if err := s.journalRepo.DeleteJournalEntry(ctx, companyID, entryID, userID, s.now()); err != nil {
		s.LogWarn(ctx, "Journal entry delete failed", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return err
	}
	s.LogInfo(ctx, "Journal entry deleted", slog.String("entry_id", entryID))
	return nil
}

// uniqueStrings returns the distinct values of s in first-seen order.
func uniqueStrings(s []string) []string {
	seen := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
