package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_ledger_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_ledger_service/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalEntryRepository ---
type MockJournalEntryRepository struct {
	mock.Mock
}

var _ portsrepo.JournalEntryRepositoryFacade = (*MockJournalEntryRepository)(nil)

func (m *MockJournalEntryRepository) FindJournalEntryByID(ctx context.Context, companyID, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) ListJournalEntries(ctx context.Context, companyID string, filter domain.JournalEntryFilter) ([]domain.JournalEntry, int, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JournalEntry), args.Int(1), args.Error(2)
}

// CreateJournalEntry assigns a number through the passed numberer (with a nil tx) so tests see the real formatting.
func (m *MockJournalEntryRepository) CreateJournalEntry(ctx context.Context, entry domain.JournalEntry, numberer portsrepo.EntryNumberer) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entry, numberer)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if args.Get(0) != nil {
		return args.Get(0).(*domain.JournalEntry), nil
	}
	number, err := numberer.NextEntryNumber(ctx, nil, entry.CompanyID, entry.EntryDate)
	if err != nil {
		return nil, err
	}
	entry.EntryNumber = number
	return &entry, nil
}

func (m *MockJournalEntryRepository) UpdateJournalEntryStatus(ctx context.Context, companyID, entryID string, to domain.JournalEntryStatus, userID string, at time.Time) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID, to, userID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) DeleteJournalEntry(ctx context.Context, companyID, entryID, userID string, at time.Time) error {
	args := m.Called(ctx, companyID, entryID, userID, at)
	return args.Error(0)
}

// --- Mock ChartOfAccounts ---
type MockChartOfAccounts struct {
	mock.Mock
}

var _ portssvc.ChartOfAccounts = (*MockChartOfAccounts)(nil)

func (m *MockChartOfAccounts) LookupAccounts(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.AccountRef, error) {
	args := m.Called(ctx, companyID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.AccountRef), args.Error(1)
}

// --- Mock EntrySequenceRepository ---
type MockEntrySequenceRepository struct {
	mock.Mock
}

var _ portsrepo.EntrySequenceRepository = (*MockEntrySequenceRepository)(nil)

func (m *MockEntrySequenceRepository) NextSequenceValue(ctx context.Context, tx pgx.Tx, companyID string, period domain.EntryPeriod) (int64, error) {
	args := m.Called(ctx, tx, companyID, period)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetPostedAccountTotals(ctx context.Context, companyID string, asOf time.Time, accountID string) ([]domain.PostedAccountTotals, error) {
	args := m.Called(ctx, companyID, asOf, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PostedAccountTotals), args.Error(1)
}

// --- Mock AuditReader ---
type MockAuditReader struct {
	mock.Mock
}

var _ portsrepo.AuditReader = (*MockAuditReader)(nil)

func (m *MockAuditReader) ListAuditLogs(ctx context.Context, companyID string, filter domain.AuditLogFilter) ([]domain.AuditLogRecord, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogRecord), args.Error(1)
}
