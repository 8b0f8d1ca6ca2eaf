package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/apperrors"
	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portssvc "github.com/SscSPs/gl_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/gl_ledger_service/internal/core/services"
	"github.com/SscSPs/gl_ledger_service/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type JournalEntryServiceTestSuite struct {
	suite.Suite
	mockJournalRepo  *MockJournalEntryRepository
	mockChart        *MockChartOfAccounts
	mockSequenceRepo *MockEntrySequenceRepository
	service          portssvc.JournalEntrySvcFacade
	cashAccount      domain.AccountRef
	revenueAccount   domain.AccountRef
	companyID        string
	userID           string
	now              time.Time
}

func (suite *JournalEntryServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalEntryRepository)
	suite.mockChart = new(MockChartOfAccounts)
	suite.mockSequenceRepo = new(MockEntrySequenceRepository)
	suite.now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	suite.service = services.NewJournalEntryService(
		suite.mockJournalRepo,
		services.NewAccountChecker(suite.mockChart),
		services.NewEntryNumberGenerator(suite.mockSequenceRepo),
		services.WithJournalEntryClock(func() time.Time { return suite.now }),
	)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.cashAccount = domain.AccountRef{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	suite.revenueAccount = domain.AccountRef{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		Code:        "4000",
		Name:        "Revenue",
		AccountType: domain.Revenue,
		IsActive:    true,
	}
}

func TestJournalEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalEntryServiceTestSuite))
}

func (suite *JournalEntryServiceTestSuite) request(debit, credit string) dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		EntryDate:   "2024-03-15",
		Description: "March sale",
		Lines: []dto.CreateJournalEntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.RequireFromString(debit)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.RequireFromString(credit)},
		},
	}
}

func (suite *JournalEntryServiceTestSuite) expectAccounts() {
	suite.mockChart.On("LookupAccounts", mock.Anything, suite.companyID,
		[]string{suite.cashAccount.AccountID, suite.revenueAccount.AccountID}).
		Return(map[string]domain.AccountRef{
			suite.cashAccount.AccountID:    suite.cashAccount,
			suite.revenueAccount.AccountID: suite.revenueAccount,
		}, nil).Once()
}

func (suite *JournalEntryServiceTestSuite) assertNothingPersisted() {
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "CreateJournalEntry", mock.Anything, mock.Anything, mock.Anything)
	suite.mockSequenceRepo.AssertNotCalled(suite.T(), "NextSequenceValue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Test Cases ---

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_Success() {
	ctx := context.Background()
	suite.expectAccounts()
	suite.mockSequenceRepo.On("NextSequenceValue", mock.Anything, mock.Anything, suite.companyID,
		domain.EntryPeriod{Year: 2024, Month: time.March}).Return(int64(1), nil).Once()
	suite.mockJournalRepo.On("CreateJournalEntry", mock.Anything, mock.AnythingOfType("domain.JournalEntry"), mock.Anything).
		Return(nil, nil).Once()

	created, err := suite.service.CreateJournalEntry(ctx, suite.companyID, suite.request("500.00", "500.00"), suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal("JE-202403-000001", created.EntryNumber)
	suite.Equal(domain.StatusDraft, created.Status)
	suite.False(created.IsPosted)
	suite.Equal(suite.companyID, created.CompanyID)
	suite.Equal(suite.userID, created.CreatedBy)
	suite.Equal(suite.now, created.CreatedAt)
	suite.True(created.TotalDebit.Equal(decimal.NewFromInt(500)))
	suite.True(created.TotalDebit.Equal(created.TotalCredit))

	suite.Require().Len(created.Lines, 2)
	cash, revenue := created.Lines[0], created.Lines[1]
	suite.Equal(1, cash.LineNumber)
	suite.Equal(2, revenue.LineNumber)
	suite.Equal("1000", cash.AccountCode)
	suite.Equal("Cash", cash.AccountName)
	suite.Equal(domain.DebitNormal, cash.NormalBalance)
	suite.Equal(domain.CreditNormal, revenue.NormalBalance)
	suite.Equal(created.ID, revenue.JournalEntryID)

	debits, credits := created.LineTotals()
	suite.True(debits.Equal(credits))

	suite.mockChart.AssertExpectations(suite.T())
	suite.mockSequenceRepo.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_SequenceFailureFallsBackToFirstNumber() {
	ctx := context.Background()
	suite.expectAccounts()
	suite.mockSequenceRepo.On("NextSequenceValue", mock.Anything, mock.Anything, suite.companyID, mock.Anything).
		Return(int64(0), errors.New("savepoint failed")).Once()
	suite.mockJournalRepo.On("CreateJournalEntry", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()

	created, err := suite.service.CreateJournalEntry(ctx, suite.companyID, suite.request("500", "500"), suite.userID)

	suite.Require().NoError(err)
	suite.Equal("JE-202403-000001", created.EntryNumber)
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_DebitCreditMismatch() {
	ctx := context.Background()

	_, err := suite.service.CreateJournalEntry(ctx, suite.companyID, suite.request("500.00", "400.00"), suite.userID)

	var mismatch apperrors.DebitCreditMismatchError
	suite.Require().True(errors.As(err, &mismatch))
	suite.True(mismatch.Debits.Equal(decimal.NewFromInt(500)))
	suite.True(mismatch.Credits.Equal(decimal.NewFromInt(400)))
	suite.ErrorIs(err, apperrors.ErrBusinessRule)
	suite.mockChart.AssertNotCalled(suite.T(), "LookupAccounts", mock.Anything, mock.Anything, mock.Anything)
	suite.assertNothingPersisted()
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_EmptyEntry() {
	req := dto.CreateJournalEntryRequest{EntryDate: "2024-03-15", Lines: []dto.CreateJournalEntryLineRequest{}}

	_, err := suite.service.CreateJournalEntry(context.Background(), suite.companyID, req, suite.userID)

	suite.ErrorAs(err, &apperrors.EmptyEntryError{})
	suite.assertNothingPersisted()
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_InvalidLineAmount() {
	req := suite.request("500", "0")

	_, err := suite.service.CreateJournalEntry(context.Background(), suite.companyID, req, suite.userID)

	var lineErr apperrors.InvalidLineAmountError
	suite.Require().True(errors.As(err, &lineErr))
	suite.Equal(2, lineErr.LineNumber)
	suite.assertNothingPersisted()
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_AmountBeyondStoragePrecision() {
	req := suite.request("100000000000000000000.00", "100000000000000000000.00")

	_, err := suite.service.CreateJournalEntry(context.Background(), suite.companyID, req, suite.userID)

	var lineErr apperrors.InvalidLineAmountError
	suite.Require().True(errors.As(err, &lineErr))
	suite.Equal(1, lineErr.LineNumber)
	suite.ErrorIs(err, apperrors.ErrBusinessRule)
	suite.assertNothingPersisted()
	suite.mockChart.AssertNotCalled(suite.T(), "LookupAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_AccountRejected() {
	tests := []struct {
		name string
		// revenue returns the chart's view of the credited account; nil means it is absent.
		revenue func(domain.AccountRef) *domain.AccountRef
	}{
		{name: "missing", revenue: func(domain.AccountRef) *domain.AccountRef { return nil }},
		{name: "inactive", revenue: func(a domain.AccountRef) *domain.AccountRef {
			a.IsActive = false
			return &a
		}},
		{name: "other company", revenue: func(a domain.AccountRef) *domain.AccountRef {
			a.CompanyID = uuid.NewString()
			return &a
		}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			found := map[string]domain.AccountRef{suite.cashAccount.AccountID: suite.cashAccount}
			if ref := tt.revenue(suite.revenueAccount); ref != nil {
				found[ref.AccountID] = *ref
			}
			suite.mockChart.On("LookupAccounts", mock.Anything, suite.companyID, mock.Anything).Return(found, nil).Once()

			_, err := suite.service.CreateJournalEntry(context.Background(), suite.companyID, suite.request("500", "500"), suite.userID)

			var notFound apperrors.AccountNotFoundError
			suite.Require().True(errors.As(err, &notFound))
			suite.Equal(suite.revenueAccount.AccountID, notFound.AccountID)
			suite.ErrorIs(err, apperrors.ErrReference)
			suite.assertNothingPersisted()
		})
	}
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_ChartUnavailable() {
	suite.mockChart.On("LookupAccounts", mock.Anything, suite.companyID, mock.Anything).Return(nil, assert.AnError).Once()

	_, err := suite.service.CreateJournalEntry(context.Background(), suite.companyID, suite.request("500", "500"), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrReference)
	suite.assertNothingPersisted()
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_DuplicateAccountsLookedUpOnce() {
	req := dto.CreateJournalEntryRequest{
		EntryDate: "2024-03-15",
		Lines: []dto.CreateJournalEntryLineRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(300)},
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(200)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(500)},
		},
	}
	suite.expectAccounts()
	suite.mockSequenceRepo.On("NextSequenceValue", mock.Anything, mock.Anything, suite.companyID, mock.Anything).Return(int64(7), nil).Once()
	suite.mockJournalRepo.On("CreateJournalEntry", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()

	created, err := suite.service.CreateJournalEntry(context.Background(), suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("JE-202403-000007", created.EntryNumber)
	suite.Len(created.Lines, 3)
	suite.mockChart.AssertExpectations(suite.T())
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_BodyCompanyMismatch() {
	req := suite.request("500", "500")
	req.CompanyID = "someone-else"

	_, err := suite.service.CreateJournalEntry(context.Background(), suite.companyID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.assertNothingPersisted()
}

func (suite *JournalEntryServiceTestSuite) TestCreateJournalEntry_RepositoryConflict() {
	suite.expectAccounts()
	dupErr := apperrors.NewAppError(409, "journal entry number already exists", apperrors.ErrDuplicate)
	suite.mockJournalRepo.On("CreateJournalEntry", mock.Anything, mock.Anything, mock.Anything).Return(nil, dupErr).Once()

	_, err := suite.service.CreateJournalEntry(context.Background(), suite.companyID, suite.request("500", "500"), suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *JournalEntryServiceTestSuite) TestUpdateJournalEntryStatus() {
	entryID := uuid.NewString()
	posted := &domain.JournalEntry{ID: entryID, Status: domain.StatusPosted, IsPosted: true}
	suite.mockJournalRepo.On("UpdateJournalEntryStatus", mock.Anything, suite.companyID, entryID, domain.StatusPosted, suite.userID, suite.now).
		Return(posted, nil).Once()

	got, err := suite.service.UpdateJournalEntryStatus(context.Background(), suite.companyID, entryID, domain.StatusPosted, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPosted, got.Status)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalEntryServiceTestSuite) TestUpdateJournalEntryStatus_InvalidTransition() {
	entryID := uuid.NewString()
	suite.mockJournalRepo.On("UpdateJournalEntryStatus", mock.Anything, suite.companyID, entryID, domain.StatusPosted, suite.userID, mock.Anything).
		Return(nil, apperrors.InvalidStatusError{From: "DRAFT", To: "POSTED"}).Once()

	_, err := suite.service.UpdateJournalEntryStatus(context.Background(), suite.companyID, entryID, domain.StatusPosted, suite.userID)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *JournalEntryServiceTestSuite) TestUpdateJournalEntryStatus_UnknownStatus() {
	_, err := suite.service.UpdateJournalEntryStatus(context.Background(), suite.companyID, "je-1", domain.JournalEntryStatus("VOID"), suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateJournalEntryStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalEntryServiceTestSuite) TestDeleteJournalEntry() {
	entryID := uuid.NewString()
	suite.mockJournalRepo.On("DeleteJournalEntry", mock.Anything, suite.companyID, entryID, suite.userID, suite.now).Return(nil).Once()

	suite.NoError(suite.service.DeleteJournalEntry(context.Background(), suite.companyID, entryID, suite.userID))

	lockedID := uuid.NewString()
	suite.mockJournalRepo.On("DeleteJournalEntry", mock.Anything, suite.companyID, lockedID, suite.userID, suite.now).
		Return(apperrors.EntryNotDeletableError{EntryID: lockedID, Status: "POSTED"}).Once()

	err := suite.service.DeleteJournalEntry(context.Background(), suite.companyID, lockedID, suite.userID)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalEntryServiceTestSuite) TestListJournalEntries_NormalizesParams() {
	draft := domain.StatusDraft
	expected := domain.JournalEntryFilter{Status: &draft, Limit: 100, Offset: 0}
	suite.mockJournalRepo.On("ListJournalEntries", mock.Anything, suite.companyID, expected).
		Return([]domain.JournalEntry{{ID: "je-1"}}, 41, nil).Once()

	page, err := suite.service.ListJournalEntries(context.Background(), suite.companyID, dto.ListJournalEntriesParams{Status: "draft", Limit: 500, Offset: -3})

	suite.Require().NoError(err)
	suite.Equal(41, page.Total)
	suite.Equal(100, page.Limit)
	suite.Len(page.Items, 1)
}

func (suite *JournalEntryServiceTestSuite) TestListJournalEntries_UnknownStatus() {
	_, err := suite.service.ListJournalEntries(context.Background(), suite.companyID, dto.ListJournalEntriesParams{Status: "VOID"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalEntryServiceTestSuite) TestGetJournalEntry_NotFound() {
	suite.mockJournalRepo.On("FindJournalEntryByID", mock.Anything, suite.companyID, "missing").
		Return(nil, apperrors.NewNotFoundError("journal entry not found")).Once()

	_, err := suite.service.GetJournalEntry(context.Background(), suite.companyID, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}
