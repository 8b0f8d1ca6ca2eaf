package coa_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SscSPs/gl_ledger_service/internal/adapters/coa"
	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	"github.com/SscSPs/gl_ledger_service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cash    = domain.AccountRef{AccountID: "acc-cash", CompanyID: "co-1", Code: "1000", Name: "Cash", AccountType: domain.Asset, IsActive: true}
	revenue = domain.AccountRef{AccountID: "acc-rev", CompanyID: "co-1", Code: "4000", Name: "Sales", AccountType: domain.Revenue, NormalBalance: domain.CreditNormal, IsActive: true}
)

func TestStaticDirectory_ScopesByCompany(t *testing.T) {
	dir := coa.NewStaticDirectory(cash, revenue)
	dir.Put(domain.AccountRef{AccountID: "acc-other", CompanyID: "co-2", Code: "1000", Name: "Cash", IsActive: true})

	found, err := dir.LookupAccounts(context.Background(), "co-1", []string{"acc-cash", "acc-other", "acc-missing"})

	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, cash, found["acc-cash"])
}

func TestHTTPDirectory_LookupAccounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts", r.URL.Path)
		assert.Equal(t, "acc-cash,acc-rev", r.URL.Query().Get("ids"))
		assert.Equal(t, "co-1", r.Header.Get(middleware.HeaderCompanyID))
		assert.Equal(t, "user-1", r.Header.Get(middleware.HeaderUserID))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"accounts": []domain.AccountRef{cash, revenue}})
	}))
	defer srv.Close()

	ctx := middleware.WithIdentity(context.Background(), "user-1", "co-1")
	found, err := coa.NewHTTPDirectory(srv.URL+"/", time.Second).LookupAccounts(ctx, "co-1", []string{"acc-cash", "acc-rev"})

	require.NoError(t, err)
	assert.Equal(t, map[string]domain.AccountRef{"acc-cash": cash, "acc-rev": revenue}, found)
}

func TestHTTPDirectory_CommaIDsAreNeverSent(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "acc-cash", r.URL.Query().Get("ids"))
		_ = json.NewEncoder(w).Encode(map[string]any{"accounts": []domain.AccountRef{cash, revenue}})
	}))
	defer srv.Close()
	dir := coa.NewHTTPDirectory(srv.URL, time.Second)

	found, err := dir.LookupAccounts(context.Background(), "co-1", []string{"acc-cash", "acc-rev,acc-cash"})
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.AccountRef{"acc-cash": cash}, found)

	found, err = dir.LookupAccounts(context.Background(), "co-1", []string{"acc-rev,acc-cash"})
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.Equal(t, 1, calls)
}

func TestHTTPDirectory_StatusHandling(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "not found means none exist", status: http.StatusNotFound},
		{name: "server error", status: http.StatusBadGateway, wantErr: true},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			found, err := coa.NewHTTPDirectory(srv.URL, time.Second).LookupAccounts(context.Background(), "co-1", []string{"acc-cash"})

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, found)
		})
	}
}

func TestHTTPDirectory_TimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := coa.NewHTTPDirectory(srv.URL, 20*time.Millisecond).LookupAccounts(context.Background(), "co-1", []string{"acc-cash"})

	assert.Error(t, err)
}

func TestSQLDirectory_LookupAccounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM accounts WHERE company_id = \$1 AND id IN \(\$2, \$3\)`).
		WithArgs("co-1", "acc-cash", "acc-rev").
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "code", "name", "account_type", "normal_balance", "is_active"}).
			AddRow("acc-cash", "co-1", "1000", "Cash", "asset", "", true).
			AddRow("acc-rev", "co-1", "4000", "Sales", "revenue", "credit", false))

	found, err := coa.NewSQLDirectory(db).LookupAccounts(context.Background(), "co-1", []string{"acc-cash", "acc-rev"})

	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, domain.Asset, found["acc-cash"].AccountType)
	assert.Equal(t, domain.DebitNormal, found["acc-cash"].Side())
	assert.Equal(t, domain.CreditNormal, found["acc-rev"].NormalBalance)
	assert.False(t, found["acc-rev"].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLDirectory_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM accounts`).WillReturnError(assert.AnError)

	_, err = coa.NewSQLDirectory(db).LookupAccounts(context.Background(), "co-1", []string{"acc-cash"})

	assert.ErrorIs(t, err, assert.AnError)
}
