package dto

import (
	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
)

// ReportQueryParams are the query parameters shared by the balance reports.
type ReportQueryParams struct {
	AsOfDate  string `form:"as_of_date" binding:"omitempty,datetime=2006-01-02"`
	AccountID string `form:"account_id" binding:"omitempty,max=64"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID     string `json:"account_id"`
	AccountCode   string `json:"account_code"`
	AccountName   string `json:"account_name"`
	NormalBalance string `json:"normal_balance"`
	Debit         string `json:"debit"`
	Credit        string `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOfDate     string                    `json:"as_of_date"`
	Rows         []TrialBalanceRowResponse `json:"rows"`
	TotalDebits  string                    `json:"total_debits"`
	TotalCredits string                    `json:"total_credits"`
	Difference   string                    `json:"difference"`
	IsBalanced   bool                      `json:"is_balanced"`
}

// AccountBalanceResponse is one account's balance.
type AccountBalanceResponse struct {
	AccountID     string `json:"account_id"`
	AccountCode   string `json:"account_code"`
	AccountName   string `json:"account_name"`
	NormalBalance string `json:"normal_balance"`
	TotalDebit    string `json:"total_debit"`
	TotalCredit   string `json:"total_credit"`
	Balance       string `json:"balance"`
}

// AccountBalancesResponse lists account balances as of a date.
type AccountBalancesResponse struct {
	AsOfDate string                   `json:"as_of_date"`
	Balances []AccountBalanceResponse `json:"balances"`
}

// ToTrialBalanceResponse converts a domain.TrialBalance to its DTO.
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(tb.Rows))
	for i, r := range tb.Rows {
		rows[i] = TrialBalanceRowResponse{
			AccountID:     r.AccountID,
			AccountCode:   r.AccountCode,
			AccountName:   r.AccountName,
			NormalBalance: string(r.NormalBalance),
			Debit:         Money(r.Debit),
			Credit:        Money(r.Credit),
		}
	}
	return TrialBalanceResponse{
		AsOfDate:     tb.AsOfDate.Format(domain.DateLayout),
		Rows:         rows,
		TotalDebits:  Money(tb.TotalDebits),
		TotalCredits: Money(tb.TotalCredits),
		Difference:   Money(tb.Difference),
		IsBalanced:   tb.IsBalanced,
	}
}

// ToAccountBalancesResponse converts a domain.AccountBalancesReport to its DTO.
func ToAccountBalancesResponse(r *domain.AccountBalancesReport) AccountBalancesResponse {
	balances := make([]AccountBalanceResponse, len(r.Balances))
	for i, b := range r.Balances {
		balances[i] = AccountBalanceResponse{
			AccountID:     b.AccountID,
			AccountCode:   b.AccountCode,
			AccountName:   b.AccountName,
			NormalBalance: string(b.NormalBalance),
			TotalDebit:    Money(b.TotalDebit),
			TotalCredit:   Money(b.TotalCredit),
			Balance:       Money(b.Balance),
		}
	}
	return AccountBalancesResponse{AsOfDate: r.AsOfDate.Format(domain.DateLayout), Balances: balances}
}
