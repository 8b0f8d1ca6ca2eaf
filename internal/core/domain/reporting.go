package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostedAccountTotals are the raw posted debit and credit sums for one account.
type PostedAccountTotals struct {
	AccountID     string
	AccountCode   string
	AccountName   string
	NormalBalance NormalBalance
	Debit         decimal.Decimal
	Credit        decimal.Decimal
	// MixedNormalBalance is set when the account's lines were captured with both sides.
	MixedNormalBalance bool
}

// AccountBalance is an account's posted activity netted on its normal side.
type AccountBalance struct {
	AccountID     string          `json:"account_id"`
	AccountCode   string          `json:"account_code"`
	AccountName   string          `json:"account_name"`
	NormalBalance NormalBalance   `json:"normal_balance"`
	TotalDebit    decimal.Decimal `json:"total_debit"`
	TotalCredit   decimal.Decimal `json:"total_credit"`
	Balance       decimal.Decimal `json:"balance"` // Positive when on the normal side
}

// AccountBalancesReport lists account balances as of a date.
type AccountBalancesReport struct {
	CompanyID string           `json:"company_id"`
	AsOfDate  time.Time        `json:"as_of_date"`
	Balances  []AccountBalance `json:"balances"`
}

// TrialBalanceRow represents a single row in a trial balance report.
// Only one of Debit and Credit is non-zero.
type TrialBalanceRow struct {
	AccountID     string          `json:"account_id"`
	AccountCode   string          `json:"account_code"`
	AccountName   string          `json:"account_name"`
	NormalBalance NormalBalance   `json:"normal_balance"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// TrialBalance lists every account with posted activity and whether the ledger closes.
type TrialBalance struct {
	CompanyID    string            `json:"company_id"`
	AsOfDate     time.Time         `json:"as_of_date"`
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"total_debits"`
	TotalCredits decimal.Decimal   `json:"total_credits"`
	Difference   decimal.Decimal   `json:"difference"` // TotalDebits - TotalCredits
	IsBalanced   bool              `json:"is_balanced"`
}
