package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Income    AccountType = "INCOME" // Synonym of Revenue used by some charts.
	Expense   AccountType = "EXPENSE"
)

// NormalBalance is the side on which an account's balance increases.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "DEBIT"
	CreditNormal NormalBalance = "CREDIT"
)

// IsValid reports whether n is one of the two sides.
func (n NormalBalance) IsValid() bool {
	return n == DebitNormal || n == CreditNormal
}

// NormalBalance returns the natural side of the account type.
// Unknown types default to debit-normal.
func (t AccountType) NormalBalance() NormalBalance {
	switch t {
	case Liability, Equity, Revenue, Income:
		return CreditNormal
	default:
		return DebitNormal
	}
}

// AccountRef is the Chart-of-Accounts view of an account that the ledger needs.
// The chart of accounts owns the account; the ledger only references it.
type AccountRef struct {
	AccountID     string        `json:"account_id"`
	CompanyID     string        `json:"company_id"`
	Code          string        `json:"code"`
	Name          string        `json:"name"`
	AccountType   AccountType   `json:"account_type,omitempty"`
	NormalBalance NormalBalance `json:"normal_balance,omitempty"`
	IsActive      bool          `json:"is_active"`
}

// Side returns the account's normal balance, derived from its type when not given.
func (a AccountRef) Side() NormalBalance {
	if a.NormalBalance.IsValid() {
		return a.NormalBalance
	}
	return a.AccountType.NormalBalance()
}
