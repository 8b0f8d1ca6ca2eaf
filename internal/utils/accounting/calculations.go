package accounting

import (
	"github.com/SscSPs/gl_ledger_service/internal/apperrors"
	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaxAmountScale is the number of decimal places the ledger stores.
const MaxAmountScale = 2

// MaxAmount is the largest amount or entry total a NUMERIC(19,2) column holds.
var MaxAmount = decimal.RequireFromString("99999999999999999.99")

// ValidateLines checks proposed journal lines and returns their debit and credit totals.
// Rules are applied in order: the entry must have lines, each line must carry exactly one
// positive side with at most two decimal places and no more than MaxAmount, the running
// totals must stay within MaxAmount, and the sides must balance.
func ValidateLines(lines []domain.JournalEntryLineInput) (debits, credits decimal.Decimal, err error) {
	if len(lines) == 0 {
		return decimal.Zero, decimal.Zero, apperrors.EmptyEntryError{}
	}

	for i, l := range lines {
		if reason := lineAmountProblem(l.Debit, l.Credit); reason != "" {
			return decimal.Zero, decimal.Zero, apperrors.InvalidLineAmountError{LineNumber: i + 1, Reason: reason}
		}
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
		if debits.GreaterThan(MaxAmount) || credits.GreaterThan(MaxAmount) {
			return decimal.Zero, decimal.Zero, apperrors.InvalidLineAmountError{
				LineNumber: i + 1,
				Reason:     "entry total would exceed " + MaxAmount.StringFixed(MaxAmountScale),
			}
		}
	}

	if !debits.Equal(credits) {
		return debits, credits, apperrors.DebitCreditMismatchError{Debits: debits, Credits: credits}
	}
	return debits, credits, nil
}

func lineAmountProblem(debit, credit decimal.Decimal) string {
	switch {
	case debit.IsNegative() || credit.IsNegative():
		return "amounts cannot be negative"
	case debit.IsPositive() && credit.IsPositive():
		return "a line cannot carry both a debit and a credit"
	case debit.IsZero() && credit.IsZero():
		return "a line must carry either a debit or a credit"
	case !hasMaxScale(debit) || !hasMaxScale(credit):
		return "amounts cannot have more than two decimal places"
	case debit.GreaterThan(MaxAmount) || credit.GreaterThan(MaxAmount):
		return "amounts cannot exceed " + MaxAmount.StringFixed(MaxAmountScale)
	}
	return ""
}

func hasMaxScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MaxAmountScale))
}

// SignedBalance nets posted debits and credits on the account's normal side.
// A positive result means the account carries a balance on its normal side.
func SignedBalance(debit, credit decimal.Decimal, side domain.NormalBalance) decimal.Decimal {
	if side == domain.CreditNormal {
		return credit.Sub(debit)
	}
	return debit.Sub(credit)
}

// TrialBalanceColumns places an account's net balance in the debit or credit column.
// A balance on the normal side goes in that side's column; a balance against it goes in the other.
func TrialBalanceColumns(debit, credit decimal.Decimal, side domain.NormalBalance) (debitCol, creditCol decimal.Decimal) {
	net := SignedBalance(debit, credit, side)
	onDebitSide := side != domain.CreditNormal
	if net.IsNegative() {
		onDebitSide = !onDebitSide
		net = net.Neg()
	}
	if onDebitSide {
		return net, decimal.Zero
	}
	return decimal.Zero, net
}
