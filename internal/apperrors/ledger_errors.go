package apperrors

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EmptyEntryError is returned when a journal entry has no lines.
type EmptyEntryError struct{}

func (EmptyEntryError) Error() string { return "journal entry must have at least one line" }

func (EmptyEntryError) Unwrap() error { return ErrBusinessRule }

// InvalidLineAmountError is returned when a line does not carry exactly one positive side.
type InvalidLineAmountError struct {
	LineNumber int
	Reason     string
}

func (e InvalidLineAmountError) Error() string {
	return fmt.Sprintf("line %d: %s", e.LineNumber, e.Reason)
}

func (InvalidLineAmountError) Unwrap() error { return ErrBusinessRule }

// DebitCreditMismatchError is returned when an entry's debits and credits differ.
type DebitCreditMismatchError struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

func (e DebitCreditMismatchError) Error() string {
	return fmt.Sprintf("debits (%s) do not equal credits (%s)", e.Debits.StringFixed(2), e.Credits.StringFixed(2))
}

func (DebitCreditMismatchError) Unwrap() error { return ErrBusinessRule }

// AccountNotFoundError is returned when a referenced account does not exist for the company or is inactive.
type AccountNotFoundError struct {
	AccountID string
}

func (e AccountNotFoundError) Error() string {
	return fmt.Sprintf("account %s not found or inactive", e.AccountID)
}

func (AccountNotFoundError) Unwrap() error { return ErrReference }

// InvalidStatusError is returned for a status change the lifecycle does not allow.
type InvalidStatusError struct {
	From string
	To   string
}

func (e InvalidStatusError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

func (InvalidStatusError) Unwrap() error { return ErrConflict }

// EntryNotDeletableError is returned when deleting an entry that has left the draft state.
type EntryNotDeletableError struct {
	EntryID string
	Status  string
}

func (e EntryNotDeletableError) Error() string {
	return fmt.Sprintf("journal entry %s is %s; only draft entries can be deleted", e.EntryID, e.Status)
}

func (EntryNotDeletableError) Unwrap() error { return ErrConflict }
