package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/apperrors"
)

const (
	// EntryNumberPrefix starts every journal entry number.
	EntryNumberPrefix = "JE"
	// MaxEntrySequence is the largest sequence that fits the six-digit suffix.
	MaxEntrySequence = 999999
)

var entryNumberPattern = regexp.MustCompile(`^JE-(\d{4})(\d{2})-(\d{6})$`)

// EntryPeriod is the calendar month that scopes an entry number sequence.
type EntryPeriod struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the period an entry dated t belongs to.
func PeriodOf(t time.Time) EntryPeriod {
	return EntryPeriod{Year: t.Year(), Month: t.Month()}
}

func (p EntryPeriod) String() string {
	return fmt.Sprintf("%04d%02d", p.Year, int(p.Month))
}

// FormatEntryNumber renders JE-YYYYMM-NNNNNN for a period and sequence.
func FormatEntryNumber(p EntryPeriod, seq int64) (string, error) {
	if seq <= 0 || seq > MaxEntrySequence {
		return "", fmt.Errorf("%w: entry sequence %d out of range for period %s", apperrors.ErrConflict, seq, p)
	}
	return fmt.Sprintf("%s-%s-%06d", EntryNumberPrefix, p, seq), nil
}

// ParseEntryNumber splits an entry number into its period and sequence.
func ParseEntryNumber(s string) (EntryPeriod, int64, error) {
	m := entryNumberPattern.FindStringSubmatch(s)
	if m == nil {
		return EntryPeriod{}, 0, fmt.Errorf("%w: malformed entry number %q", apperrors.ErrValidation, s)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	seq, _ := strconv.ParseInt(m[3], 10, 64)
	if month < 1 || month > 12 || seq == 0 {
		return EntryPeriod{}, 0, fmt.Errorf("%w: malformed entry number %q", apperrors.ErrValidation, s)
	}
	return EntryPeriod{Year: year, Month: time.Month(month)}, seq, nil
}
