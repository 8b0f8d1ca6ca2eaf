package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditAction names the kind of change an audit record captures.
type AuditAction string

const (
	AuditCreate       AuditAction = "CREATE"
	AuditUpdate       AuditAction = "UPDATE"
	AuditStatusUpdate AuditAction = "STATUS_UPDATE"
	AuditDelete       AuditAction = "DELETE"
)

// TableJournalEntries is the audited table name for journal entries.
const TableJournalEntries = "journal_entries"

// AuditLogRecord is an append-only record of a mutation.
type AuditLogRecord struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	TableName string          `json:"table_name"`
	RecordID  string          `json:"record_id"`
	Action    AuditAction     `json:"action"`
	OldValues json.RawMessage `json:"old_values,omitempty"`
	NewValues json.RawMessage `json:"new_values,omitempty"`
	UserID    string          `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewJournalEntryAudit snapshots the before and after state of an entry.
// Either snapshot may be nil.
func NewJournalEntryAudit(action AuditAction, before, after *JournalEntry, userID string, at time.Time) (AuditLogRecord, error) {
	rec := AuditLogRecord{
		ID:        uuid.NewString(),
		TableName: TableJournalEntries,
		Action:    action,
		UserID:    userID,
		CreatedAt: at,
	}
	for _, e := range []*JournalEntry{before, after} {
		if e != nil {
			rec.CompanyID = e.CompanyID
			rec.RecordID = e.ID
		}
	}

	var err error
	if before != nil {
		if rec.OldValues, err = json.Marshal(before); err != nil {
			return AuditLogRecord{}, fmt.Errorf("failed to snapshot journal entry: %w", err)
		}
	}
	if after != nil {
		if rec.NewValues, err = json.Marshal(after); err != nil {
			return AuditLogRecord{}, fmt.Errorf("failed to snapshot journal entry: %w", err)
		}
	}
	return rec, nil
}

// AuditLogFilter narrows an audit log listing.
type AuditLogFilter struct {
	TableName string
	RecordID  string
	Limit     int
	Offset    int
}
