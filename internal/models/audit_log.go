package models

import "time"

// AuditLog is the audit_logs row. Snapshots are raw JSONB.
type AuditLog struct {
	ID        string
	CompanyID string
	TableName string
	RecordID  string
	Action    string
	OldValues []byte
	NewValues []byte
	UserID    string
	CreatedAt time.Time
}
