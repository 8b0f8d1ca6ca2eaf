package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
)

// ListAuditLogsParams are the query parameters of GET /audit-logs.
type ListAuditLogsParams struct {
	TableName string `form:"table_name" binding:"omitempty,max=64"`
	RecordID  string `form:"record_id" binding:"omitempty,max=64"`
	Limit     int    `form:"limit" binding:"omitempty,min=0"`
	Offset    int    `form:"offset" binding:"omitempty,min=0"`
}

// AuditLogResponse is one audit record.
type AuditLogResponse struct {
	ID        string          `json:"id"`
	TableName string          `json:"table_name"`
	RecordID  string          `json:"record_id"`
	Action    string          `json:"action"`
	OldValues json.RawMessage `json:"old_values,omitempty" swaggertype:"object"`
	NewValues json.RawMessage `json:"new_values,omitempty" swaggertype:"object"`
	UserID    string          `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToAuditLogResponses converts domain audit records to DTOs.
func ToAuditLogResponses(recs []domain.AuditLogRecord) []AuditLogResponse {
	out := make([]AuditLogResponse, len(recs))
	for i, r := range recs {
		out[i] = AuditLogResponse{
			ID:        r.ID,
			TableName: r.TableName,
			RecordID:  r.RecordID,
			Action:    string(r.Action),
			OldValues: r.OldValues,
			NewValues: r.NewValues,
			UserID:    r.UserID,
			CreatedAt: r.CreatedAt,
		}
	}
	return out
}
