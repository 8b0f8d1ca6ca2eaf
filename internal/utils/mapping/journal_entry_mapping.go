package mapping

import (
	"encoding/json"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	"github.com/SscSPs/gl_ledger_service/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt: d.CreatedAt,
		CreatedBy: d.CreatedBy,
		UpdatedAt: d.UpdatedAt,
		UpdatedBy: d.UpdatedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
		UpdatedAt: m.UpdatedAt,
		UpdatedBy: m.UpdatedBy,
	}
}

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		ID:          d.ID,
		CompanyID:   d.CompanyID,
		EntryNumber: d.EntryNumber,
		EntryDate:   d.EntryDate,
		Description: nullableString(d.Description),
		Reference:   nullableString(d.Reference),
		TotalDebit:  d.TotalDebit,
		TotalCredit: d.TotalCredit,
		Status:      string(d.Status),
		IsPosted:    d.IsPosted,
		ApprovedBy:  d.ApprovedBy,
		ApprovedAt:  d.ApprovedAt,
		PostedBy:    d.PostedBy,
		PostedAt:    d.PostedAt,
		CancelledBy: d.CancelledBy,
		CancelledAt: d.CancelledAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		EntryNumber: m.EntryNumber,
		EntryDate:   m.EntryDate,
		Description: derefString(m.Description),
		Reference:   derefString(m.Reference),
		TotalDebit:  m.TotalDebit,
		TotalCredit: m.TotalCredit,
		Status:      domain.JournalEntryStatus(m.Status),
		IsPosted:    m.IsPosted,
		ApprovedBy:  m.ApprovedBy,
		ApprovedAt:  m.ApprovedAt,
		PostedBy:    m.PostedBy,
		PostedAt:    m.PostedAt,
		CancelledBy: m.CancelledBy,
		CancelledAt: m.CancelledAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntryLine converts a domain JournalEntryLine to a model JournalEntryLine
func ToModelJournalEntryLine(d domain.JournalEntryLine) models.JournalEntryLine {
	return models.JournalEntryLine{
		ID:             d.ID,
		JournalEntryID: d.JournalEntryID,
		LineNumber:     d.LineNumber,
		AccountID:      d.AccountID,
		AccountCode:    d.AccountCode,
		AccountName:    d.AccountName,
		NormalBalance:  string(d.NormalBalance),
		Description:    nullableString(d.Description),
		DebitAmount:    d.DebitAmount,
		CreditAmount:   d.CreditAmount,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainJournalEntryLine converts a model JournalEntryLine to a domain JournalEntryLine
func ToDomainJournalEntryLine(m models.JournalEntryLine) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		ID:             m.ID,
		JournalEntryID: m.JournalEntryID,
		LineNumber:     m.LineNumber,
		AccountID:      m.AccountID,
		AccountCode:    m.AccountCode,
		AccountName:    m.AccountName,
		NormalBalance:  domain.NormalBalance(m.NormalBalance),
		Description:    derefString(m.Description),
		DebitAmount:    m.DebitAmount,
		CreditAmount:   m.CreditAmount,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainJournalEntryLineSlice converts a slice of model lines to domain lines
func ToDomainJournalEntryLineSlice(ms []models.JournalEntryLine) []domain.JournalEntryLine {
	ds := make([]domain.JournalEntryLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntryLine(m)
	}
	return ds
}

// ToModelAuditLog converts a domain AuditLogRecord to a model AuditLog
func ToModelAuditLog(d domain.AuditLogRecord) models.AuditLog {
	return models.AuditLog{
		ID:        d.ID,
		CompanyID: d.CompanyID,
		TableName: d.TableName,
		RecordID:  d.RecordID,
		Action:    string(d.Action),
		OldValues: d.OldValues,
		NewValues: d.NewValues,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainAuditLog converts a model AuditLog to a domain AuditLogRecord
func ToDomainAuditLog(m models.AuditLog) domain.AuditLogRecord {
	return domain.AuditLogRecord{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		TableName: m.TableName,
		RecordID:  m.RecordID,
		Action:    domain.AuditAction(m.Action),
		OldValues: json.RawMessage(m.OldValues),
		NewValues: json.RawMessage(m.NewValues),
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
