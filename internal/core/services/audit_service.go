package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_ledger_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/gl_ledger_service/internal/utils/pagination"
)

type auditService struct {
	BaseService
	auditRepo portsrepo.AuditReader
}

// NewAuditService creates the read side of the audit trail.
func NewAuditService(auditRepo portsrepo.AuditReader) portssvc.AuditService {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditService = (*auditService)(nil)

func (s *auditService) ListAuditLogs(ctx context.Context, companyID string, filter domain.AuditLogFilter) ([]domain.AuditLogRecord, error) {
	filter.Limit, filter.Offset = pagination.Normalize(filter.Limit, filter.Offset)

	recs, err := s.auditRepo.ListAuditLogs(ctx, companyID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit logs", slog.String("company_id", companyID), slog.String("record_id", filter.RecordID))
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	if recs == nil {
		recs = []domain.AuditLogRecord{}
	}
	return recs, nil
}
