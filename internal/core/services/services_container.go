package services

import (
	portsrepo "github.com/SscSPs/gl_ledger_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gl_ledger_service/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, chart portssvc.ChartOfAccounts) *portssvc.ServiceContainer {
	checker := NewAccountChecker(chart)
	numberer := NewEntryNumberGenerator(repos.EntrySequenceRepo)

	return &portssvc.ServiceContainer{
		JournalEntry: NewJournalEntryService(repos.JournalEntryRepo, checker, numberer),
		Reporting:    NewReportingService(repos.ReportingRepo),
		Audit:        NewAuditService(repos.AuditRepo),
	}
}
