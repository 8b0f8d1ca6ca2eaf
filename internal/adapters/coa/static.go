package coa

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portssvc "github.com/SscSPs/gl_ledger_service/internal/core/ports/services"
)

// StaticDirectory is an in-memory chart of accounts for local development and tests.
type StaticDirectory struct {
	mu       sync.RWMutex
	accounts map[string]domain.AccountRef
}

var _ portssvc.ChartOfAccounts = (*StaticDirectory)(nil)

func NewStaticDirectory(accounts ...domain.AccountRef) *StaticDirectory {
	d := &StaticDirectory{accounts: make(map[string]domain.AccountRef, len(accounts))}
	for _, a := range accounts {
		d.accounts[a.AccountID] = a
	}
	return d
}

// LoadStaticDirectory reads a JSON array of accounts from path.
func LoadStaticDirectory(path string) (*StaticDirectory, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart of accounts file %s: %w", path, err)
	}
	var accounts []domain.AccountRef
	if err := json.Unmarshal(b, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode chart of accounts file %s: %w", path, err)
	}
	return NewStaticDirectory(accounts...), nil
}

// Put adds or replaces an account.
func (d *StaticDirectory) Put(a domain.AccountRef) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.accounts[a.AccountID] = a
}

func (d *StaticDirectory) LookupAccounts(_ context.Context, companyID string, accountIDs []string) (map[string]domain.AccountRef, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	found := make(map[string]domain.AccountRef, len(accountIDs))
	for _, id := range accountIDs {
		if a, ok := d.accounts[id]; ok && a.CompanyID == companyID {
			found[id] = a
		}
	}
	return found, nil
}
