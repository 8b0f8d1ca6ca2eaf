package coa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portssvc "github.com/SscSPs/gl_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/gl_ledger_service/internal/middleware"
)

// HTTPDirectory resolves accounts through the Chart of Accounts service.
type HTTPDirectory struct {
	baseURL string
	client  *http.Client
}

var _ portssvc.ChartOfAccounts = (*HTTPDirectory)(nil)

type accountsResponse struct {
	Accounts []domain.AccountRef `json:"accounts"`
}

// NewHTTPDirectory creates a client for baseURL. Every request is bounded by timeout.
func NewHTTPDirectory(baseURL string, timeout time.Duration) *HTTPDirectory {
	return &HTTPDirectory{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// LookupAccounts issues one GET {base}/accounts?ids=a,b for the batch.
// A 404 means none of the ids exist. Ids containing a comma cannot be listed and are never found.
func (d *HTTPDirectory) LookupAccounts(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.AccountRef, error) {
	found := make(map[string]domain.AccountRef, len(accountIDs))
	ids := make([]string, 0, len(accountIDs))
	for _, id := range accountIDs {
		if !strings.Contains(id, ",") {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return found, nil
	}

	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/accounts?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build chart of accounts request: %w", err)
	}
	userID, _ := middleware.IdentityFromCtx(ctx)
	req.Header.Set(middleware.HeaderCompanyID, companyID)
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	if requestID := middleware.RequestIDFromCtx(ctx); requestID != "" {
		req.Header.Set(middleware.HeaderRequestID, requestID)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chart of accounts request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return found, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("chart of accounts returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload accountsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode chart of accounts response: %w", err)
	}
	for _, a := range payload.Accounts {
		found[a.AccountID] = a
	}
	return found, nil
}
