package coa

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/SscSPs/gl_ledger_service/internal/core/domain"
	portssvc "github.com/SscSPs/gl_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/gl_ledger_service/internal/middleware"
	"github.com/go-redis/redis/v8"
)

const cacheKeyPrefix = "coa:account"

// CachedDirectory is a read-through Redis cache in front of another directory.
// Redis failures fall through to the wrapped directory. A cached account, including its
// active flag, is served for up to ttl; a non-positive ttl disables caching.
type CachedDirectory struct {
	next portssvc.ChartOfAccounts
	rdb  redis.Cmdable
	ttl  time.Duration
}

var _ portssvc.ChartOfAccounts = (*CachedDirectory)(nil)

func NewCachedDirectory(next portssvc.ChartOfAccounts, rdb redis.Cmdable, ttl time.Duration) *CachedDirectory {
	return &CachedDirectory{next: next, rdb: rdb, ttl: ttl}
}

func cacheKey(companyID, accountID string) string {
	return cacheKeyPrefix + ":" + companyID + ":" + accountID
}

func (d *CachedDirectory) LookupAccounts(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.AccountRef, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.AccountRef{}, nil
	}
	if d.ttl <= 0 {
		return d.next.LookupAccounts(ctx, companyID, accountIDs)
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	keys := make([]string, len(accountIDs))
	for i, id := range accountIDs {
		keys[i] = cacheKey(companyID, id)
	}

	vals, err := d.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		logger.Warn("Chart of accounts cache read failed", slog.String("error", err.Error()))
		return d.next.LookupAccounts(ctx, companyID, accountIDs)
	}

	found := make(map[string]domain.AccountRef, len(accountIDs))
	var missing []string
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			missing = append(missing, accountIDs[i])
			continue
		}
		var a domain.AccountRef
		if err := json.Unmarshal([]byte(s), &a); err != nil {
			logger.Warn("Discarding undecodable cached account", slog.String("key", keys[i]), slog.String("error", err.Error()))
			missing = append(missing, accountIDs[i])
			continue
		}
		found[accountIDs[i]] = a
	}
	if len(missing) == 0 {
		return found, nil
	}

	fetched, err := d.next.LookupAccounts(ctx, companyID, missing)
	if err != nil {
		return nil, err
	}
	for _, id := range missing {
		a, ok := fetched[id]
		if !ok {
			continue
		}
		found[id] = a
		b, err := json.Marshal(a)
		if err != nil {
			continue
		}
		if err := d.rdb.Set(ctx, cacheKey(companyID, id), b, d.ttl).Err(); err != nil {
			logger.Warn("Chart of accounts cache write failed", slog.String("account_id", id), slog.String("error", err.Error()))
		}
	}
	return found, nil
}
