// Package cache decorates the investor store with a Redis read-through
// cache. Reads on the hot paths (eligibility checks hit FindByID on every
// deal commitment) are served from Redis when fresh; every write
// invalidates before returning so a subsequent read never sees the
// pre-write record beyond the TTL.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"dealgate/internal/investor/models"
	"dealgate/internal/investor/service"
	platformredis "dealgate/internal/platform/redis"
)

// TTL bounds staleness for cache entries that miss an invalidation
// (e.g. Redis was unreachable during a write).
const TTL = 30 * time.Second

// InvestorCache wraps an InvestorStore. A nil Redis client makes every
// call a pass-through, so dev mode runs without Redis.
type InvestorCache struct {
	next  service.InvestorStore
	redis *platformredis.Client
}

func New(next service.InvestorStore, redis *platformredis.Client) *InvestorCache {
	return &InvestorCache{next: next, redis: redis}
}

func idKey(id models.InvestorID) string  { return "investor:id:" + id.String() }
func accountKey(accountID string) string { return "investor:account:" + accountID }

func (c *InvestorCache) CreateIfAccountAvailable(ctx context.Context, inv *models.Investor) error {
	if err := c.next.CreateIfAccountAvailable(ctx, inv); err != nil {
		return err
	}
	c.invalidate(ctx, inv)
	return nil
}

func (c *InvestorCache) FindByID(ctx context.Context, id models.InvestorID) (*models.Investor, error) {
	if inv := c.lookup(ctx, idKey(id)); inv != nil {
		return inv, nil
	}
	inv, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, idKey(id), inv)
	return inv, nil
}

func (c *InvestorCache) FindByAccountID(ctx context.Context, accountID string) (*models.Investor, error) {
	if inv := c.lookup(ctx, accountKey(accountID)); inv != nil {
		return inv, nil
	}
	inv, err := c.next.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, accountKey(accountID), inv)
	return inv, nil
}

// List always goes to the store; filtered scans are not worth caching.
func (c *InvestorCache) List(ctx context.Context, filter models.ListFilter, now time.Time) ([]*models.Investor, error) {
	return c.next.List(ctx, filter, now)
}

func (c *InvestorCache) Execute(ctx context.Context, id models.InvestorID,
	validate func(*models.Investor) error,
	mutate func(*models.Investor)) (*models.Investor, error) {
	inv, err := c.next.Execute(ctx, id, validate, mutate)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, inv)
	return inv, nil
}

// lookup returns a cached investor or nil. Cache faults are treated as
// misses; the store is the source of truth.
func (c *InvestorCache) lookup(ctx context.Context, key string) *models.Investor {
	if c.redis == nil {
		return nil
	}
	raw, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var inv models.Investor
	if err := json.Unmarshal(raw, &inv); err != nil {
		return nil
	}
	return &inv
}

func (c *InvestorCache) store(ctx context.Context, key string, inv *models.Investor) {
	if c.redis == nil {
		return
	}
	raw, err := json.Marshal(inv)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, key, raw, TTL).Err()
}

func (c *InvestorCache) invalidate(ctx context.Context, inv *models.Investor) {
	if c.redis == nil {
		return
	}
	_ = c.redis.Del(ctx, idKey(inv.ID), accountKey(inv.AccountID)).Err()
}
