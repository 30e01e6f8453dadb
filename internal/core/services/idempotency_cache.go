package services

import (
	"time"

	"github.com/gustav-stromberg-tln/fxpayment/internal/core/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// IdempotencyCacheConfig bounds the idempotency-key cache.
type IdempotencyCacheConfig struct {
	Enabled bool
	TTL     time.Duration
	MaxSize int
}

// IdempotencyCache short-circuits repeated create requests without a store
// round trip. Entries are added strictly after a confirmed insert, so every
// cached payment has a committed row behind it; "not found" is never
// cached, and a miss simply falls through to the store. Eviction is
// TTL-driven and capacity-bounded and is not correctness-critical.
type IdempotencyCache struct {
	entries *expirable.LRU[string, domain.Payment]
}

// NewIdempotencyCache creates a new IdempotencyCache. With caching disabled
// it degrades to a no-op and every lookup misses.
func NewIdempotencyCache(cfg IdempotencyCacheConfig) *IdempotencyCache {
	c := &IdempotencyCache{}
	if cfg.Enabled {
		c.entries = expirable.NewLRU[string, domain.Payment](cfg.MaxSize, nil, cfg.TTL)
	}
	return c
}

// Get returns the cached payment for an idempotency key, if present.
func (c *IdempotencyCache) Get(idempotencyKey string) (*domain.Payment, bool) {
	if c.entries == nil {
		return nil, false
	}
	payment, ok := c.entries.Get(idempotencyKey)
	if !ok {
		return nil, false
	}
	return &payment, true
}

// Put records a payment under its idempotency key. Only call after the
// insert has committed.
func (c *IdempotencyCache) Put(idempotencyKey string, payment domain.Payment) {
	if c.entries == nil {
		return
	}
	c.entries.Add(idempotencyKey, payment)
}
