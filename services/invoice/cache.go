package invoice

import (
	"context"
	"encoding/json"
	"time"

	"billify/models"

	"github.com/go-redis/redis/v8"
)

const invoiceCachePrefix = "invoice:id:"

// InvoiceCache is a TTL-bounded read-through cache of export bill documents
// keyed by id. It is a best-effort optimization: a nil cache (or a cache
// miss or redis failure) always falls through to the repository, which
// remains the source of truth.
type InvoiceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInvoiceCache wraps a redis client for invoice lookups.
func NewInvoiceCache(client *redis.Client, ttl time.Duration) *InvoiceCache {
	return &InvoiceCache{client: client, ttl: ttl}
}

func (c *InvoiceCache) newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Second)
}

// Get returns the cached bill for id, or nil on a miss or any cache error.
func (c *InvoiceCache) Get(id string) *models.Invoice {
	if c == nil || c.client == nil {
		return nil
	}
	ctx, cancel := c.newContext()
	defer cancel()

	data, err := c.client.Get(ctx, invoiceCachePrefix+id).Result()
	if err != nil {
		return nil
	}
	var inv models.Invoice
	if err := json.Unmarshal([]byte(data), &inv); err != nil {
		return nil
	}
	return &inv
}

// Set stores a bill under its id.
func (c *InvoiceCache) Set(inv *models.Invoice) {
	if c == nil || c.client == nil || inv == nil {
		return
	}
	b, err := json.Marshal(inv)
	if err != nil {
		return
	}
	ctx, cancel := c.newContext()
	defer cancel()
	c.client.Set(ctx, invoiceCachePrefix+inv.ID.Hex(), b, c.ttl)
}

// Invalidate drops the cached bill for id, if any.
func (c *InvoiceCache) Invalidate(id string) {
	if c == nil || c.client == nil {
		return
	}
	ctx, cancel := c.newContext()
	defer cancel()
	c.client.Del(ctx, invoiceCachePrefix+id)
}
