// Package cache keeps recent income-analysis results in Redis so repeated
// reads of an unchanged application skip reclassification. Any data change
// must invalidate the entry; the TTL only bounds staleness when an
// invalidation is missed.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"komek/internal/analysis"
	id "komek/pkg/domain"
)

const keyPrefix = "komek:analysis:"

// Cache stores analysis results keyed by application ID.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// New returns a cache over the given client, or nil when Redis is not
// configured. A nil *Cache is safe to use and behaves as a miss on every
// read.
func New(client redis.Cmdable, ttl time.Duration) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client, ttl: ttl}
}

func key(appID id.ApplicationID) string {
	return keyPrefix + appID.String()
}

// Get returns the cached result for the application, reporting a miss for
// absent or undecodable entries.
func (c *Cache) Get(ctx context.Context, appID id.ApplicationID) (*analysis.Result, bool, error) {
	if c == nil {
		return nil, false, nil
	}

	raw, err := c.client.Get(ctx, key(appID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var result analysis.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		// Treat a corrupt entry as a miss and drop it.
		c.client.Del(ctx, key(appID))
		return nil, false, nil
	}
	return &result, true, nil
}

// Set stores the result under the configured TTL.
func (c *Cache) Set(ctx context.Context, appID id.ApplicationID, result analysis.Result) error {
	if c == nil {
		return nil
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(appID), raw, c.ttl).Err()
}

// Invalidate drops the cached result after any application data change.
func (c *Cache) Invalidate(ctx context.Context, appID id.ApplicationID) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, key(appID)).Err()
}
