package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Aside implements the cache-aside pattern: try the cache, fall back to the
// loader, then populate the cache on the way out. A nil Redis client or any
// cache error degrades to calling the loader directly; the cache is never
// allowed to turn a healthy read into a failure.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, load func() error) error {
	if client != nil {
		if raw, err := client.Get(ctx, key).Bytes(); err == nil {
			if json.Unmarshal(raw, dest) == nil {
				return nil
			}
			// Unreadable entry, drop it and reload.
			client.Del(ctx, key)
		}
	}

	if err := load(); err != nil {
		return err
	}

	if client != nil {
		if buf, err := json.Marshal(dest); err == nil {
			client.Set(ctx, key, buf, ttl)
		}
	}

	return nil
}
