package cache

import (
	"context"
	"time"

	"github.com/matzehuels/barfly/pkg/observability"
)

// Observe wraps c so every lookup and write is reported to the registered
// cache hooks. Clear is forwarded when c supports it.
func Observe(c Cache) Cache { return &observed{Cache: c} }

type observed struct {
	Cache
}

func (o *observed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := o.Cache.Get(ctx, key)
	if err == nil {
		if hit {
			observability.Cache().OnCacheHit(ctx, key)
		} else {
			observability.Cache().OnCacheMiss(ctx, key)
		}
	}
	return data, hit, err
}

func (o *observed) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := o.Cache.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, key, len(data))
	return nil
}

func (o *observed) Clear(ctx context.Context) error {
	if cl, ok := o.Cache.(Clearer); ok {
		return cl.Clear(ctx)
	}
	return nil
}
