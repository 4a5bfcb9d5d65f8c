package redisx

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// StatsCache is the cache-aside wrapper for the dashboard stats JSON.
// Every error is treated as a miss; the DB stays the source of truth.
type StatsCache struct{ R *redis.Client }

func (c *StatsCache) Get(ctx context.Context) ([]byte, bool) {
	b, err := c.R.Get(ctx, KeyDashboardStats).Bytes()
	if err != nil || len(b) == 0 {
		return nil, false
	}
	return b, true
}

func (c *StatsCache) Set(ctx context.Context, body []byte) {
	_ = c.R.Set(ctx, KeyDashboardStats, body, TTLStatsCache).Err()
}

func (c *StatsCache) Invalidate(ctx context.Context) {
	_ = c.R.Del(ctx, KeyDashboardStats).Err()
}
