package redisx

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Dedup tracks processed event ids per consuming service.
type Dedup struct {
	R       *redis.Client
	Service string
}

func (d *Dedup) SeenBefore(ctx context.Context, eventID string) (bool, error) {
	return Exists(ctx, d.R, fmt.Sprintf(KeyDedup, d.Service, eventID))
}

func (d *Dedup) MarkSeen(ctx context.Context, eventID string) error {
	return d.R.Set(ctx, fmt.Sprintf(KeyDedup, d.Service, eventID), "1", TTLDedup).Err()
}
