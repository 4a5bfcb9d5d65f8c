package redisx

import "time"

const (
	// Cached dashboard stats JSON, invalidated on every catalog/ledger write.
	KeyDashboardStats = "dashboard:stats"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLStatsCache = 30 * time.Second
	TTLDedup      = 48 * time.Hour
)
