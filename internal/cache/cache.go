// Package cache keeps rendered dashboard payloads in Redis so the frontend's
// polling does not hit Postgres on every refresh.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const dashboardTTL = time.Minute

type DashboardCache struct {
	rdb *redis.Client
}

func NewDashboardCache(rdb *redis.Client) *DashboardCache {
	return &DashboardCache{rdb: rdb}
}

func dashboardKey(today time.Time) string {
	return "dashboard:" + today.Format("2006-01-02")
}

// GetDashboard returns the cached payload for the given date, if any.
func (c *DashboardCache) GetDashboard(ctx context.Context, today time.Time) ([]byte, bool) {
	data, err := c.rdb.Get(ctx, dashboardKey(today)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *DashboardCache) SetDashboard(ctx context.Context, today time.Time, payload []byte) {
	_ = c.rdb.Set(ctx, dashboardKey(today), payload, dashboardTTL).Err()
}

// Invalidate drops today's cached dashboard. Called after any product
// mutation so the counts never lag behind a write.
func (c *DashboardCache) Invalidate(ctx context.Context, today time.Time) {
	_ = c.rdb.Del(ctx, dashboardKey(today)).Err()
}
