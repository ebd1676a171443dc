// Package redis caches the dashboard snapshot in front of Postgres. The
// snapshot changes on every lifecycle transition but is read far more often
// than it changes, so the dashboard query reads through here first.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"deliverylink/internal/core/domain/model/stats"
	"deliverylink/internal/pkg/errs"
)

const (
	snapshotKey = "deliverylink:dashboard:snapshot"

	// snapshotTTL is the only eviction mechanism; a served snapshot may
	// trail the store by up to this long.
	snapshotTTL = 5 * time.Minute
)

// SnapshotCache implements ports.SnapshotCache over a redis client.
type SnapshotCache struct {
	rdb *redis.Client
}

// NewSnapshotCache creates a dashboard snapshot cache.
func NewSnapshotCache(rdb *redis.Client) *SnapshotCache {
	return &SnapshotCache{rdb: rdb}
}

// Get returns the cached snapshot or a not-found error on miss.
func (c *SnapshotCache) Get(ctx context.Context) (*stats.DashboardSnapshot, error) {
	val, err := c.rdb.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errs.NewObjectNotFoundError("dashboard snapshot", snapshotKey)
	}
	if err != nil {
		return nil, err
	}

	var snapshot stats.DashboardSnapshot
	if err := json.Unmarshal(val, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Set stores the snapshot with the cache TTL.
func (c *SnapshotCache) Set(ctx context.Context, snapshot *stats.DashboardSnapshot) error {
	val, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, snapshotKey, val, snapshotTTL).Err()
}
