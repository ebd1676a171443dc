package ports

import (
	"context"

	"deliverylink/internal/core/domain/model/stats"
)

// SnapshotCache is a read cache in front of the dashboard snapshot row.
// The dashboard query reads through it; entries expire on the cache's own
// TTL, so a served snapshot may trail the store by up to that TTL. A cache
// failure is never fatal, callers fall back to the store.
type SnapshotCache interface {
	// Get returns the cached snapshot or a not-found error on miss.
	Get(ctx context.Context) (*stats.DashboardSnapshot, error)

	// Set stores the snapshot with the cache's standard TTL.
	Set(ctx context.Context, snapshot *stats.DashboardSnapshot) error
}
