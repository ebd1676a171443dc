package ports

import (
	"context"

	"deliverylink/internal/core/domain/model/order"
)

// RouteEstimate is the distance and travel time between two waypoints.
type RouteEstimate struct {
	DistanceKm float64
	Minutes    int
}

// GeoService estimates delivery routes. Called at placement, before the
// lifecycle transaction opens, since it is a network call with unbounded
// latency.
type GeoService interface {
	EstimateRoute(ctx context.Context, pickup, dropoff order.Waypoint) (RouteEstimate, error)
}
