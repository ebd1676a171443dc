// Package geo estimates delivery routes with the Google Maps Directions
// API. Waypoint coordinates are preferred when present; the street address
// is the fallback.
package geo

import (
	"context"
	"fmt"
	"math"

	"googlemaps.github.io/maps"

	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/core/ports"
	"deliverylink/internal/pkg/errs"
)

// GoogleMapsService implements ports.GeoService over the Directions API.
type GoogleMapsService struct {
	client *maps.Client
}

// NewGoogleMapsService creates a route estimator with the given API key.
func NewGoogleMapsService(apiKey string) (*GoogleMapsService, error) {
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &GoogleMapsService{client: client}, nil
}

// EstimateRoute returns driving distance and duration from pickup to dropoff.
func (s *GoogleMapsService) EstimateRoute(ctx context.Context, pickup, dropoff order.Waypoint) (ports.RouteEstimate, error) {
	r := &maps.DirectionsRequest{
		Origin:      waypointQuery(pickup),
		Destination: waypointQuery(dropoff),
		Mode:        maps.TravelModeDriving,
		Region:      "KE",
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return ports.RouteEstimate{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return ports.RouteEstimate{}, errs.NewObjectNotFoundError("route", waypointQuery(dropoff))
	}

	leg := routes[0].Legs[0]
	return ports.RouteEstimate{
		DistanceKm: float64(leg.Distance.Meters) / 1000,
		Minutes:    int(math.Ceil(leg.Duration.Minutes())),
	}, nil
}

func waypointQuery(w order.Waypoint) string {
	if coords := w.Coordinates(); coords != nil {
		return fmt.Sprintf("%f,%f", coords.Latitude(), coords.Longitude())
	}
	return w.Address()
}
