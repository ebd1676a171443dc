package kernel

import (
	"deliverylink/internal/pkg/errs"
)

// Coordinates is a geographic latitude/longitude pair attached to addresses,
// tracking events, and delivery proof.
type Coordinates struct {
	lat float64
	lon float64
}

// NewCoordinates creates a validated Coordinates value.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	if lat < -90 || lat > 90 {
		return Coordinates{}, errs.NewValueIsOutOfRangeError("latitude", lat, -90, 90)
	}
	if lon < -180 || lon > 180 {
		return Coordinates{}, errs.NewValueIsOutOfRangeError("longitude", lon, -180, 180)
	}
	return Coordinates{lat: lat, lon: lon}, nil
}

// Latitude returns the latitude in degrees.
func (c Coordinates) Latitude() float64 {
	return c.lat
}

// Longitude returns the longitude in degrees.
func (c Coordinates) Longitude() float64 {
	return c.lon
}

// IsEqual compares two coordinate pairs for exact equality.
func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.lat == other.lat && c.lon == other.lon
}
