package order

import (
	"errors"
	"fmt"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
)

// Contact is the person to meet at one end of the route.
type Contact struct {
	name  string
	phone string
}

// NewContact creates a validated contact. Both name and phone are required.
func NewContact(name, phone string) (Contact, error) {
	if name == "" {
		return Contact{}, errs.NewValueIsRequiredError("contact name")
	}
	if phone == "" {
		return Contact{}, errs.NewValueIsRequiredError("contact phone")
	}
	return Contact{name: name, phone: phone}, nil
}

// Name returns the contact's name.
func (c Contact) Name() string { return c.name }

// Phone returns the contact's phone number as entered.
func (c Contact) Phone() string { return c.phone }

// Waypoint is one end of the route: who to meet, where, and any special
// instructions. The address is free text; coordinates are optional and only
// present when the client resolved them.
type Waypoint struct {
	contact      Contact
	address      string
	coordinates  *kernel.Coordinates
	instructions string
}

// NewWaypoint creates a validated waypoint. The address is required.
func NewWaypoint(contact Contact, address string, coordinates *kernel.Coordinates, instructions string) (Waypoint, error) {
	if address == "" {
		return Waypoint{}, errs.NewValueIsRequiredError("address")
	}
	return Waypoint{
		contact:      contact,
		address:      address,
		coordinates:  coordinates,
		instructions: instructions,
	}, nil
}

// Contact returns who to meet at this waypoint.
func (w Waypoint) Contact() Contact { return w.contact }

// Address returns the free-text address.
func (w Waypoint) Address() string { return w.address }

// Coordinates returns the resolved location, or nil when unresolved.
func (w Waypoint) Coordinates() *kernel.Coordinates { return w.coordinates }

// Instructions returns any special instructions for this end of the route.
func (w Waypoint) Instructions() string { return w.instructions }

// Route is the pickup and dropoff pair for an order.
type Route struct {
	pickup  Waypoint
	dropoff Waypoint

	isConstructed bool
}

// NewRoute creates a validated route from two waypoints.
func NewRoute(pickup, dropoff Waypoint) (Route, error) {
	if err := errors.Join(
		requireWaypoint("pickup", pickup),
		requireWaypoint("dropoff", dropoff),
	); err != nil {
		return Route{}, err
	}
	return Route{pickup: pickup, dropoff: dropoff, isConstructed: true}, nil
}

// Validate ensures the route was built through NewRoute.
func (r Route) Validate() error {
	if !r.isConstructed {
		return errs.NewValueIsRequiredError("route must be created via NewRoute")
	}
	return nil
}

// Pickup returns the collection waypoint.
func (r Route) Pickup() Waypoint { return r.pickup }

// Dropoff returns the delivery waypoint.
func (r Route) Dropoff() Waypoint { return r.dropoff }

// Summary renders the route as "pickup to dropoff" for notifications and logs.
func (r Route) Summary() string {
	return fmt.Sprintf("%s to %s", r.pickup.address, r.dropoff.address)
}

func requireWaypoint(name string, w Waypoint) error {
	if w.address == "" {
		return errs.NewValueIsRequiredError(name + " address")
	}
	return nil
}
