package commands

import (
	"errors"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a new delivery order.
// The route and package details are validated by their value object
// constructors before the command exists, so a constructed command always
// carries a deliverable request.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	route      order.Route
	pkg        order.PackageInfo
	priority   order.Priority
	currency   string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new delivery order.
// An empty currency defaults to KES.
func NewPlaceOrderCommand(
	customerID kernel.UUID,
	route order.Route,
	pkg order.PackageInfo,
	priority order.Priority,
	currency string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if currency == "" {
		currency = "KES"
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRoute(route),
		cmd.setPackage(pkg),
		cmd.setPriority(priority),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.currency = currency
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the placing customer's id.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Route returns the pickup/dropoff pair.
func (c PlaceOrderCommand) Route() order.Route {
	return c.route
}

// Package returns the package details.
func (c PlaceOrderCommand) Package() order.PackageInfo {
	return c.pkg
}

// Priority returns the requested dispatch priority.
func (c PlaceOrderCommand) Priority() order.Priority {
	return c.priority
}

// Currency returns the ISO currency code.
func (c PlaceOrderCommand) Currency() string {
	return c.currency
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setRoute(route order.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	c.route = route
	return nil
}

func (c *PlaceOrderCommand) setPackage(pkg order.PackageInfo) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	c.pkg = pkg
	return nil
}

func (c *PlaceOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}
