package order

import (
	"deliverylink/internal/pkg/errs"
)

// Priority affects the delivery fee and the ordering of the available-orders
// feed shown to drivers.
type Priority string

const (
	// Urgent deliveries are fee-multiplied and dispatched first.
	Urgent Priority = "urgent"

	// Normal is the default priority.
	Normal Priority = "normal"

	// Scheduled deliveries are placed ahead of time for a later window.
	Scheduled Priority = "scheduled"
)

// Validate checks the priority is one of the known values.
func (p Priority) Validate() error {
	switch p {
	case Urgent, Normal, Scheduled:
		return nil
	default:
		return errs.NewValueIsInvalidError("priority")
	}
}

// String returns the persisted form of the priority.
func (p Priority) String() string {
	return string(p)
}

// PackageSize buckets packages for statistics and driver planning.
// The empty value means the sender did not specify a size.
type PackageSize string

const (
	SizeSmall  PackageSize = "small"
	SizeMedium PackageSize = "medium"
	SizeLarge  PackageSize = "large"
)

// Validate checks the size is known or unspecified.
func (s PackageSize) Validate() error {
	switch s {
	case "", SizeSmall, SizeMedium, SizeLarge:
		return nil
	default:
		return errs.NewValueIsInvalidError("package size")
	}
}

// String returns the persisted form of the size.
func (s PackageSize) String() string {
	return string(s)
}
