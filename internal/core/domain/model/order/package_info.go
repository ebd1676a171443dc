package order

import (
	"errors"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
)

// PackageInfo describes what is being delivered. It is a value object fixed at
// order placement.
type PackageInfo struct {
	description   string
	size          PackageSize
	quantity      int
	weightKg      float64
	declaredValue kernel.Money
	fragile       bool

	isConstructed bool
}

// NewPackageInfo creates a validated package description.
// The description is required; quantity must be at least 1; weight, when
// given, must not be negative. Size may be empty, and declaredValue may be
// zero when the sender declares no value.
func NewPackageInfo(
	description string,
	size PackageSize,
	quantity int,
	weightKg float64,
	declaredValue kernel.Money,
	fragile bool,
) (PackageInfo, error) {
	p := PackageInfo{
		size:          size,
		quantity:      quantity,
		weightKg:      weightKg,
		declaredValue: declaredValue,
		fragile:       fragile,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setDescription(description),
		size.Validate(),
		validateQuantity(quantity),
		validateWeight(weightKg),
	); err != nil {
		return PackageInfo{}, err
	}

	return p, nil
}

// Validate ensures the package info was built through NewPackageInfo.
func (p PackageInfo) Validate() error {
	if !p.isConstructed {
		return errs.NewValueIsRequiredError("package info must be created via NewPackageInfo")
	}
	return nil
}

// Description returns what the sender says the package contains.
func (p PackageInfo) Description() string { return p.description }

// Size returns the declared size bucket, or empty when unspecified.
func (p PackageInfo) Size() PackageSize { return p.size }

// Quantity returns the number of items in the package.
func (p PackageInfo) Quantity() int { return p.quantity }

// WeightKg returns the declared weight, 0 when unspecified.
func (p PackageInfo) WeightKg() float64 { return p.weightKg }

// DeclaredValue returns the sender-declared monetary value of the contents.
func (p PackageInfo) DeclaredValue() kernel.Money { return p.declaredValue }

// IsFragile reports whether the package needs careful handling.
func (p PackageInfo) IsFragile() bool { return p.fragile }

func (p *PackageInfo) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("package description")
	}
	p.description = description
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, 1000)
	}
	if quantity > 1000 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, 1000)
	}
	return nil
}

func validateWeight(weightKg float64) error {
	if weightKg < 0 {
		return errs.NewValueIsInvalidError("weight must not be negative")
	}
	return nil
}
