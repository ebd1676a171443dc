package kernel

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"

	"deliverylink/internal/pkg/errs"
)

// orderNumberPattern matches the externally visible order number format:
// "DL-" followed by a four-digit year and a six-digit zero-padded suffix.
var orderNumberPattern = regexp.MustCompile(`^DL-\d{4}-\d{6}$`)

// OrderNumber is the externally visible order identifier, unique across the
// system and generated at order creation. The numeric order id stays internal;
// customers and recipients see only the order number.
type OrderNumber struct {
	value string
}

// GenerateOrderNumber creates a new order number for the given year with a
// uniformly random six-digit suffix. Uniqueness is enforced by the store; on a
// collision the caller regenerates.
func GenerateOrderNumber(year int) (OrderNumber, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return OrderNumber{}, fmt.Errorf("generate order number: %w", err)
	}
	return OrderNumber{value: fmt.Sprintf("DL-%04d-%06d", year, n.Int64())}, nil
}

// OrderNumberFromString parses and validates a persisted order number.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if !orderNumberPattern.MatchString(s) {
		return OrderNumber{}, errs.NewValueIsInvalidError("order number")
	}
	return OrderNumber{value: s}, nil
}

// String returns the order number in its canonical "DL-<year>-<6 digits>" form.
func (n OrderNumber) String() string {
	return n.value
}

// Validate checks the order number was constructed through a factory function.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("order number must be created via GenerateOrderNumber or OrderNumberFromString")
	}
	return nil
}

// IsEqual compares two order numbers.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}
