package kernel

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"deliverylink/internal/pkg/errs"
)

// Money is a fixed-point monetary amount carried in cents.
// Monetary fields are persisted and exposed as decimal strings with two
// decimal places ("345.00"), so the integer representation avoids the drift
// that float accumulation would introduce in the statistics rollups.
//
// The zero value is a valid amount of 0.00.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money from an amount in cents.
func NewMoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// MoneyFromString parses a two-decimal string such as "345.00" or "45.5".
// Used when reconstructing monetary fields from persistence.
func MoneyFromString(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, errs.NewValueIsRequiredError("money amount")
	}

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}

	var centsPart int64
	switch len(frac) {
	case 0:
	case 1:
		centsPart, err = strconv.ParseInt(frac, 10, 64)
		centsPart *= 10
	case 2:
		centsPart, err = strconv.ParseInt(frac, 10, 64)
	default:
		return Money{}, errs.NewValueIsInvalidError("money amount has more than two decimal places")
	}
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}

	cents := units*100 + centsPart
	if negative {
		cents = -cents
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Percent returns the given percentage of the amount, rounded to the
// nearest cent. Percent(15) of 300.00 is 45.00.
func (m Money) Percent(p int64) Money {
	raw := m.cents * p
	rounded := (raw + 50) / 100
	if raw < 0 {
		rounded = (raw - 50) / 100
	}
	return Money{cents: rounded}
}

// IsZero reports whether the amount is exactly 0.00.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// MarshalJSON renders the amount as its decimal string form.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON parses the decimal string form.
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := MoneyFromString(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// String renders the amount as a decimal string with two decimal places.
func (m Money) String() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
