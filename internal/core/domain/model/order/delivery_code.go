package order

import (
	"time"

	"deliverylink/internal/pkg/errs"
)

// DeliveryCodeTTL is how long an issued delivery code stays valid.
const DeliveryCodeTTL = 10 * time.Minute

// DeliveryCode is a one-time code sent to the recipient to confirm delivery.
// Issuing a new code does not revoke earlier ones; verification always runs
// against the most recently issued match, and a consumed code is deleted so
// it can never confirm a second delivery.
type DeliveryCode struct {
	ID        int64
	OrderID   int64
	Code      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewDeliveryCode issues a code for an order with the standard expiry window.
func NewDeliveryCode(orderID int64, code string, issuedAt time.Time) (DeliveryCode, error) {
	if len(code) != 6 {
		return DeliveryCode{}, errs.NewValueIsInvalidError("code")
	}

	return DeliveryCode{
		OrderID:   orderID,
		Code:      code,
		ExpiresAt: issuedAt.Add(DeliveryCodeTTL),
		CreatedAt: issuedAt,
	}, nil
}

// Verify checks the presented code against this issued one.
func (c DeliveryCode) Verify(presented string, now time.Time) error {
	if c.Code != presented {
		return errs.NewInvalidOTPCodeError(c.OrderID)
	}
	if now.After(c.ExpiresAt) {
		return errs.NewOTPCodeExpiredError(c.OrderID)
	}
	return nil
}

// IsExpired reports whether the code's validity window has passed.
func (c DeliveryCode) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
