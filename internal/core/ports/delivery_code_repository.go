package ports

import (
	"context"
	"time"

	"deliverylink/internal/core/domain/model/order"
)

// DeliveryCodeRepository defines the persistence contract for one-time
// delivery confirmation codes.
type DeliveryCodeRepository interface {
	// Add stores a freshly issued code. Earlier codes for the same order
	// stay valid until they expire or the order is delivered.
	Add(ctx context.Context, code order.DeliveryCode) error

	// GetLatestMatch retrieves the most recently issued code for the order
	// matching the presented value. Returns a not-found error when no code
	// matches.
	GetLatestMatch(ctx context.Context, orderID int64, code string) (order.DeliveryCode, error)

	// Delete removes a consumed code so it cannot confirm a second delivery.
	Delete(ctx context.Context, id int64) error

	// DeleteExpired removes every code whose validity window has passed and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
