package ports

import (
	"context"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and attaches the store-assigned id to the
	// aggregate. If the generated order number collides with an existing
	// one, the implementation regenerates and retries.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its numeric id.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate retrieves an order by id and locks its row for the
	// remainder of the transaction. Every lifecycle transition reads
	// through this method so concurrent transitions on the same order
	// serialize instead of racing.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)

	// GetByNumber retrieves an order by its external order number.
	GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// GetAllAlive retrieves every non-deleted order. Used by the dashboard
	// snapshot recompute.
	GetAllAlive(ctx context.Context) ([]*order.Order, error)

	// GetAvailable retrieves confirmed, driverless orders for drivers to
	// browse, most urgent and oldest first.
	GetAvailable(ctx context.Context, limit, offset int) ([]*order.Order, error)

	// GetActiveByDriver retrieves the driver's orders in assigned,
	// picked_up, or in_transit status. The driver assignment guard rejects
	// a new acceptance while this is non-empty.
	GetActiveByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)
}
