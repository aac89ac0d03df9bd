package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are written only inside a unit of work; concurrent status updates
// are serialized through GetForUpdate.
type OrderRepository interface {
	// Add persists a new order aggregate with its items to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Items are immutable after creation, so only the order row is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and locks its row until the
	// surrounding transaction ends. Commands that mutate order state must
	// load through this method so concurrent transitions on the same order
	// are applied one at a time.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
