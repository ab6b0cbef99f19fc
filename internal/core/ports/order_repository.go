package ports

import (
	"context"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its lines are stored and removed together.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including its
	// lines and recomputed total.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, with its
	// lines in insertion order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and all of its lines as one atomic operation.
	Delete(ctx context.Context, id kernel.UUID) error
}
