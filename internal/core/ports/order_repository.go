package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update must be atomic per order id: when two transitions race on the same
// order, the store accepts exactly one and rejects the other with
// errs.ErrVersionIsInvalid, so a lost update can never silently overwrite
// a status change.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using the
	// aggregate's version for optimistic concurrency control.
	// Returns errs.ErrObjectNotFound when the order no longer exists and
	// errs.ErrVersionIsInvalid when a concurrent write won the race.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
