package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/refund"
)

// RefundRepository defines the persistence contract for refund records.
type RefundRepository interface {
	// Add persists a new refund record.
	Add(ctx context.Context, aggregate *refund.Refund) error

	// GetByOrder retrieves all refund records created for an order,
	// newest first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*refund.Refund, error)
}
