package refundrepo

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/refund"

	"gorm.io/gorm"
)

// GormRefundRepository implements ports.RefundRepository using GORM.
type GormRefundRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRefundRepository creates a new GORM refund repository.
func NewGormRefundRepository(db *gorm.DB, tracker aggregateTracker) *GormRefundRepository {
	return &GormRefundRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new refund record.
func (r *GormRefundRepository) Add(ctx context.Context, aggregate *refund.Refund) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrder retrieves all refund records for an order, newest first.
func (r *GormRefundRepository) GetByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*refund.Refund, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RefundDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	refunds := make([]*refund.Refund, 0, len(dtos))
	for _, dto := range dtos {
		record, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		refunds = append(refunds, record)
	}

	return refunds, nil
}
