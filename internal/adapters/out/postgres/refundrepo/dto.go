// Package refundrepo implements refund record persistence.
package refundrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/refund"

	"github.com/google/uuid"
)

// RefundDTO represents the database row for a refund record.
type RefundDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID `gorm:"type:uuid;index"`
	AmountCents        int64
	Reason             string
	Method             string
	Status             int
	ProcessingEstimate string
	CreatedAt          time.Time
}

// TableName overrides GORM's default naming to use "refunds".
func (RefundDTO) TableName() string {
	return "refunds"
}

// fromDomain converts a refund record to its database representation.
func fromDomain(aggregate *refund.Refund) RefundDTO {
	return RefundDTO{
		ID:                 aggregate.ID().Bytes(),
		OrderID:            aggregate.OrderID().Bytes(),
		AmountCents:        aggregate.Amount().Cents(),
		Reason:             aggregate.Reason(),
		Method:             aggregate.Method(),
		Status:             int(aggregate.Status()),
		ProcessingEstimate: aggregate.ProcessingEstimate(),
		CreatedAt:          aggregate.CreatedAt(),
	}
}

// toDomain reconstructs a refund record from its database row.
func toDomain(dto RefundDTO) (*refund.Refund, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.AmountCents)
	if err != nil {
		return nil, err
	}

	return refund.RestoreRefund(
		id,
		orderID,
		amount,
		dto.Reason,
		dto.Method,
		refund.Status(dto.Status),
		dto.ProcessingEstimate,
		dto.CreatedAt,
	)
}
