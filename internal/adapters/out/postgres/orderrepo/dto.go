// Package orderrepo implements order persistence: the mapping between the
// Order aggregate and its relational representation, and the repository
// enforcing optimistic concurrency on writes.
package orderrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database row for an order aggregate.
// The version column backs optimistic concurrency: every successful update
// increments it, and a stale writer matches zero rows.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      string    `gorm:"index"`
	Status          int       `gorm:"index"`
	TotalCents      int64
	PaymentMethod   string
	ShippingAddress string
	CreatedAt       time.Time `gorm:"index"`

	ApprovedAt *time.Time
	ApprovedBy string

	ShippedAt         *time.Time
	TrackingNumber    *string
	EstimatedDelivery *time.Time

	DeliveredAt *time.Time
	Rating      *int
	Review      string

	CancelReason string
	RefundReason string

	Version int

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one line item row belonging to an order.
type ItemDTO struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	ProductID      string
	Quantity       int
	UnitPriceCents int64
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:        aggregate.ID().Bytes(),
			ProductID:      item.ProductID(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPrice().Cents(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerID:        aggregate.CustomerID(),
		Status:            int(aggregate.Status()),
		TotalCents:        aggregate.Total().Cents(),
		PaymentMethod:     aggregate.PaymentMethod(),
		ShippingAddress:   aggregate.ShippingAddress(),
		CreatedAt:         aggregate.CreatedAt(),
		ApprovedAt:        aggregate.ApprovedAt(),
		ApprovedBy:        aggregate.ApprovedBy(),
		ShippedAt:         aggregate.ShippedAt(),
		TrackingNumber:    aggregate.TrackingNumber(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		DeliveredAt:       aggregate.DeliveredAt(),
		Rating:            aggregate.Rating(),
		Review:            aggregate.Review(),
		CancelReason:      aggregate.CancelReason(),
		RefundReason:      aggregate.RefundReason(),
		Version:           aggregate.Version(),
		Items:             itemDTOs,
	}
}

// toDomain reconstructs the aggregate from its database row via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.UnitPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewItem(itemDTO.ProductID, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                id,
		CustomerID:        dto.CustomerID,
		Items:             items,
		PaymentMethod:     dto.PaymentMethod,
		ShippingAddress:   dto.ShippingAddress,
		Status:            order.Status(dto.Status),
		CreatedAt:         dto.CreatedAt,
		Total:             total,
		Version:           dto.Version,
		ApprovedAt:        dto.ApprovedAt,
		ApprovedBy:        dto.ApprovedBy,
		ShippedAt:         dto.ShippedAt,
		TrackingNumber:    dto.TrackingNumber,
		EstimatedDelivery: dto.EstimatedDelivery,
		DeliveredAt:       dto.DeliveredAt,
		Rating:            dto.Rating,
		Review:            dto.Review,
		CancelReason:      dto.CancelReason,
		RefundReason:      dto.RefundReason,
	})
}
