package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full read-side view of one order.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a validated order lookup query.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponseItem is one line item of the order view.
type GetOrderQueryResponseItem struct {
	ProductID string
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

// GetOrderQueryResponse is the read-side view of one order: lifecycle
// status, monetary totals in major units and all recorded milestones.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	CustomerID      string
	Status          string
	Total           float64
	PaymentMethod   string
	ShippingAddress string
	CreatedAt       time.Time

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

	Items []GetOrderQueryResponseItem
}
