package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves the read-side view of an order straight
// from the database, bypassing the aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order view or errs.ErrObjectNotFound.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			total_cents,
			payment_method,
			shipping_address,
			created_at,
			approved_at,
			approved_by,
			shipped_at,
			tracking_number,
			estimated_delivery,
			delivered_at,
			rating,
			review,
			cancel_reason,
			refund_reason
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var (
		resp       GetOrderQueryResponse
		id         uuid.UUID
		status     int
		totalCents int64
		rating     sql.NullInt64
		tracking   sql.NullString
	)

	err := row.Scan(
		&id,
		&resp.CustomerID,
		&status,
		&totalCents,
		&resp.PaymentMethod,
		&resp.ShippingAddress,
		&resp.CreatedAt,
		&resp.ApprovedAt,
		&resp.ApprovedBy,
		&resp.ShippedAt,
		&tracking,
		&resp.EstimatedDelivery,
		&resp.DeliveredAt,
		&rating,
		&resp.Review,
		&resp.CancelReason,
		&resp.RefundReason,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status).String()
	resp.Total = float64(totalCents) / 100
	if tracking.Valid {
		resp.TrackingNumber = &tracking.String
	}
	if rating.Valid {
		r := int(rating.Int64)
		resp.Rating = &r
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryResponseItem, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price_cents
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderQueryResponseItem, 0)

	for rows.Next() {
		var (
			productID      string
			quantity       int
			unitPriceCents int64
		)

		if err = rows.Scan(&productID, &quantity, &unitPriceCents); err != nil {
			return nil, err
		}

		items = append(items, GetOrderQueryResponseItem{
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: float64(unitPriceCents) / 100,
			Subtotal:  float64(int64(quantity)*unitPriceCents) / 100,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
