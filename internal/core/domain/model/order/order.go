package order

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root governing the order lifecycle from placement
// through approval, shipping and completion, with cancellation and refund
// side paths.
//
// Order maintains these invariants:
//   - valid unique identifier and non-empty customer reference
//   - at least one line item; items are immutable after creation
//   - total equals the sum of line item subtotals and is never negative
//   - status only changes along the transitions defined on Status
//   - payload requirements of an action are checked before any mutation
//
// All fields are private; state changes go through the transition methods,
// which either apply the full change or leave the order untouched.
type Order struct {
	id         kernel.UUID
	customerID string

	createdAt time.Time
	total     kernel.Money
	status    Status

	paymentMethod   string
	shippingAddress string
	items           []Item

	approvedAt *time.Time
	approvedBy string

	shippedAt         *time.Time
	trackingNumber    *string
	estimatedDelivery *time.Time

	deliveredAt *time.Time
	rating      *int
	review      string

	cancelReason string
	refundReason string

	// version is the persistence revision used for optimistic concurrency.
	version int

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation.
// The total is derived from the line items; at least one item is required.
func NewOrder(
	id kernel.UUID,
	customerID string,
	items []Item,
	paymentMethod string,
	shippingAddress string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setPaymentMethod(paymentMethod),
		o.setShippingAddress(shippingAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot carries the full persisted state of an order for rehydration.
// It exists so persistence adapters can restore aggregates without a
// constructor taking a dozen positional parameters.
type Snapshot struct {
	ID              kernel.UUID
	CustomerID      string
	Items           []Item
	PaymentMethod   string
	ShippingAddress string
	Status          Status
	CreatedAt       time.Time
	Total           kernel.Money
	Version         int

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
}

// RestoreOrder reconstructs an Order from persistence.
// Unlike NewOrder it accepts any valid status and the stored timestamps,
// but still rejects structurally invalid data.
func RestoreOrder(snapshot Snapshot) (*Order, error) {
	if err := snapshot.Status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status:        snapshot.Status,
		createdAt:     snapshot.CreatedAt,
		version:       snapshot.Version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(snapshot.ID),
		o.setCustomerID(snapshot.CustomerID),
		o.setItems(snapshot.Items),
		o.setPaymentMethod(snapshot.PaymentMethod),
		o.setShippingAddress(snapshot.ShippingAddress),
	); err != nil {
		return nil, err
	}

	// The stored total is authoritative for restored orders; historic orders
	// may predate price changes reflected in their items.
	o.total = snapshot.Total

	o.approvedAt = snapshot.ApprovedAt
	o.approvedBy = snapshot.ApprovedBy
	o.shippedAt = snapshot.ShippedAt
	o.trackingNumber = snapshot.TrackingNumber
	o.estimatedDelivery = snapshot.EstimatedDelivery
	o.deliveredAt = snapshot.DeliveredAt
	o.rating = snapshot.Rating
	o.review = snapshot.Review
	o.cancelReason = snapshot.CancelReason
	o.refundReason = snapshot.RefundReason

	return o, nil
}

// Validate ensures the Order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() string {
	return o.customerID
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total returns the monetary total of the order.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns the payment method tag.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// ShippingAddress returns the delivery address.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// Items returns a copy of the ordered line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ApprovedAt returns the approval timestamp, nil before approval.
func (o *Order) ApprovedAt() *time.Time {
	return o.approvedAt
}

// ApprovedBy returns the id of the staff member who approved the order.
func (o *Order) ApprovedBy() string {
	return o.approvedBy
}

// ShippedAt returns the carrier hand-off timestamp, nil before shipping.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// TrackingNumber returns the carrier tracking number, nil before shipping.
func (o *Order) TrackingNumber() *string {
	return o.trackingNumber
}

// EstimatedDelivery returns the estimated delivery date, nil before shipping.
func (o *Order) EstimatedDelivery() *time.Time {
	return o.estimatedDelivery
}

// DeliveredAt returns the customer delivery timestamp, nil before completion.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Rating returns the customer rating left at receipt confirmation, if any.
func (o *Order) Rating() *int {
	return o.rating
}

// Review returns the customer review left at receipt confirmation.
func (o *Order) Review() string {
	return o.review
}

// CancelReason returns the reason recorded at cancellation.
func (o *Order) CancelReason() string {
	return o.cancelReason
}

// RefundReason returns the reason recorded at refund.
func (o *Order) RefundReason() string {
	return o.refundReason
}

// Version returns the persistence revision of the aggregate.
func (o *Order) Version() int {
	return o.version
}

// Approve transitions the order to Approved and records the acting staff
// member and the approval timestamp.
//
// Business rules:
//   - staff id is required
//   - the order must be Pending
func (o *Order) Approve(staffID string) error {
	if staffID == "" {
		return errs.NewValueIsRequiredError("staff id")
	}

	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.approvedAt = &now
	o.approvedBy = staffID
	return nil
}

// Ship transitions the order to Shipping and records the carrier hand-off.
//
// Business rules:
//   - tracking number and estimated delivery date are required
//   - the order must be Approved
func (o *Order) Ship(trackingNumber string, estimatedDelivery time.Time) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	if estimatedDelivery.IsZero() {
		return errs.NewValueIsRequiredError("estimated delivery")
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.shippedAt = &now
	o.trackingNumber = &trackingNumber
	o.estimatedDelivery = &estimatedDelivery
	return nil
}

// Complete transitions the order to Completed on staff confirmation of delivery.
//
// Business rules:
//   - the order must be Shipping
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// ConfirmReceipt transitions the order to Completed on the customer's
// confirmation, optionally recording a rating (1..5) and review.
//
// Business rules:
//   - the confirming customer must own the order
//   - rating, when present, must be between 1 and 5
//   - the order must be Shipping
func (o *Order) ConfirmReceipt(customerID string, rating *int, review string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	if customerID != o.customerID {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer id",
			fmt.Errorf("order %s does not belong to customer %s", o.id, customerID),
		)
	}
	if rating != nil && (*rating < 1 || *rating > 5) {
		return errs.NewValueIsOutOfRangeError("rating", *rating, 1, 5)
	}

	newStatus, err := o.status.ConfirmReceipt()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.deliveredAt = &now
	o.rating = rating
	o.review = review
	return nil
}

// CancelByStaff transitions the order to Cancelled on behalf of staff.
//
// Business rules:
//   - a cancellation reason is required
//   - the order must be Pending or Approved
func (o *Order) CancelByStaff(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := o.status.CancelByStaff()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelReason = reason
	return nil
}

// CancelByCustomer transitions the order to Cancelled on behalf of its owner.
// Customers may only cancel orders that have not been approved yet.
//
// Business rules:
//   - a cancellation reason is required
//   - the cancelling customer must own the order
//   - the order must be Pending
func (o *Order) CancelByCustomer(customerID, reason string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if customerID != o.customerID {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer id",
			fmt.Errorf("order %s does not belong to customer %s", o.id, customerID),
		)
	}

	newStatus, err := o.status.CancelByCustomer()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelReason = reason
	return nil
}

// Refund transitions the order to Refunded.
//
// Business rules:
//   - a refund reason is required
//   - the amount must be positive and not exceed the order total
//   - the order must be Completed
func (o *Order) Refund(amount kernel.Money, reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if amount.IsZero() {
		return errs.NewValueIsRequiredError("refund amount")
	}

	newStatus, err := o.status.Refund()
	if err != nil {
		return err
	}

	if amount.IsGreaterThan(o.total) {
		return errs.NewRefundAmountExceededError(amount.Cents(), o.total.Cents())
	}

	o.status = newStatus
	o.refundReason = reason
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)

	total, _ := kernel.NewMoney(0)
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.total = total
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setShippingAddress(shippingAddress string) error {
	if shippingAddress == "" {
		return errs.NewValueIsRequiredError("shipping address")
	}
	o.shippingAddress = shippingAddress
	return nil
}
