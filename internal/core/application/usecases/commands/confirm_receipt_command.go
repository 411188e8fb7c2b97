package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrConfirmReceiptCommandIsNotConstructed = errors.New(
	"ConfirmReceiptCommand must be created via NewConfirmReceiptCommand constructor",
)

// ConfirmReceiptCommand completes a shipping order on the customer's
// confirmation, optionally recording a rating (1..5) and a review.
type ConfirmReceiptCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID string
	rating     *int
	review     string

	guard guard.ConstructorGuard
}

// NewConfirmReceiptCommand creates a validated receipt confirmation command.
func NewConfirmReceiptCommand(
	orderID kernel.UUID,
	customerID string,
	rating *int,
	review string,
) (ConfirmReceiptCommand, error) {
	cmd := ConfirmReceiptCommand{
		review: review,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRating(rating),
	); err != nil {
		return ConfirmReceiptCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmReceiptCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReceiptCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ConfirmReceiptCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the confirming customer's identifier.
func (c ConfirmReceiptCommand) CustomerID() string {
	return c.customerID
}

// Rating returns the optional customer rating.
func (c ConfirmReceiptCommand) Rating() *int {
	return c.rating
}

// Review returns the optional customer review text.
func (c ConfirmReceiptCommand) Review() string {
	return c.review
}

func (c *ConfirmReceiptCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmReceiptCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	c.customerID = customerID
	return nil
}

func (c *ConfirmReceiptCommand) setRating(rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return errs.NewValueIsOutOfRangeError("rating", *rating, 1, 5)
	}
	c.rating = rating
	return nil
}
