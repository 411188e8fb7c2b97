package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrCancelCustomerOrderCommandIsNotConstructed = errors.New(
	"CancelCustomerOrderCommand must be created via NewCancelCustomerOrderCommand constructor",
)

// CancelCustomerOrderCommand cancels a customer's own order. Customers may
// cancel only while the order is still pending; staff cancellation is the
// separate CancelChange path on UpdateOrderStatusCommand.
type CancelCustomerOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID string
	reason     string

	guard guard.ConstructorGuard
}

// NewCancelCustomerOrderCommand creates a validated customer cancellation command.
func NewCancelCustomerOrderCommand(
	orderID kernel.UUID,
	customerID string,
	reason string,
) (CancelCustomerOrderCommand, error) {
	cmd := CancelCustomerOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setReason(reason),
	); err != nil {
		return CancelCustomerOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelCustomerOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelCustomerOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CancelCustomerOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the cancelling customer's identifier.
func (c CancelCustomerOrderCommand) CustomerID() string {
	return c.customerID
}

// Reason returns the cancellation reason.
func (c CancelCustomerOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelCustomerOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CancelCustomerOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	c.customerID = customerID
	return nil
}

func (c *CancelCustomerOrderCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
