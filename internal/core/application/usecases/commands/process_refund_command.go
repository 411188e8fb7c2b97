package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrProcessRefundCommandIsNotConstructed = errors.New(
	"ProcessRefundCommand must be created via NewProcessRefundCommand constructor",
)

// ProcessRefundCommand refunds a completed order. The amount may be partial
// but never exceeds the order total; that ceiling is enforced by the Order
// aggregate, not here.
type ProcessRefundCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID string
	amount  kernel.Money
	reason  string
	method  string

	guard guard.ConstructorGuard
}

// NewProcessRefundCommand creates a validated refund command.
func NewProcessRefundCommand(
	orderID kernel.UUID,
	actorID string,
	amount kernel.Money,
	reason string,
	method string,
) (ProcessRefundCommand, error) {
	cmd := ProcessRefundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setAmount(amount),
		cmd.setReason(reason),
		cmd.setMethod(method),
	); err != nil {
		return ProcessRefundCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessRefundCommand) Validate() error {
	return c.guard.Validate(ErrProcessRefundCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ProcessRefundCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting staff member's identifier.
func (c ProcessRefundCommand) ActorID() string {
	return c.actorID
}

// Amount returns the amount to refund.
func (c ProcessRefundCommand) Amount() kernel.Money {
	return c.amount
}

// Reason returns the refund reason.
func (c ProcessRefundCommand) Reason() string {
	return c.reason
}

// Method returns the refund method tag, for example "original-payment".
func (c ProcessRefundCommand) Method() string {
	return c.method
}

func (c *ProcessRefundCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ProcessRefundCommand) setActorID(actorID string) error {
	if actorID == "" {
		return errs.NewValueIsRequiredError("actor id")
	}
	c.actorID = actorID
	return nil
}

func (c *ProcessRefundCommand) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return errs.NewValueIsRequiredError("amount")
	}
	c.amount = amount
	return nil
}

func (c *ProcessRefundCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}

func (c *ProcessRefundCommand) setMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("method")
	}
	c.method = method
	return nil
}
