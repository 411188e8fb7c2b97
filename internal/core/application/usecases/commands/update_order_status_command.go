package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand applies one staff-initiated lifecycle action
// (approve, ship, complete or cancel) to a single order.
//
// Example:
//
//	change := commands.ShipChange{TrackingNumber: "TRK-1", EstimatedDelivery: eta}
//	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, "staff-7", change)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	updated, err := handler.Handle(ctx, cmd)
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID string
	change  StatusChange

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a validated status transition command.
// The change payload is validated eagerly: missing required fields fail here,
// before the order is ever loaded.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	actorID string,
	change StatusChange,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setChange(change),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the acting staff member's identifier.
func (c UpdateOrderStatusCommand) ActorID() string {
	return c.actorID
}

// Change returns the tagged action payload.
func (c UpdateOrderStatusCommand) Change() StatusChange {
	return c.change
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setActorID(actorID string) error {
	if actorID == "" {
		return errs.NewValueIsRequiredError("actor id")
	}
	c.actorID = actorID
	return nil
}

func (c *UpdateOrderStatusCommand) setChange(change StatusChange) error {
	if change == nil {
		return errs.NewValueIsRequiredError("status change")
	}
	if err := change.validate(); err != nil {
		return err
	}
	c.change = change
	return nil
}
