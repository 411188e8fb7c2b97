package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrBulkUpdateOrdersCommandIsNotConstructed = errors.New(
	"BulkUpdateOrdersCommand must be created via NewBulkUpdateOrdersCommand constructor",
)

// BulkUpdateOrdersCommand applies one lifecycle action to many orders with
// independent per-order outcomes. Only approve, ship and cancel are exposed
// in bulk; completion is always confirmed order by order.
//
// Duplicate ids are processed independently: the second occurrence of an
// already-approved order simply fails with an invalid transition.
type BulkUpdateOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	actorID  string
	change   StatusChange

	guard guard.ConstructorGuard
}

// NewBulkUpdateOrdersCommand creates a validated bulk transition command.
func NewBulkUpdateOrdersCommand(
	orderIDs []kernel.UUID,
	actorID string,
	change StatusChange,
) (BulkUpdateOrdersCommand, error) {
	cmd := BulkUpdateOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setActorID(actorID),
		cmd.setChange(change),
	); err != nil {
		return BulkUpdateOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkUpdateOrdersCommand) Validate() error {
	return c.guard.Validate(ErrBulkUpdateOrdersCommandIsNotConstructed)
}

// OrderIDs returns the target order identifiers in request order.
func (c BulkUpdateOrdersCommand) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.orderIDs))
	copy(ids, c.orderIDs)
	return ids
}

// ActorID returns the acting staff member's identifier.
func (c BulkUpdateOrdersCommand) ActorID() string {
	return c.actorID
}

// Change returns the tagged action payload shared by all orders in the batch.
func (c BulkUpdateOrdersCommand) Change() StatusChange {
	return c.change
}

func (c *BulkUpdateOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("order ids")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.orderIDs = make([]kernel.UUID, len(orderIDs))
	copy(c.orderIDs, orderIDs)
	return nil
}

func (c *BulkUpdateOrdersCommand) setActorID(actorID string) error {
	if actorID == "" {
		return errs.NewValueIsRequiredError("actor id")
	}
	c.actorID = actorID
	return nil
}

func (c *BulkUpdateOrdersCommand) setChange(change StatusChange) error {
	if change == nil {
		return errs.NewValueIsRequiredError("status change")
	}
	switch change.Action() {
	case order.ActionApprove, order.ActionShip, order.ActionCancel:
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"action",
			errors.New(change.Action()+" is not available in bulk"),
		)
	}
	if err := change.validate(); err != nil {
		return err
	}
	c.change = change
	return nil
}
