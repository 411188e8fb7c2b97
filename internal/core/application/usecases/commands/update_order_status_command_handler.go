package commands

import (
	"context"
	"fmt"
	"log/slog"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// UpdateOrderStatusCommandHandler executes a single order transition:
// it loads the order, lets the aggregate decide the transition, persists
// the result atomically, and appends an audit entry after the commit.
//
// Failure semantics:
//   - unknown order: errs.ErrObjectNotFound, nothing written
//   - illegal transition or invalid payload: typed error, nothing written
//   - concurrent write to the same order: errs.ErrVersionIsInvalid
//   - audit sink failure: logged warning, the transition still succeeds
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, auditSink, logger)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, "staff-7", ApproveChange{})
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // order was not in a state that allows approval
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	audit      auditAppender
}

// NewUpdateOrderStatusCommandHandler creates a handler for single-order
// transitions. The audit sink is used best-effort after each commit.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	auditSink ports.AuditSink,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		audit:      newAuditAppender(auditSink, logger),
	}
}

// Handle processes the transition command and returns the updated order.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	command UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = applyChange(aggregate, command.ActorID(), command.Change()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.audit.append(ctx, aggregate.ID(), command.Change().Action(), command.ActorID(),
		auditPayload(command.Change()))

	return aggregate, nil
}

// applyChange dispatches the tagged payload to the matching aggregate method.
func applyChange(aggregate *order.Order, actorID string, change StatusChange) error {
	switch c := change.(type) {
	case ApproveChange:
		return aggregate.Approve(actorID)
	case ShipChange:
		return aggregate.Ship(c.TrackingNumber, c.EstimatedDelivery)
	case CompleteChange:
		return aggregate.Complete()
	case CancelChange:
		return aggregate.CancelByStaff(c.Reason)
	default:
		return fmt.Errorf("unsupported status change %T", change)
	}
}

// auditPayload extracts the action-specific details recorded with the entry.
func auditPayload(change StatusChange) map[string]string {
	switch c := change.(type) {
	case ShipChange:
		return map[string]string{
			"trackingNumber":    c.TrackingNumber,
			"estimatedDelivery": c.EstimatedDelivery.Format("2006-01-02"),
		}
	case CancelChange:
		return map[string]string{"reason": c.Reason}
	default:
		return nil
	}
}
