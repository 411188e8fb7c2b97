package commands

import (
	"context"
	"log/slog"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// CancelCustomerOrderCommandHandler executes a customer-initiated
// cancellation. The aggregate rejects the request unless the caller owns
// the order and the order is still pending.
type CancelCustomerOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	audit      auditAppender
}

// NewCancelCustomerOrderCommandHandler creates a handler for customer
// cancellations.
func NewCancelCustomerOrderCommandHandler(
	uowFactory OrderUoWFactory,
	auditSink ports.AuditSink,
	logger *slog.Logger,
) CancelCustomerOrderCommandHandler {
	return CancelCustomerOrderCommandHandler{
		uowFactory: uowFactory,
		audit:      newAuditAppender(auditSink, logger),
	}
}

// Handle processes the cancellation and returns the cancelled order.
func (h CancelCustomerOrderCommandHandler) Handle(
	ctx context.Context,
	command CancelCustomerOrderCommand,
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

	if err = aggregate.CancelByCustomer(command.CustomerID(), command.Reason()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.audit.append(ctx, aggregate.ID(), order.ActionCancel, command.CustomerID(),
		map[string]string{"reason": command.Reason()})

	return aggregate, nil
}
