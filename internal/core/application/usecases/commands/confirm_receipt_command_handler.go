package commands

import (
	"context"
	"log/slog"
	"strconv"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// ConfirmReceiptCommandHandler executes the customer-side completion of a
// shipping order. Semantics match UpdateOrderStatusCommandHandler: typed
// errors without mutation on rejection, optimistic write, best-effort audit.
type ConfirmReceiptCommandHandler struct {
	uowFactory OrderUoWFactory
	audit      auditAppender
}

// NewConfirmReceiptCommandHandler creates a handler for receipt confirmations.
func NewConfirmReceiptCommandHandler(
	uowFactory OrderUoWFactory,
	auditSink ports.AuditSink,
	logger *slog.Logger,
) ConfirmReceiptCommandHandler {
	return ConfirmReceiptCommandHandler{
		uowFactory: uowFactory,
		audit:      newAuditAppender(auditSink, logger),
	}
}

// Handle processes the confirmation and returns the completed order.
func (h ConfirmReceiptCommandHandler) Handle(
	ctx context.Context,
	command ConfirmReceiptCommand,
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

	if err = aggregate.ConfirmReceipt(command.CustomerID(), command.Rating(), command.Review()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	payload := map[string]string{}
	if command.Rating() != nil {
		payload["rating"] = strconv.Itoa(*command.Rating())
	}
	if command.Review() != "" {
		payload["review"] = command.Review()
	}
	h.audit.append(ctx, aggregate.ID(), order.ActionConfirmReceipt, command.CustomerID(), payload)

	return aggregate, nil
}
