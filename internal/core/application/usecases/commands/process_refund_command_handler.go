package commands

import (
	"context"
	"log/slog"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/refund"
	"orderflow/internal/core/ports"
)

// ProcessRefundCommandHandler refunds a completed order. The order's status
// change and the refund record are persisted in one transaction; partial
// writes are impossible.
type ProcessRefundCommandHandler struct {
	uowFactory UoWFactory
	audit      auditAppender
}

// NewProcessRefundCommandHandler creates a handler for refund commands.
func NewProcessRefundCommandHandler(
	uowFactory UoWFactory,
	auditSink ports.AuditSink,
	logger *slog.Logger,
) ProcessRefundCommandHandler {
	return ProcessRefundCommandHandler{
		uowFactory: uowFactory,
		audit:      newAuditAppender(auditSink, logger),
	}
}

// Handle processes the refund and returns the created refund record.
func (h ProcessRefundCommandHandler) Handle(
	ctx context.Context,
	command ProcessRefundCommand,
) (*refund.Refund, error) {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Refund(command.Amount(), command.Reason()); err != nil {
		return nil, err
	}

	record, err := refund.NewRefund(
		aggregate.ID(), command.Amount(), command.Reason(), command.Method())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.RefundRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.audit.append(ctx, aggregate.ID(), order.ActionRefund, command.ActorID(),
		map[string]string{
			"amount": command.Amount().String(),
			"reason": command.Reason(),
			"method": command.Method(),
		})

	return record, nil
}
