package commands_test

import (
	"errors"
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/audit"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), "staff-1", commands.ApproveChange{})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	sink := new(MockAuditSink)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		sink.On("Append", mock.Anything, mock.AnythingOfType("audit.Entry")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, sink, discardLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Approved, updated.Status())
	assert.Equal(t, "staff-1", updated.ApprovedBy())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	sink.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_RecordsAuditDetails(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.Approved)
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), "staff-1",
		commands.ShipChange{TrackingNumber: "TRK-9", EstimatedDelivery: shipDate(t)})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	var recorded audit.Entry
	sink := new(MockAuditSink)
	sink.On("Append", mock.Anything, mock.AnythingOfType("audit.Entry")).
		Run(func(args mock.Arguments) { recorded = args.Get(1).(audit.Entry) }).
		Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, sink, discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, aggregate.ID(), recorded.OrderID())
	assert.Equal(t, order.ActionShip, recorded.Action())
	assert.Equal(t, "staff-1", recorded.ActorID())
	assert.Equal(t, "TRK-9", recorded.Payload()["trackingNumber"])
	assert.Equal(t, "2026-03-15", recorded.Payload()["estimatedDelivery"])
}

func TestUpdateOrderStatusCommandHandler_Handle_AuditFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), "staff-1", commands.ApproveChange{})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	sink := new(MockAuditSink)
	sink.On("Append", mock.Anything, mock.AnythingOfType("audit.Entry")).
		Return(errors.New("sink unavailable")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, sink, discardLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Approved, updated.Status())
	sink.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), "staff-1", commands.CompleteChange{})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockAuditSink)
	h := commands.NewUpdateOrderStatusCommandHandler(factory, sink, discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Pending, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	sink.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(id, "staff-1", commands.ApproveChange{})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("order", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockAuditSink), discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderStatusCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), "staff-1", commands.ApproveChange{})
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).
			Return(errs.NewVersionIsInvalidError("order")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockAuditSink)
	h := commands.NewUpdateOrderStatusCommandHandler(factory, sink, discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	sink.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateOrderStatusCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockAuditSink), discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
