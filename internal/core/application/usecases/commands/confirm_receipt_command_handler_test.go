package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmReceiptCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.Shipping)
	rating := 5
	cmd, err := commands.NewConfirmReceiptCommand(aggregate.ID(), "c1", &rating, "arrived early")
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

	h := commands.NewConfirmReceiptCommandHandler(factory, sink, discardLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Completed, updated.Status())
	require.NotNil(t, updated.Rating())
	assert.Equal(t, 5, *updated.Rating())
	assert.Equal(t, "arrived early", updated.Review())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	sink.AssertExpectations(t)
}

func TestConfirmReceiptCommandHandler_Handle_WrongCustomer(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.Shipping)
	cmd, err := commands.NewConfirmReceiptCommand(aggregate.ID(), "someone-else", nil, "")
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

	h := commands.NewConfirmReceiptCommandHandler(factory, new(MockAuditSink), discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Shipping, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestConfirmReceiptCommandHandler_Handle_NotShipping(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t)
	cmd, err := commands.NewConfirmReceiptCommand(aggregate.ID(), "c1", nil, "")
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

	h := commands.NewConfirmReceiptCommandHandler(factory, new(MockAuditSink), discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestNewConfirmReceiptCommand_RatingOutOfRange(t *testing.T) {
	rating := 6
	_, err := commands.NewConfirmReceiptCommand(kernel.NewUUID(), "c1", &rating, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewConfirmReceiptCommand_OptionalFieldsOmitted(t *testing.T) {
	cmd, err := commands.NewConfirmReceiptCommand(kernel.NewUUID(), "c1", nil, "")
	require.NoError(t, err)
	assert.Nil(t, cmd.Rating())
	assert.Empty(t, cmd.Review())
}
