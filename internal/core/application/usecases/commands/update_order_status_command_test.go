package commands_test

import (
	"testing"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(id, "staff-1", commands.ApproveChange{})
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "staff-1", cmd.ActorID())
	assert.Equal(t, order.ActionApprove, cmd.Change().Action())
}

func TestNewUpdateOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, "staff-1", commands.ApproveChange{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateOrderStatusCommand_EmptyActor(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), "", commands.ApproveChange{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateOrderStatusCommand_NilChange(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), "staff-1", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateOrderStatusCommand_ShipPayloadRequired(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), "staff-1", commands.ShipChange{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), "staff-1", commands.ShipChange{TrackingNumber: "TRK-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateOrderStatusCommand_CancelPayloadRequired(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), "staff-1", commands.CancelChange{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestStatusChangeFromAction(t *testing.T) {
	eta := time.Now().AddDate(0, 0, 3)

	change, err := commands.StatusChangeFromAction(order.ActionShip, "TRK-1", eta, "")
	require.NoError(t, err)
	assert.Equal(t, order.ActionShip, change.Action())

	change, err = commands.StatusChangeFromAction(order.ActionCancel, "", time.Time{}, "oops")
	require.NoError(t, err)
	assert.Equal(t, order.ActionCancel, change.Action())

	_, err = commands.StatusChangeFromAction("explode", "", time.Time{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
