package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID, actorID, account.RoleAdmin, order.StatusCancelled, "  customer request  ",
	)

	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.ActorID().IsEqual(actorID))
	assert.Equal(t, account.RoleAdmin, cmd.ActorRole())
	assert.Equal(t, order.StatusCancelled, cmd.Requested())
	assert.Equal(t, "customer request", cmd.Reason())
}

func TestNewUpdateOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.UUID{}, kernel.NewUUID(), account.RoleAdmin, order.StatusPreparing, "",
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateOrderStatusCommand_InvalidRole(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), account.RoleUnknown, order.StatusPreparing, "",
	)

	require.Error(t, err)
}

func TestNewUpdateOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), kernel.NewUUID(), account.RoleAdmin, order.StatusUnknown, "",
	)

	require.Error(t, err)
}
