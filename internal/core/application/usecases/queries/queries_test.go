package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListRestaurantsQuery(t *testing.T) {
	query := queries.NewListRestaurantsQuery()

	assert.NoError(t, query.Validate())
}

func TestListRestaurantsQuery_ZeroValueIsNotConstructed(t *testing.T) {
	var query queries.ListRestaurantsQuery

	assert.ErrorIs(t, query.Validate(), queries.ErrListRestaurantsQueryIsNotConstructed)
}

func TestNewGetRestaurantMenuQuery(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		restaurantID := kernel.NewUUID()

		query, err := queries.NewGetRestaurantMenuQuery(restaurantID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.RestaurantID().IsEqual(restaurantID))
	})

	t.Run("unconstructed restaurant id", func(t *testing.T) {
		_, err := queries.NewGetRestaurantMenuQuery(kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestNewListOrdersForActorQuery(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		actorID := kernel.NewUUID()

		query, err := queries.NewListOrdersForActorQuery(actorID, account.RoleRider)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.ActorID().IsEqual(actorID))
		assert.Equal(t, account.RoleRider, query.ActorRole())
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := queries.NewListOrdersForActorQuery(kernel.NewUUID(), account.Role(99))

		require.Error(t, err)
	})

	t.Run("no status filter by default", func(t *testing.T) {
		query, err := queries.NewListOrdersForActorQuery(kernel.NewUUID(), account.RoleCustomer)

		require.NoError(t, err)
		_, ok := query.StatusFilter()
		assert.False(t, ok)
	})
}

func TestNewListOrdersForActorQueryWithStatus(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		query, err := queries.NewListOrdersForActorQueryWithStatus(
			kernel.NewUUID(), account.RoleCustomer, order.StatusDelivered,
		)

		require.NoError(t, err)
		status, ok := query.StatusFilter()
		require.True(t, ok)
		assert.Equal(t, order.StatusDelivered, status)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := queries.NewListOrdersForActorQueryWithStatus(
			kernel.NewUUID(), account.RoleCustomer, order.Status(42),
		)

		require.Error(t, err)
	})
}

func TestNewListPendingOrdersQuery(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		actorID := kernel.NewUUID()

		query, err := queries.NewListPendingOrdersQuery(actorID, account.RoleRestaurantOwner)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.ActorID().IsEqual(actorID))
		assert.Equal(t, account.RoleRestaurantOwner, query.ActorRole())
	})

	t.Run("unconstructed actor id", func(t *testing.T) {
		_, err := queries.NewListPendingOrdersQuery(kernel.UUID{}, account.RoleRider)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var query queries.ListPendingOrdersQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrListPendingOrdersQueryIsNotConstructed)
	})
}

func TestNewGetOrderTrackingQuery(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		orderID := kernel.NewUUID()
		actorID := kernel.NewUUID()

		query, err := queries.NewGetOrderTrackingQuery(orderID, actorID, account.RoleCustomer)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(orderID))
		assert.True(t, query.ActorID().IsEqual(actorID))
	})

	t.Run("unconstructed order id", func(t *testing.T) {
		_, err := queries.NewGetOrderTrackingQuery(
			kernel.UUID{}, kernel.NewUUID(), account.RoleCustomer,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var query queries.GetOrderTrackingQuery

		assert.ErrorIs(t, query.Validate(), queries.ErrGetOrderTrackingQueryIsNotConstructed)
	})
}
