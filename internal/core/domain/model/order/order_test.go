package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustItem(t *testing.T, price string, quantity int) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), quantity, mustMoney(t, price))
	require.NoError(t, err)
	return item
}

func createTestOrder(t *testing.T, items ...*order.Item) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []*order.Item{mustItem(t, "12.50", 2)}
	}
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"1 Main Street",
		items,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func advanceTo(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()
	path := map[order.Status][]order.Status{
		order.StatusPreparing:      {order.StatusPreparing},
		order.StatusReadyForPickup: {order.StatusPreparing, order.StatusReadyForPickup},
		order.StatusOutForDelivery: {order.StatusPreparing, order.StatusReadyForPickup, order.StatusOutForDelivery},
		order.StatusDelivered:      {order.StatusPreparing, order.StatusReadyForPickup, order.StatusOutForDelivery, order.StatusDelivered},
	}
	for _, next := range path[target] {
		require.NoError(t, o.TransitionTo(next, "", time.Now().UTC()))
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in pending status with computed total", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()
		items := []*order.Item{
			mustItem(t, "28.00", 2),
			mustItem(t, "42.00", 1),
		}
		createdAt := time.Now().UTC()

		o, err := order.NewOrder(id, customerID, restaurantID, "1 Main Street", items, createdAt)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, "1 Main Street", o.DeliveryAddress())
		assert.Equal(t, "98.00", o.TotalAmount().String())
		assert.Nil(t, o.RiderID())
		assert.Empty(t, o.CancellationReason())
		assert.Nil(t, o.PreparedAt())
		assert.Nil(t, o.PickedUpAt())
		assert.Nil(t, o.DeliveredAt())
		assert.Nil(t, o.CancelledAt())
		assert.Len(t, o.Items(), 2)
		require.NoError(t, o.Validate())
	})

	t.Run("should reject order without items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"1 Main Street", nil, time.Now().UTC(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("should reject order with empty delivery address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"   ", []*order.Item{mustItem(t, "5.00", 1)}, time.Now().UTC(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrDeliveryAddressIsRequired)
	})

	t.Run("should reject order with zero created at", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"1 Main Street", []*order.Item{mustItem(t, "5.00", 1)}, time.Time{},
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrCreatedAtIsRequired)
	})
}

func TestOrder_CalculateTotal(t *testing.T) {
	t.Run("should sum item subtotals exactly", func(t *testing.T) {
		o := createTestOrder(t,
			mustItem(t, "28.00", 2),
			mustItem(t, "42.00", 1),
		)

		assert.Equal(t, "98.00", o.CalculateTotal().String())
	})

	t.Run("should not lose cents on repeated additions", func(t *testing.T) {
		items := make([]*order.Item, 0, 10)
		for range 10 {
			items = append(items, mustItem(t, "0.10", 3))
		}
		o := createTestOrder(t, items...)

		assert.Equal(t, "3.00", o.CalculateTotal().String())
	})

	t.Run("should be independent of item order", func(t *testing.T) {
		a := createTestOrder(t, mustItem(t, "19.99", 3), mustItem(t, "0.01", 7))
		b := createTestOrder(t, mustItem(t, "0.01", 7), mustItem(t, "19.99", 3))

		assert.True(t, a.CalculateTotal().IsEqual(b.CalculateTotal()))
		assert.Equal(t, "60.04", a.CalculateTotal().String())
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("should walk the happy path to delivered", func(t *testing.T) {
		o := createTestOrder(t)
		now := time.Now().UTC()

		require.NoError(t, o.TransitionTo(order.StatusPreparing, "", now))
		assert.Equal(t, order.StatusPreparing, o.Status())

		require.NoError(t, o.TransitionTo(order.StatusReadyForPickup, "", now))
		assert.Equal(t, order.StatusReadyForPickup, o.Status())

		require.NoError(t, o.TransitionTo(order.StatusOutForDelivery, "", now))
		assert.Equal(t, order.StatusOutForDelivery, o.Status())

		require.NoError(t, o.TransitionTo(order.StatusDelivered, "", now))
		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("should reject skipping a step", func(t *testing.T) {
		o := createTestOrder(t)

		err := o.TransitionTo(order.StatusOutForDelivery, "", time.Now().UTC())

		require.Error(t, err)
		var transitionErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.StatusPending, transitionErr.From)
		assert.Equal(t, order.StatusOutForDelivery, transitionErr.To)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("should reject any transition out of a terminal status", func(t *testing.T) {
		delivered := createTestOrder(t)
		advanceTo(t, delivered, order.StatusDelivered)

		cancelled := createTestOrder(t)
		require.NoError(t, cancelled.TransitionTo(order.StatusCancelled, "customer changed mind", time.Now().UTC()))

		targets := []order.Status{
			order.StatusPending,
			order.StatusPreparing,
			order.StatusReadyForPickup,
			order.StatusOutForDelivery,
			order.StatusDelivered,
			order.StatusCancelled,
		}
		for _, target := range targets {
			require.Error(t, delivered.TransitionTo(target, "reason", time.Now().UTC()))
			require.Error(t, cancelled.TransitionTo(target, "reason", time.Now().UTC()))
		}
		assert.Equal(t, order.StatusDelivered, delivered.Status())
		assert.Equal(t, order.StatusCancelled, cancelled.Status())
	})

	t.Run("should reject same-status no-op in non-terminal statuses", func(t *testing.T) {
		o := createTestOrder(t)

		err := o.TransitionTo(order.StatusPending, "", time.Now().UTC())

		require.Error(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_TransitionTimestamps(t *testing.T) {
	t.Run("should stamp prepared at when entering preparing", func(t *testing.T) {
		o := createTestOrder(t)
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		require.NoError(t, o.TransitionTo(order.StatusPreparing, "", now))

		require.NotNil(t, o.PreparedAt())
		assert.Equal(t, now, *o.PreparedAt())
		assert.Nil(t, o.PickedUpAt())
	})

	t.Run("should stamp picked up at when entering out for delivery", func(t *testing.T) {
		o := createTestOrder(t)
		advanceTo(t, o, order.StatusReadyForPickup)
		now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

		require.NoError(t, o.TransitionTo(order.StatusOutForDelivery, "", now))

		require.NotNil(t, o.PickedUpAt())
		assert.Equal(t, now, *o.PickedUpAt())
	})

	t.Run("should keep an existing prepared at stamp", func(t *testing.T) {
		first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		second := time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)
		preparedAt := first
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			order.StatusPending, mustMoney(t, "10.00"), "1 Main Street", "",
			[]*order.Item{mustItem(t, "10.00", 1)},
			time.Now().UTC(), &preparedAt, nil, nil, nil,
		)
		require.NoError(t, err)

		require.NoError(t, o.TransitionTo(order.StatusPreparing, "", second))

		require.NotNil(t, o.PreparedAt())
		assert.Equal(t, first, *o.PreparedAt())
	})

	t.Run("should stamp delivered at on delivery", func(t *testing.T) {
		o := createTestOrder(t)
		advanceTo(t, o, order.StatusOutForDelivery)
		now := time.Date(2025, 6, 1, 13, 15, 0, 0, time.UTC)

		require.NoError(t, o.TransitionTo(order.StatusDelivered, "", now))

		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, now, *o.DeliveredAt())
	})

	t.Run("should not require a reason outside cancellation", func(t *testing.T) {
		o := createTestOrder(t)

		require.NoError(t, o.TransitionTo(order.StatusPreparing, "", time.Now().UTC()))
	})
}

func TestOrder_Cancellation(t *testing.T) {
	t.Run("should record reason and cancelled at", func(t *testing.T) {
		o := createTestOrder(t)
		now := time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC)

		require.NoError(t, o.TransitionTo(order.StatusCancelled, "  restaurant closed  ", now))

		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, "restaurant closed", o.CancellationReason())
		require.NotNil(t, o.CancelledAt())
		assert.Equal(t, now, *o.CancelledAt())
	})

	t.Run("should reject cancellation without a reason", func(t *testing.T) {
		o := createTestOrder(t)

		err := o.TransitionTo(order.StatusCancelled, "   ", time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrCancellationReasonIsRequired)
	})

	t.Run("failed cancellation should leave the order untouched", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.TransitionTo(order.StatusPreparing, "", time.Now().UTC()))
		preparedAt := *o.PreparedAt()

		err := o.TransitionTo(order.StatusCancelled, "", time.Now().UTC())

		require.Error(t, err)
		assert.Equal(t, order.StatusPreparing, o.Status())
		assert.Empty(t, o.CancellationReason())
		assert.Nil(t, o.CancelledAt())
		require.NotNil(t, o.PreparedAt())
		assert.Equal(t, preparedAt, *o.PreparedAt())
	})
}

func TestOrder_AssignRider(t *testing.T) {
	t.Run("should assign a rider", func(t *testing.T) {
		o := createTestOrder(t)
		riderID := kernel.NewUUID()

		require.NoError(t, o.AssignRider(riderID))

		require.NotNil(t, o.RiderID())
		assert.True(t, o.RiderID().IsEqual(riderID))
		assert.True(t, o.IsAssignedTo(riderID))
	})

	t.Run("should overwrite a previous assignment", func(t *testing.T) {
		o := createTestOrder(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, o.AssignRider(first))
		require.NoError(t, o.AssignRider(second))

		assert.True(t, o.RiderID().IsEqual(second))
		assert.False(t, o.IsAssignedTo(first))
	})

	t.Run("should allow assignment regardless of status", func(t *testing.T) {
		o := createTestOrder(t)
		advanceTo(t, o, order.StatusOutForDelivery)

		require.NoError(t, o.AssignRider(kernel.NewUUID()))
	})

	t.Run("should report no assignment on fresh orders", func(t *testing.T) {
		o := createTestOrder(t)

		assert.False(t, o.IsAssignedTo(kernel.NewUUID()))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore full state without recomputing the total", func(t *testing.T) {
		riderID := kernel.NewUUID()
		deliveredAt := time.Date(2025, 6, 1, 13, 45, 0, 0, time.UTC)
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &riderID,
			order.StatusDelivered, mustMoney(t, "55.00"), "1 Main Street", "",
			[]*order.Item{mustItem(t, "10.00", 1)},
			time.Now().UTC(), nil, nil, &deliveredAt, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, "55.00", o.TotalAmount().String())
		assert.True(t, o.RiderID().IsEqual(riderID))
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			order.Status(42), mustMoney(t, "10.00"), "1 Main Street", "",
			[]*order.Item{mustItem(t, "10.00", 1)},
			time.Now().UTC(), nil, nil, nil, nil,
		)

		require.Error(t, err)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should create item with a positive subtotal", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), 3, mustMoney(t, "4.25"))

		require.NoError(t, err)
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, "12.75", item.Subtotal().String())
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.NewItem(kernel.NewUUID(), quantity, mustMoney(t, "4.25"))
			require.Error(t, err)
		}
	})

	t.Run("should reject quantities above the cap", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), 1001, mustMoney(t, "4.25"))

		require.Error(t, err)
	})
}
