package restaurant_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestaurant(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should create restaurant with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		ownerID := kernel.NewUUID()

		r, err := restaurant.NewRestaurant(id, ownerID, "Nasi House", "Home-style nasi lemak", "12 Jalan Alor", "+60312345678", restaurant.CuisineMalay, now)

		require.NoError(t, err)
		assert.True(t, r.ID().IsEqual(id))
		assert.True(t, r.OwnerID().IsEqual(ownerID))
		assert.Equal(t, "Nasi House", r.Name())
		assert.Equal(t, restaurant.CuisineMalay, r.Cuisine())
		assert.True(t, r.IsOpen())
		assert.True(t, r.IsActive())
		assert.Equal(t, now, r.CreatedAt())
		require.NoError(t, r.Validate())
	})

	t.Run("should reject missing name or address", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "", "", "12 Jalan Alor", "", restaurant.CuisineOther, now)
		require.ErrorIs(t, err, restaurant.ErrNameIsRequired)

		_, err = restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "Nasi House", "", "  ", "", restaurant.CuisineOther, now)
		require.ErrorIs(t, err, restaurant.ErrAddressIsRequired)
	})

	t.Run("should reject invalid cuisine", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "Nasi House", "", "12 Jalan Alor", "", restaurant.CuisineUnknown, now)
		require.Error(t, err)
	})

	t.Run("ownership check compares owner account id", func(t *testing.T) {
		ownerID := kernel.NewUUID()
		r, err := restaurant.NewRestaurant(kernel.NewUUID(), ownerID, "Nasi House", "", "12 Jalan Alor", "", restaurant.CuisineMalay, now)
		require.NoError(t, err)

		assert.True(t, r.IsOwnedBy(ownerID))
		assert.False(t, r.IsOwnedBy(kernel.NewUUID()))
	})
}

func TestRestoreRestaurant(t *testing.T) {
	t.Run("should restore closed inactive restaurant", func(t *testing.T) {
		r, err := restaurant.RestoreRestaurant(
			kernel.NewUUID(), kernel.NewUUID(),
			"Nasi House", "", "12 Jalan Alor", "",
			restaurant.CuisineMalay, false, false, time.Now().UTC(),
		)

		require.NoError(t, err)
		assert.False(t, r.IsOpen())
		assert.False(t, r.IsActive())
	})
}

func TestNewMenuItem(t *testing.T) {
	price, _ := kernel.NewMoneyFromString("12.50")

	t.Run("should create available menu item", func(t *testing.T) {
		id := kernel.NewUUID()
		restaurantID := kernel.NewUUID()

		m, err := restaurant.NewMenuItem(id, restaurantID, "Nasi Lemak", "With sambal", price, restaurant.CategoryMainCourse)

		require.NoError(t, err)
		assert.True(t, m.ID().IsEqual(id))
		assert.True(t, m.Price().IsEqual(price))
		assert.True(t, m.IsAvailable())
		require.NoError(t, m.Validate())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := restaurant.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "", "", price, restaurant.CategoryMainCourse)
		require.ErrorIs(t, err, restaurant.ErrNameIsRequired)
	})

	t.Run("should reject invalid category", func(t *testing.T) {
		_, err := restaurant.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Nasi Lemak", "", price, restaurant.CategoryUnknown)
		require.Error(t, err)
	})
}

func TestMenuItem_EnsureOrderableFrom(t *testing.T) {
	price, _ := kernel.NewMoneyFromString("12.50")

	t.Run("available item of the same restaurant is orderable", func(t *testing.T) {
		restaurantID := kernel.NewUUID()
		m, _ := restaurant.NewMenuItem(kernel.NewUUID(), restaurantID, "Nasi Lemak", "", price, restaurant.CategoryMainCourse)

		require.NoError(t, m.EnsureOrderableFrom(restaurantID))
	})

	t.Run("item of another restaurant reports mismatch with item id", func(t *testing.T) {
		itemID := kernel.NewUUID()
		orderRestaurantID := kernel.NewUUID()
		m, _ := restaurant.NewMenuItem(itemID, kernel.NewUUID(), "Nasi Lemak", "", price, restaurant.CategoryMainCourse)

		err := m.EnsureOrderableFrom(orderRestaurantID)

		require.Error(t, err)
		var mismatchErr *restaurant.MenuItemRestaurantMismatchError
		require.ErrorAs(t, err, &mismatchErr)
		assert.True(t, mismatchErr.MenuItemID.IsEqual(itemID))
		assert.True(t, mismatchErr.RestaurantID.IsEqual(orderRestaurantID))
	})

	t.Run("unavailable item reports unavailability with item id", func(t *testing.T) {
		itemID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()
		m, _ := restaurant.RestoreMenuItem(itemID, restaurantID, "Nasi Lemak", "", price, restaurant.CategoryMainCourse, false)

		err := m.EnsureOrderableFrom(restaurantID)

		require.Error(t, err)
		var unavailableErr *restaurant.MenuItemNotAvailableError
		require.ErrorAs(t, err, &unavailableErr)
		assert.True(t, unavailableErr.MenuItemID.IsEqual(itemID))
	})
}

func TestCuisineAndCategoryParsing(t *testing.T) {
	t.Run("round trips wire forms", func(t *testing.T) {
		c, err := restaurant.CuisineFromString("FAST_FOOD")
		require.NoError(t, err)
		assert.Equal(t, restaurant.CuisineFastFood, c)
		assert.Equal(t, "FAST_FOOD", c.String())

		cat, err := restaurant.CategoryFromString("BEVERAGES")
		require.NoError(t, err)
		assert.Equal(t, restaurant.CategoryBeverages, cat)
		assert.Equal(t, "BEVERAGES", cat.String())
	})

	t.Run("rejects unknown wire forms", func(t *testing.T) {
		_, err := restaurant.CuisineFromString("FUSION")
		require.Error(t, err)

		_, err = restaurant.CategoryFromString("main_course")
		require.Error(t, err)
	})
}
