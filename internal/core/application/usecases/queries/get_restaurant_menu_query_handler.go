package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantMenuQueryHandler reads a restaurant's menu from the database.
type GetRestaurantMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantMenuQueryHandler creates a handler for menu queries.
func NewGetRestaurantMenuQueryHandler(db *gorm.DB) GetRestaurantMenuQueryHandler {
	return GetRestaurantMenuQueryHandler{db: db}
}

// Handle returns the restaurant's menu items ordered by category then name.
// Fails with an ObjectNotFoundError when the restaurant does not exist.
func (h GetRestaurantMenuQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantMenuQuery,
) ([]GetRestaurantMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var restaurantCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM restaurants WHERE id = ?
	`, query.RestaurantID().Bytes()).Scan(&restaurantCount).Error
	if err != nil {
		return nil, err
	}
	if restaurantCount == 0 {
		return nil, errs.NewObjectNotFoundError("restaurant", query.RestaurantID().String())
	}

	items := make([]GetRestaurantMenuQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			category,
			is_available
		FROM menu_items
		WHERE restaurant_id = ?
		ORDER BY category, name
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRestaurantMenuQueryResponse
		var id uuid.UUID
		var category int

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Description,
			&resp.Price,
			&category,
			&resp.IsAvailable,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = itemID
		resp.Category = restaurant.Category(category)

		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
