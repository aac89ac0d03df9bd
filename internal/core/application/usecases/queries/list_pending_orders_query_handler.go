package queries

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPendingOrdersQueryHandler reads the work feed from the database.
type ListPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListPendingOrdersQueryHandler creates a handler for work feed queries.
func NewListPendingOrdersQueryHandler(db *gorm.DB) ListPendingOrdersQueryHandler {
	return ListPendingOrdersQueryHandler{db: db}
}

// Handle returns the orders waiting on the actor, oldest first so the queue
// is worked in arrival order. Roles with no work feed get an empty slice.
func (h ListPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListPendingOrdersQuery,
) ([]ListPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			o.id,
			o.restaurant_id,
			r.name,
			o.delivery_address,
			o.total_amount,
			o.created_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		%s
		ORDER BY o.created_at
	`

	pending := make([]ListPendingOrdersQueryResponse, 0)

	var rowsQuery *gorm.DB
	switch query.ActorRole() {
	case account.RoleRestaurantOwner:
		rowsQuery = h.db.WithContext(ctx).Raw(
			fmt.Sprintf(baseQuery, "WHERE r.owner_id = ? AND o.status = ?"),
			query.ActorID().Bytes(), int(order.StatusPending))
	case account.RoleRider:
		rowsQuery = h.db.WithContext(ctx).Raw(
			fmt.Sprintf(baseQuery, "WHERE o.status = ? AND o.rider_id IS NULL"),
			int(order.StatusReadyForPickup))
	default:
		return pending, nil
	}

	rows, err := rowsQuery.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListPendingOrdersQueryResponse
		var id, restaurantID uuid.UUID

		err = rows.Scan(
			&id,
			&restaurantID,
			&resp.RestaurantName,
			&resp.DeliveryAddress,
			&resp.TotalAmount,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		orderRestaurantID, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.RestaurantID = orderRestaurantID

		pending = append(pending, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}
