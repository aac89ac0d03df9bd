package queries

import (
	"context"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersForActorQueryHandler reads an actor's order list from the
// database, scoped by role.
type ListOrdersForActorQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersForActorQueryHandler creates a handler for order list
// queries.
func NewListOrdersForActorQueryHandler(db *gorm.DB) ListOrdersForActorQueryHandler {
	return ListOrdersForActorQueryHandler{db: db}
}

// Handle returns the orders the actor may see, newest first.
func (h ListOrdersForActorQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersForActorQuery,
) ([]ListOrdersForActorQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			o.id,
			o.restaurant_id,
			r.name,
			o.status,
			o.total_amount,
			o.created_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		%s
		ORDER BY o.created_at DESC
	`

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	switch query.ActorRole() {
	case account.RoleCustomer:
		conditions = append(conditions, "o.customer_id = ?")
		args = append(args, query.ActorID().Bytes())
	case account.RoleRestaurantOwner:
		conditions = append(conditions, "r.owner_id = ?")
		args = append(args, query.ActorID().Bytes())
	case account.RoleRider:
		conditions = append(conditions, "o.rider_id = ?")
		args = append(args, query.ActorID().Bytes())
	case account.RoleAdmin:
	default:
		return nil, query.ActorRole().Validate()
	}

	if status, ok := query.StatusFilter(); ok {
		conditions = append(conditions, "o.status = ?")
		args = append(args, int(status))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	rowsQuery := h.db.WithContext(ctx).Raw(fmt.Sprintf(baseQuery, where), args...)

	orders := make([]ListOrdersForActorQueryResponse, 0)

	rows, err := rowsQuery.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListOrdersForActorQueryResponse
		var id, restaurantID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&restaurantID,
			&resp.RestaurantName,
			&status,
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
		resp.Status = order.Status(status)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
