package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler reads an order's tracking view from the
// database. Rider location is read as-is; tracking never refreshes it.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler for order tracking
// queries.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

type orderTrackingRow struct {
	GetOrderTrackingQueryResponse

	customerID uuid.UUID
	ownerID    uuid.UUID
	riderID    *uuid.UUID
	statusInt  int
}

// Handle returns the tracking view of the order. The caller must be the
// order's customer, the owning restaurant's owner, the assigned rider, or
// an admin. Anyone else gets a PermissionDeniedError even when the order
// exists, so an unrelated caller is told "denied" rather than "not found".
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.customer_id,
			o.rider_id,
			o.status,
			o.total_amount,
			o.delivery_address,
			o.cancellation_reason,
			o.created_at,
			o.prepared_at,
			o.picked_up_at,
			o.delivered_at,
			o.cancelled_at,
			r.owner_id,
			r.name,
			r.address
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	var tr orderTrackingRow
	err := row.Scan(
		&tr.customerID,
		&tr.riderID,
		&tr.statusInt,
		&tr.TotalAmount,
		&tr.DeliveryAddress,
		&tr.CancellationReason,
		&tr.CreatedAt,
		&tr.PreparedAt,
		&tr.PickedUpAt,
		&tr.DeliveredAt,
		&tr.CancelledAt,
		&tr.ownerID,
		&tr.RestaurantName,
		&tr.RestaurantAddress,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderTrackingQueryResponse{},
			errs.NewObjectNotFoundErrorWithCause("order", query.OrderID().String(), err)
	}
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	if err = h.authorize(query, tr); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	resp := tr.GetOrderTrackingQueryResponse
	resp.OrderID = query.OrderID()
	resp.Status = order.Status(tr.statusInt)

	if tr.riderID != nil {
		rider, riderErr := h.loadRider(ctx, *tr.riderID)
		if riderErr != nil {
			return GetOrderTrackingQueryResponse{}, riderErr
		}
		resp.Rider = rider
	}

	return resp, nil
}

func (h GetOrderTrackingQueryHandler) authorize(
	query GetOrderTrackingQuery,
	tr orderTrackingRow,
) error {
	actorRaw := query.ActorID().Bytes()

	switch query.ActorRole() {
	case account.RoleAdmin:
		return nil
	case account.RoleCustomer:
		if tr.customerID == actorRaw {
			return nil
		}
	case account.RoleRestaurantOwner:
		if tr.ownerID == actorRaw {
			return nil
		}
	case account.RoleRider:
		if tr.riderID != nil && *tr.riderID == actorRaw {
			return nil
		}
	}

	return services.NewPermissionDeniedError(query.ActorRole(), "view this order's tracking")
}

func (h GetOrderTrackingQueryHandler) loadRider(
	ctx context.Context,
	riderID uuid.UUID,
) (*RiderTracking, error) {
	rider := &RiderTracking{}

	kernelRiderID, err := kernel.UUIDFromBytes(riderID[:])
	if err != nil {
		return nil, err
	}
	rider.RiderID = kernelRiderID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			a.full_name,
			l.latitude,
			l.longitude,
			l.updated_at
		FROM accounts a
		LEFT JOIN rider_locations l ON l.rider_id = a.id
		WHERE a.id = ?
	`, riderID).Row()

	var latitude, longitude decimal.NullDecimal
	var locationAt sql.NullTime

	err = row.Scan(&rider.FullName, &latitude, &longitude, &locationAt)
	if err != nil {
		return nil, err
	}

	if latitude.Valid && longitude.Valid && locationAt.Valid {
		rider.Latitude = &latitude.Decimal
		rider.Longitude = &longitude.Decimal
		rider.LocationAt = &locationAt.Time
	}

	return rider, nil
}
