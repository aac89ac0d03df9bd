package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
	"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
)

// GetOrderTrackingQuery retrieves the tracking view of one order: its
// status, the full timestamp trail, and the assigned rider's last known
// location. Only parties to the order may look at it.
type GetOrderTrackingQuery struct {
	orderID   kernel.UUID
	actorID   kernel.UUID
	actorRole account.Role

	guard guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a query for an order's tracking view.
func NewGetOrderTrackingQuery(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole account.Role,
) (GetOrderTrackingQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return GetOrderTrackingQuery{}, err
	}

	return GetOrderTrackingQuery{
		orderID:   orderID,
		actorID:   actorID,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// OrderID returns the order being tracked.
func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the account asking for the tracking view.
func (q GetOrderTrackingQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the asking account's role.
func (q GetOrderTrackingQuery) ActorRole() account.Role {
	return q.actorRole
}

// RiderTracking is the rider part of the tracking view. Location fields are
// nil until the rider has reported a position.
type RiderTracking struct {
	RiderID    kernel.UUID
	FullName   string
	Latitude   *decimal.Decimal
	Longitude  *decimal.Decimal
	LocationAt *time.Time
}

// GetOrderTrackingQueryResponse is the full tracking view of one order.
type GetOrderTrackingQueryResponse struct {
	OrderID            kernel.UUID
	Status             order.Status
	TotalAmount        decimal.Decimal
	DeliveryAddress    string
	RestaurantName     string
	RestaurantAddress  string
	CancellationReason string
	CreatedAt          time.Time
	PreparedAt         *time.Time
	PickedUpAt         *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	Rider              *RiderTracking
}
