package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListPendingOrdersQueryIsNotConstructed = errors.New(
	"ListPendingOrdersQuery must be created via NewListPendingOrdersQuery constructor",
)

// ListPendingOrdersQuery retrieves the orders waiting for the actor to act on
// them. Restaurant owners get the PENDING orders at their restaurant, riders
// get the READY_FOR_PICKUP orders no rider has claimed yet. Other roles get
// an empty feed.
type ListPendingOrdersQuery struct {
	actorID   kernel.UUID
	actorRole account.Role

	guard guard.ConstructorGuard
}

// NewListPendingOrdersQuery creates a query for the actor's work feed.
func NewListPendingOrdersQuery(
	actorID kernel.UUID,
	actorRole account.Role,
) (ListPendingOrdersQuery, error) {
	if err := errors.Join(actorID.Validate(), actorRole.Validate()); err != nil {
		return ListPendingOrdersQuery{}, err
	}

	return ListPendingOrdersQuery{
		actorID:   actorID,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListPendingOrdersQueryIsNotConstructed)
}

// ActorID returns the account asking for work.
func (q ListPendingOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the role determining which feed is served.
func (q ListPendingOrdersQuery) ActorRole() account.Role {
	return q.actorRole
}

// ListPendingOrdersQueryResponse is one order waiting to be acted on.
type ListPendingOrdersQueryResponse struct {
	ID              kernel.UUID
	RestaurantID    kernel.UUID
	RestaurantName  string
	DeliveryAddress string
	TotalAmount     decimal.Decimal
	CreatedAt       time.Time
}
