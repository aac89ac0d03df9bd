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

var ErrListOrdersForActorQueryIsNotConstructed = errors.New(
	"ListOrdersForActorQuery must be created via NewListOrdersForActorQuery constructor",
)

// ListOrdersForActorQuery retrieves the orders visible to one account. What
// "visible" means depends on the role: customers see the orders they placed,
// restaurant owners the orders at their restaurant, riders the orders
// assigned to them, and admins everything. The list can optionally be
// narrowed to a single status.
type ListOrdersForActorQuery struct {
	actorID      kernel.UUID
	actorRole    account.Role
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersForActorQuery creates a query for the actor's order list.
func NewListOrdersForActorQuery(
	actorID kernel.UUID,
	actorRole account.Role,
) (ListOrdersForActorQuery, error) {
	if err := errors.Join(actorID.Validate(), actorRole.Validate()); err != nil {
		return ListOrdersForActorQuery{}, err
	}

	return ListOrdersForActorQuery{
		actorID:   actorID,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewListOrdersForActorQueryWithStatus creates a query for the actor's order
// list narrowed to the given status.
func NewListOrdersForActorQueryWithStatus(
	actorID kernel.UUID,
	actorRole account.Role,
	status order.Status,
) (ListOrdersForActorQuery, error) {
	query, err := NewListOrdersForActorQuery(actorID, actorRole)
	if err != nil {
		return ListOrdersForActorQuery{}, err
	}
	if err := status.Validate(); err != nil {
		return ListOrdersForActorQuery{}, err
	}

	query.statusFilter = &status
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersForActorQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersForActorQueryIsNotConstructed)
}

// ActorID returns the account whose order list is requested.
func (q ListOrdersForActorQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the role determining visibility.
func (q ListOrdersForActorQuery) ActorRole() account.Role {
	return q.actorRole
}

// StatusFilter returns the status the list is narrowed to, if any.
func (q ListOrdersForActorQuery) StatusFilter() (order.Status, bool) {
	if q.statusFilter == nil {
		return order.StatusUnknown, false
	}
	return *q.statusFilter, true
}

// ListOrdersForActorQueryResponse is one row of an actor's order list.
type ListOrdersForActorQueryResponse struct {
	ID             kernel.UUID
	RestaurantID   kernel.UUID
	RestaurantName string
	Status         order.Status
	TotalAmount    decimal.Decimal
	CreatedAt      time.Time
}
