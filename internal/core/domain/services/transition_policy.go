package services

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// ErrPermissionDenied is the sentinel all authorization failures of this
// service unwrap to. Callers map it to a forbidden response regardless of the
// concrete rule that fired.
var ErrPermissionDenied = errors.New("permission denied")

// PermissionDeniedError reports that an actor is not allowed to perform an
// action on an order. It names the actor's role and the action so logs stay
// useful without leaking order internals to the caller.
type PermissionDeniedError struct {
	Role   account.Role
	Action string
}

// NewPermissionDeniedError creates the error for a rejected action.
func NewPermissionDeniedError(role account.Role, action string) *PermissionDeniedError {
	return &PermissionDeniedError{Role: role, Action: action}
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("permission denied: %s may not %s", e.Role, e.Action)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}

// RiderRoleMismatchError reports an attempt to assign an account without the
// rider role to an order.
type RiderRoleMismatchError struct {
	AccountID kernel.UUID
	Role      account.Role
}

// NewRiderRoleMismatchError creates the error for the rejected assignment.
func NewRiderRoleMismatchError(accountID kernel.UUID, role account.Role) *RiderRoleMismatchError {
	return &RiderRoleMismatchError{AccountID: accountID, Role: role}
}

func (e *RiderRoleMismatchError) Error() string {
	return fmt.Sprintf("account %s has role %s, not %s", e.AccountID, e.Role, account.RoleRider)
}

func (e *RiderRoleMismatchError) Unwrap() error {
	return ErrPermissionDenied
}

// Actor is the authenticated principal a command runs on behalf of. For
// restaurant owners the application layer resolves OwnedRestaurantID before
// consulting the policy; it stays nil for every other role.
type Actor struct {
	ID                kernel.UUID
	Role              account.Role
	OwnedRestaurantID *kernel.UUID
}

// Owns reports whether the actor is the owner of the given restaurant.
func (a Actor) Owns(restaurantID kernel.UUID) bool {
	return a.Role == account.RoleRestaurantOwner &&
		a.OwnedRestaurantID != nil &&
		a.OwnedRestaurantID.IsEqual(restaurantID)
}

// TransitionPolicy is a domain service deciding which actor may request which
// order status transition. It answers WHO may ask; whether the order itself
// allows the move is the order aggregate's concern and is checked separately.
//
// Authorization rules:
//   - Admins may request any transition
//   - The owner of the order's restaurant may request PREPARING,
//     READY_FOR_PICKUP, and CANCELLED
//   - The rider assigned to the order may request OUT_FOR_DELIVERY and
//     DELIVERED
//   - The customer who placed the order may request CANCELLED, and only
//     while the order is still PENDING
//   - Everyone else is denied
//
// Rider assignment rules:
//   - Admins and the owner of the order's restaurant may assign a rider
//   - The assignee must hold the rider role
type TransitionPolicy struct{}

// NewTransitionPolicy creates a new TransitionPolicy instance.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// AuthorizeTransition decides whether the actor may request moving the order
// to the requested status. A nil error means the actor is allowed to ask; it
// does not mean the transition itself is valid.
func (p TransitionPolicy) AuthorizeTransition(actor Actor, o *order.Order, requested order.Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if actor.Role == account.RoleAdmin {
		return nil
	}

	if actor.Owns(o.RestaurantID()) {
		switch requested {
		case order.StatusPreparing, order.StatusReadyForPickup, order.StatusCancelled:
			return nil
		}
	}

	if actor.Role == account.RoleRider && o.IsAssignedTo(actor.ID) {
		switch requested {
		case order.StatusOutForDelivery, order.StatusDelivered:
			return nil
		}
	}

	if actor.Role == account.RoleCustomer &&
		o.CustomerID().IsEqual(actor.ID) &&
		requested == order.StatusCancelled &&
		o.Status() == order.StatusPending {
		return nil
	}

	return NewPermissionDeniedError(actor.Role, fmt.Sprintf("set order status to %s", requested))
}

// AuthorizeRiderAssignment decides whether the actor may assign the given
// account as the order's rider. The assignee must hold the rider role; there
// is no restriction on the order's status, so a mis-assigned rider can be
// replaced at any point before delivery closes the order.
func (p TransitionPolicy) AuthorizeRiderAssignment(actor Actor, o *order.Order, assignee *account.Account) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := assignee.Validate(); err != nil {
		return err
	}

	if actor.Role != account.RoleAdmin && !actor.Owns(o.RestaurantID()) {
		return NewPermissionDeniedError(actor.Role, "assign a rider")
	}

	if assignee.Role() != account.RoleRider {
		return NewRiderRoleMismatchError(assignee.ID(), assignee.Role())
	}

	return nil
}
