// Package order implements the order lifecycle engine: the status state
// machine, its timestamp side-effect policy, fixed-point total computation,
// and rider assignment. Authorization of who may request which transition
// lives in the domain services layer; this package only enforces what the
// order itself allows.
package order

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when using an improperly
	// initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrDeliveryAddressIsRequired is returned when creating an order without
	// a delivery address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
	// ErrItemsAreRequired is returned when creating an order with no items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("order items")
	// ErrCancellationReasonIsRequired is returned when requesting CANCELLED
	// without a reason. The check runs before any field is mutated.
	ErrCancellationReasonIsRequired = errs.NewValueIsRequiredError("cancellation reason")
	// ErrCreatedAtIsRequired is returned when creating an order without a
	// creation timestamp.
	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("created at")
)

// stampPolicy describes the timestamp side effect of arriving at a status.
// The table below has an entry for every valid status, so the side-effect set
// of each enum member is defined even when empty.
type stampPolicy struct {
	timestamp      func(o *Order) **time.Time
	onlyIfUnset    bool
	requiresReason bool
}

// transitionStamps maps the target status of a transition to its side
// effects. PREPARING and OUT_FOR_DELIVERY stamp only if unset so a duplicate
// arrival never rewinds history; DELIVERED and CANCELLED are terminal and
// reachable once, so they stamp unconditionally.
func transitionStamps() map[Status]stampPolicy {
	return map[Status]stampPolicy{
		StatusPending:        {},
		StatusPreparing:      {timestamp: func(o *Order) **time.Time { return &o.preparedAt }, onlyIfUnset: true},
		StatusReadyForPickup: {},
		StatusOutForDelivery: {timestamp: func(o *Order) **time.Time { return &o.pickedUpAt }, onlyIfUnset: true},
		StatusDelivered:      {timestamp: func(o *Order) **time.Time { return &o.deliveredAt }},
		StatusCancelled:      {timestamp: func(o *Order) **time.Time { return &o.cancelledAt }, requiresReason: true},
	}
}

// Order is the aggregate root for one purchase transaction.
//
// Invariants:
//   - exactly one customer and one restaurant, at most one rider
//   - at least one item; items and total are fixed at creation
//   - total amount equals the sum of item subtotals in fixed-point arithmetic
//   - status advances only along the transition table; terminal statuses are
//     never left
//   - each lifecycle timestamp is null until its transition occurs, then
//     immutable
type Order struct {
	id                 kernel.UUID
	customerID         kernel.UUID
	restaurantID       kernel.UUID
	riderID            *kernel.UUID
	status             Status
	totalAmount        kernel.Money
	deliveryAddress    string
	cancellationReason string
	items              []*Item

	createdAt   time.Time
	preparedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in PENDING status with its items attached and
// the total computed from the snapshot prices. Items cannot be added or
// removed afterwards.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	items []*Item,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.totalAmount = o.CalculateTotal()

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its full state:
// status, rider assignment, total, and lifecycle timestamps. The stored total
// is kept as-is; it was computed at creation and is never recomputed
// automatically.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	riderID *kernel.UUID,
	status Status,
	totalAmount kernel.Money,
	deliveryAddress string,
	cancellationReason string,
	items []*Item,
	createdAt time.Time,
	preparedAt, pickedUpAt, deliveredAt, cancelledAt *time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
		o.setCreatedAt(createdAt),
		status.Validate(),
		totalAmount.Validate(),
	); err != nil {
		return nil, err
	}

	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return nil, err
		}
		rid := *riderID
		o.riderID = &rid
	}

	o.status = status
	o.totalAmount = totalAmount
	o.cancellationReason = cancellationReason
	o.preparedAt = preparedAt
	o.pickedUpAt = pickedUpAt
	o.deliveredAt = deliveredAt
	o.cancelledAt = cancelledAt

	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's account id.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the restaurant the order was placed against.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// RiderID returns the assigned rider's account id, or nil if unassigned.
func (o *Order) RiderID() *kernel.UUID {
	return o.riderID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the order total computed at creation.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// CancellationReason returns the reason given when cancelling, empty
// otherwise.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// Items returns the order's line items. The slice is a copy; the items are
// immutable once the order exists.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PreparedAt returns when the restaurant started preparing, or nil.
func (o *Order) PreparedAt() *time.Time {
	return o.preparedAt
}

// PickedUpAt returns when the rider picked the order up, or nil.
func (o *Order) PickedUpAt() *time.Time {
	return o.pickedUpAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// CalculateTotal sums quantity × price-at-order over all items in fixed-point
// arithmetic. It is computed once at creation; callers that bypass the
// documented creation flow must recompute explicitly.
func (o *Order) CalculateTotal() kernel.Money {
	total := kernel.Money{}
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// CanTransitionTo reports whether requested is reachable from the current
// status.
func (o *Order) CanTransitionTo(requested Status) bool {
	return o.status.CanTransitionTo(requested)
}

// TransitionTo moves the order to the requested status and applies the
// timestamp side effects of the stamp table, all-or-nothing: every
// precondition (transition table, cancellation reason) is checked before any
// field changes. The caller supplies the clock so the domain stays
// deterministic under test.
//
// The reason argument is only consulted for CANCELLED and must be non-empty
// there; it is ignored for every other target.
func (o *Order) TransitionTo(requested Status, reason string, now time.Time) error {
	newStatus, err := o.status.TransitionTo(requested)
	if err != nil {
		return err
	}

	policy := transitionStamps()[newStatus]
	if policy.requiresReason && strings.TrimSpace(reason) == "" {
		return ErrCancellationReasonIsRequired
	}

	o.status = newStatus
	if policy.timestamp != nil {
		slot := policy.timestamp(o)
		if !policy.onlyIfUnset || *slot == nil {
			stamped := now
			*slot = &stamped
		}
	}
	if policy.requiresReason {
		o.cancellationReason = strings.TrimSpace(reason)
	}

	return nil
}

// AssignRider assigns or reassigns the rider delivering this order. There is
// deliberately no status-based restriction: reassignment is allowed in any
// status, terminal ones included. Role checking happens in the transition
// policy, which has access to the rider's account.
func (o *Order) AssignRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	o.riderID = &riderID
	return nil
}

// IsAssignedTo reports whether the given account is the order's assigned
// rider.
func (o *Order) IsAssignedTo(accountID kernel.UUID) bool {
	return o.riderID != nil && o.riderID.IsEqual(accountID)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	deliveryAddress = strings.TrimSpace(deliveryAddress)
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	o.createdAt = createdAt
	return nil
}
