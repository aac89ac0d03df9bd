package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	PENDING ──> PREPARING ──> READY_FOR_PICKUP ──> OUT_FOR_DELIVERY ──> DELIVERED
//	   │            │                 │
//	   └────────────┴─────────────────┴──> CANCELLED
//
// DELIVERED and CANCELLED are terminal: no transition leaves them, including
// a repeat of the same status.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status after the customer places the order.
	StatusPending

	// StatusPreparing indicates the restaurant accepted the order and is
	// cooking.
	StatusPreparing

	// StatusReadyForPickup indicates the food is packed and waiting for a
	// rider.
	StatusReadyForPickup

	// StatusOutForDelivery indicates the rider picked the order up.
	StatusOutForDelivery

	// StatusDelivered indicates successful delivery. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled with a reason.
	// Terminal.
	StatusCancelled
)

// transitionTable is the authoritative mapping from current status to the set
// of statuses it may next become. Terminal statuses map to an empty set; the
// table has an entry for every valid status so reachability is defined
// exhaustively, not by fallthrough.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusPreparing, StatusCancelled},
		StatusPreparing:      {StatusReadyForPickup, StatusCancelled},
		StatusReadyForPickup: {StatusOutForDelivery, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered},
		StatusDelivered:      {},
		StatusCancelled:      {},
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "PENDING",
		StatusPreparing:      "PREPARING",
		StatusReadyForPickup: "READY_FOR_PICKUP",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusCancelled:      "CANCELLED",
	}
}

// InvalidTransitionError reports a requested status that is not reachable
// from the order's current status. It names both so the caller can
// reconstruct the failed precondition.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates the error for the rejected transition.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// StatusFromString parses the wire form ("PENDING", "READY_FOR_PICKUP", ...)
// used in request payloads.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate rejects StatusUnknown and out-of-range values coming from external
// sources such as the database or API payloads.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire form of the status. Implements fmt.Stringer and is
// safe on any value.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// AllowedNext returns the set of statuses this status may transition to.
// Terminal statuses return an empty set.
func (s Status) AllowedNext() []Status {
	return transitionTable()[s]
}

// CanTransitionTo reports whether requested is in the allowed-next set of
// this status.
func (s Status) CanTransitionTo(requested Status) bool {
	for _, next := range transitionTable()[s] {
		if next == requested {
			return true
		}
	}
	return false
}

// TransitionTo validates the transition against the table and returns the new
// status, or an InvalidTransitionError naming both statuses.
func (s Status) TransitionTo(requested Status) (Status, error) {
	if err := requested.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(requested) {
		return StatusUnknown, NewInvalidTransitionError(s, requested)
	}
	return requested, nil
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return len(transitionTable()[s]) == 0 && s.Validate() == nil
}
