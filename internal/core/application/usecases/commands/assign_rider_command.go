package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand represents a request to assign a rider to an order.
// Assignment may happen in any order status and replaces any previous rider.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	riderID   kernel.UUID
	actorID   kernel.UUID
	actorRole account.Role

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command to assign the given rider to the
// given order on behalf of the acting account.
func NewAssignRiderCommand(
	orderID kernel.UUID,
	riderID kernel.UUID,
	actorID kernel.UUID,
	actorRole account.Role,
) (AssignRiderCommand, error) {
	cmd := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderID(riderID),
		cmd.setActorID(actorID),
		cmd.setActorRole(actorRole),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// OrderID returns the order to assign the rider to.
func (c AssignRiderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RiderID returns the account to assign as the order's rider.
func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// ActorID returns the account requesting the assignment.
func (c AssignRiderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the authenticated role of the requesting account.
func (c AssignRiderCommand) ActorRole() account.Role {
	return c.actorRole
}

func (c *AssignRiderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *AssignRiderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AssignRiderCommand) setActorRole(actorRole account.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}
