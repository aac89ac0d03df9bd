package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateRiderLocationCommandIsNotConstructed = errors.New(
	"UpdateRiderLocationCommand must be created via NewUpdateRiderLocationCommand constructor",
)

// UpdateRiderLocationCommand represents a rider reporting their current
// position. Coordinate range checks live in the tracking domain model; the
// command only carries the raw values.
type UpdateRiderLocationCommand struct { //nolint:recvcheck //using for validation
	riderID   kernel.UUID
	actorRole account.Role
	latitude  decimal.Decimal
	longitude decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateRiderLocationCommand creates a command for a rider location
// report.
func NewUpdateRiderLocationCommand(
	riderID kernel.UUID,
	actorRole account.Role,
	latitude, longitude decimal.Decimal,
) (UpdateRiderLocationCommand, error) {
	cmd := UpdateRiderLocationCommand{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setActorRole(actorRole),
	); err != nil {
		return UpdateRiderLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRiderLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRiderLocationCommandIsNotConstructed)
}

// RiderID returns the account reporting its location.
func (c UpdateRiderLocationCommand) RiderID() kernel.UUID {
	return c.riderID
}

// ActorRole returns the authenticated role of the reporting account.
func (c UpdateRiderLocationCommand) ActorRole() account.Role {
	return c.actorRole
}

// Latitude returns the reported latitude in degrees.
func (c UpdateRiderLocationCommand) Latitude() decimal.Decimal {
	return c.latitude
}

// Longitude returns the reported longitude in degrees.
func (c UpdateRiderLocationCommand) Longitude() decimal.Decimal {
	return c.longitude
}

func (c *UpdateRiderLocationCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *UpdateRiderLocationCommand) setActorRole(actorRole account.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}
