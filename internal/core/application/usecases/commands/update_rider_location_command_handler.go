package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/tracking"
	"fooddelivery/internal/core/domain/services"
)

// UpdateRiderLocationCommandHandler handles rider location reports. Only
// accounts holding the rider role may report, and each report replaces the
// rider's previous position.
type UpdateRiderLocationCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewUpdateRiderLocationCommandHandler creates a handler for rider location
// reports.
func NewUpdateRiderLocationCommandHandler(uowFactory TrackingUoWFactory) UpdateRiderLocationCommandHandler {
	return UpdateRiderLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location report command.
func (h UpdateRiderLocationCommandHandler) Handle(ctx context.Context, command UpdateRiderLocationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if command.ActorRole() != account.RoleRider {
		return services.NewPermissionDeniedError(command.ActorRole(), "report a rider location")
	}

	location, err := tracking.NewRiderLocation(
		command.RiderID(),
		command.Latitude(),
		command.Longitude(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RiderLocationRepository().Upsert(ctx, location); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
