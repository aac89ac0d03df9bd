package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// AssignRiderCommandHandler handles rider assignment. The transition policy
// decides who may assign and verifies the assignee holds the rider role; the
// order aggregate accepts the assignment in any status, replacing a previous
// rider if one was set.
type AssignRiderCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
}

// NewAssignRiderCommandHandler creates a handler for rider assignment
// operations.
func NewAssignRiderCommandHandler(uowFactory UoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
	}
}

// Handle processes the rider assignment command.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, command AssignRiderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}

	rider, err := uow.AccountRepository().Get(ctx, command.RiderID())
	if err != nil {
		return err
	}

	actor := services.Actor{
		ID:   command.ActorID(),
		Role: command.ActorRole(),
	}
	if command.ActorRole() == account.RoleRestaurantOwner {
		owned, ownerErr := uow.RestaurantRepository().GetByOwner(ctx, command.ActorID())
		if ownerErr != nil && !errors.Is(ownerErr, errs.ErrObjectNotFound) {
			return ownerErr
		}
		if ownerErr == nil {
			id := owned.ID()
			actor.OwnedRestaurantID = &id
		}
	}

	if err = h.policy.AuthorizeRiderAssignment(actor, aggregate, rider); err != nil {
		return err
	}

	if err = aggregate.AssignRider(rider.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
