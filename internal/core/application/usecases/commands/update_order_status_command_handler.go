package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles order status transitions. Applies
// two independent checks, both of which must pass: the transition policy
// decides whether this actor may request the move, and the order aggregate
// decides whether the move is valid from its current status.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.TransitionPolicy
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// transitions.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewTransitionPolicy(),
	}
}

// Handle processes the status update command. The order row is locked for
// the duration of the transaction, so two concurrent updates on the same
// order apply one at a time and the second sees the first one's result.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
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

	actor, err := h.resolveActor(ctx, uow, command)
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeTransition(actor, aggregate, command.Requested()); err != nil {
		return err
	}

	if err = aggregate.TransitionTo(command.Requested(), command.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveActor builds the policy actor for the command. For restaurant
// owners this includes which restaurant they run; an owner without a
// restaurant simply fails every ownership check.
func (h UpdateOrderStatusCommandHandler) resolveActor(
	ctx context.Context,
	uow OrderUoW,
	command UpdateOrderStatusCommand,
) (services.Actor, error) {
	actor := services.Actor{
		ID:   command.ActorID(),
		Role: command.ActorRole(),
	}

	if command.ActorRole() != account.RoleRestaurantOwner {
		return actor, nil
	}

	owned, err := uow.RestaurantRepository().GetByOwner(ctx, command.ActorID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return actor, nil
	}
	if err != nil {
		return services.Actor{}, err
	}

	id := owned.ID()
	actor.OwnedRestaurantID = &id
	return actor, nil
}
