package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/restaurant"
)

// ErrActorDoesNotOwnRestaurant is returned when the acting account is not
// the owner of the targeted restaurant.
var ErrActorDoesNotOwnRestaurant = errors.New("account does not own this restaurant")

// AddMenuItemCommandHandler handles adding an item to a restaurant's menu.
// Only the restaurant's owner may change its menu.
type AddMenuItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for menu item operations.
func NewAddMenuItemCommandHandler(uowFactory RestaurantUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add menu item command.
func (h AddMenuItemCommandHandler) Handle(ctx context.Context, command AddMenuItemCommand) error {
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

	restaurantRepo := uow.RestaurantRepository()

	aggregate, err := restaurantRepo.Get(ctx, command.RestaurantID())
	if err != nil {
		return err
	}
	if !aggregate.IsOwnedBy(command.ActorID()) {
		return ErrActorDoesNotOwnRestaurant
	}

	item, err := restaurant.NewMenuItem(
		command.MenuItemID(),
		command.RestaurantID(),
		command.Name(),
		command.Description(),
		command.Price(),
		command.Category(),
	)
	if err != nil {
		return err
	}

	if err = restaurantRepo.AddMenuItem(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
