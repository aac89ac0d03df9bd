package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOwnerIsNotRestaurantOwner is returned when the owning account does
	// not hold the restaurant owner role.
	ErrOwnerIsNotRestaurantOwner = errors.New("account does not hold the restaurant owner role")
	// ErrOwnerAlreadyHasRestaurant is returned when the owning account
	// already runs a restaurant.
	ErrOwnerAlreadyHasRestaurant = errors.New("account already owns a restaurant")
)

// CreateRestaurantCommandHandler handles restaurant creation. Verifies the
// owner account exists, holds the owner role, and does not already run a
// restaurant.
type CreateRestaurantCommandHandler struct {
	uowFactory AccountRestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant
// creation operations.
func NewCreateRestaurantCommandHandler(uowFactory AccountRestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant creation command.
func (h CreateRestaurantCommandHandler) Handle(ctx context.Context, command CreateRestaurantCommand) error {
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

	owner, err := uow.AccountRepository().Get(ctx, command.OwnerID())
	if err != nil {
		return err
	}
	if owner.Role() != account.RoleRestaurantOwner {
		return ErrOwnerIsNotRestaurantOwner
	}

	restaurantRepo := uow.RestaurantRepository()

	_, err = restaurantRepo.GetByOwner(ctx, command.OwnerID())
	if err == nil {
		return ErrOwnerAlreadyHasRestaurant
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := restaurant.NewRestaurant(
		command.RestaurantID(),
		command.OwnerID(),
		command.Name(),
		command.Description(),
		command.Address(),
		command.Phone(),
		command.Cuisine(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = restaurantRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
