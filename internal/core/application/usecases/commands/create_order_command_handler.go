package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/order"
)

var (
	// ErrRestaurantIsNotActive is returned when ordering from a deactivated
	// restaurant.
	ErrRestaurantIsNotActive = errors.New("restaurant is not active")
	// ErrRestaurantIsClosed is returned when ordering from a restaurant that
	// is not currently accepting orders.
	ErrRestaurantIsClosed = errors.New("restaurant is closed")
)

// CreateOrderCommandHandler handles order placement. The whole request is
// validated against the menu before anything is written: every item must
// exist, be available, and belong to the ordered-from restaurant, otherwise
// no order is created at all.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement
// operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command. Prices are snapshotted from
// the menu as each item is resolved; later menu price changes never affect
// an existing order's total.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
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
	if !aggregate.IsActive() {
		return ErrRestaurantIsNotActive
	}
	if !aggregate.IsOpen() {
		return ErrRestaurantIsClosed
	}

	items := make([]*order.Item, 0, len(command.Items()))
	for _, spec := range command.Items() {
		menuItem, itemErr := restaurantRepo.GetMenuItem(ctx, spec.MenuItemID)
		if itemErr != nil {
			return itemErr
		}
		if itemErr = menuItem.EnsureOrderableFrom(command.RestaurantID()); itemErr != nil {
			return itemErr
		}

		item, itemErr := order.NewItem(spec.MenuItemID, spec.Quantity, menuItem.Price())
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		command.OrderID(),
		command.CustomerID(),
		command.RestaurantID(),
		command.DeliveryAddress(),
		items,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
