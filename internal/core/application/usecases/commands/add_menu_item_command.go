package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
	ErrMenuItemNameIsRequired = errors.New("menu item name is required")
)

// AddMenuItemCommand represents a request to add an item to a restaurant's
// menu on behalf of the acting account.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID   kernel.UUID
	restaurantID kernel.UUID
	actorID      kernel.UUID
	name         string
	description  string
	price        kernel.Money
	category     restaurant.Category

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
func NewAddMenuItemCommand(
	menuItemID kernel.UUID,
	restaurantID kernel.UUID,
	actorID kernel.UUID,
	name, description string,
	price kernel.Money,
	category restaurant.Category,
) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setRestaurantID(restaurantID),
		cmd.setActorID(actorID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategory(category),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	cmd.description = strings.TrimSpace(description)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the unique identifier for the new menu item.
func (c AddMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// RestaurantID returns the restaurant the item belongs to.
func (c AddMenuItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// ActorID returns the account requesting the change.
func (c AddMenuItemCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Name returns the menu item's display name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Description returns the menu item's description, possibly empty.
func (c AddMenuItemCommand) Description() string {
	return c.description
}

// Price returns the menu item's price.
func (c AddMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Category returns the menu item's category.
func (c AddMenuItemCommand) Category() restaurant.Category {
	return c.category
}

func (c *AddMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddMenuItemCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddMenuItemCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrMenuItemNameIsRequired
	}

	c.name = strings.TrimSpace(name)
	return nil
}

func (c *AddMenuItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *AddMenuItemCommand) setCategory(category restaurant.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}
