package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrRestaurantNameIsRequired    = errors.New("restaurant name is required")
	ErrRestaurantAddressIsRequired = errors.New("restaurant address is required")
)

// CreateRestaurantCommand represents a request by an owner account to open a
// restaurant.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	name         string
	description  string
	address      string
	phone        string
	cuisine      restaurant.Cuisine

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to open a restaurant for the
// given owner account.
func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	ownerID kernel.UUID,
	name, description, address, phone string,
	cuisine restaurant.Cuisine,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setOwnerID(ownerID),
		cmd.setName(name),
		cmd.setAddress(address),
		cmd.setCuisine(cuisine),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	cmd.description = strings.TrimSpace(description)
	cmd.phone = strings.TrimSpace(phone)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the unique identifier for the new restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OwnerID returns the account that will own the restaurant.
func (c CreateRestaurantCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the restaurant's display name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Description returns the restaurant's description, possibly empty.
func (c CreateRestaurantCommand) Description() string {
	return c.description
}

// Address returns the restaurant's street address.
func (c CreateRestaurantCommand) Address() string {
	return c.address
}

// Phone returns the restaurant's contact phone, possibly empty.
func (c CreateRestaurantCommand) Phone() string {
	return c.phone
}

// Cuisine returns the restaurant's cuisine type.
func (c CreateRestaurantCommand) Cuisine() restaurant.Cuisine {
	return c.cuisine
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrRestaurantNameIsRequired
	}

	c.name = strings.TrimSpace(name)
	return nil
}

func (c *CreateRestaurantCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrRestaurantAddressIsRequired
	}

	c.address = strings.TrimSpace(address)
	return nil
}

func (c *CreateRestaurantCommand) setCuisine(cuisine restaurant.Cuisine) error {
	if err := cuisine.Validate(); err != nil {
		return err
	}

	c.cuisine = cuisine
	return nil
}
