package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrMenuItemIsNotConstructed is returned when using an improperly
// initialized MenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItemNotAvailableError reports an attempt to order a menu item that is
// currently marked unavailable.
type MenuItemNotAvailableError struct {
	MenuItemID kernel.UUID
}

// NewMenuItemNotAvailableError creates the error for the offending item.
func NewMenuItemNotAvailableError(menuItemID kernel.UUID) *MenuItemNotAvailableError {
	return &MenuItemNotAvailableError{MenuItemID: menuItemID}
}

func (e *MenuItemNotAvailableError) Error() string {
	return fmt.Sprintf("menu item is not available: %s", e.MenuItemID)
}

func (e *MenuItemNotAvailableError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// MenuItemRestaurantMismatchError reports an attempt to order a menu item
// from a different restaurant than the one the order names.
type MenuItemRestaurantMismatchError struct {
	MenuItemID   kernel.UUID
	RestaurantID kernel.UUID
}

// NewMenuItemRestaurantMismatchError creates the error for the offending item
// and the restaurant the order was placed against.
func NewMenuItemRestaurantMismatchError(menuItemID, restaurantID kernel.UUID) *MenuItemRestaurantMismatchError {
	return &MenuItemRestaurantMismatchError{MenuItemID: menuItemID, RestaurantID: restaurantID}
}

func (e *MenuItemRestaurantMismatchError) Error() string {
	return fmt.Sprintf("menu item %s does not belong to restaurant %s", e.MenuItemID, e.RestaurantID)
}

func (e *MenuItemRestaurantMismatchError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// MenuItem is one orderable dish on a restaurant's menu. Its price is the
// current menu price; order creation copies it into the order item as a
// snapshot, so later price edits never touch existing orders.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	price        kernel.Money
	category     Category
	isAvailable  bool

	guard guard.ConstructorGuard
}

// NewMenuItem creates a validated MenuItem. New items start available.
func NewMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name, description string,
	price kernel.Money,
	category Category,
) (*MenuItem, error) {
	m := &MenuItem{
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setRestaurantID(restaurantID),
		m.setName(name),
		m.setPrice(price),
		m.setCategory(category),
	); err != nil {
		return nil, err
	}

	m.description = strings.TrimSpace(description)

	return m, nil
}

// RestoreMenuItem reconstructs a MenuItem from persistence, including its
// availability flag.
func RestoreMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name, description string,
	price kernel.Money,
	category Category,
	isAvailable bool,
) (*MenuItem, error) {
	m, err := NewMenuItem(id, restaurantID, name, description, price, category)
	if err != nil {
		return nil, err
	}

	m.isAvailable = isAvailable
	return m, nil
}

// Validate ensures the MenuItem was built through a constructor.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the restaurant this item belongs to.
func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// Name returns the item's display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the optional description text.
func (m *MenuItem) Description() string {
	return m.description
}

// Price returns the current menu price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// Category returns the menu category.
func (m *MenuItem) Category() Category {
	return m.category
}

// IsAvailable reports whether the item may currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.isAvailable
}

// EnsureOrderableFrom checks that this item can go into an order placed
// against the given restaurant: it must belong to that restaurant and be
// available. Both failures carry the offending item id.
func (m *MenuItem) EnsureOrderableFrom(restaurantID kernel.UUID) error {
	if !m.restaurantID.IsEqual(restaurantID) {
		return NewMenuItemRestaurantMismatchError(m.id, restaurantID)
	}
	if !m.isAvailable {
		return NewMenuItemNotAvailableError(m.id)
	}
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	m.restaurantID = restaurantID
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	m.category = category
	return nil
}
