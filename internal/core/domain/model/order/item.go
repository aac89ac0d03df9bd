package order

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized
// order Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order. It is owned exclusively by its Order: items
// are created atomically with the order and never modified or deleted
// afterwards. The price is a snapshot of the menu item's price at order time
// and is immune to later menu edits.
type Item struct {
	menuItemID   kernel.UUID
	quantity     int
	priceAtOrder kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates a validated line item. Quantity must be at least 1.
func NewItem(menuItemID kernel.UUID, quantity int, priceAtOrder kernel.Money) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setPriceAtOrder(priceAtOrder),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a line item from persistence.
func RestoreItem(menuItemID kernel.UUID, quantity int, priceAtOrder kernel.Money) (*Item, error) {
	return NewItem(menuItemID, quantity, priceAtOrder)
}

// Validate ensures the Item was built through a constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the referenced menu item. The menu item itself is a
// read-only lookup; the order never mutates it.
func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns how many units were ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// PriceAtOrder returns the snapshot price per unit.
func (i *Item) PriceAtOrder() kernel.Money {
	return i.priceAtOrder
}

// Subtotal returns quantity × price-at-order in fixed-point arithmetic.
func (i *Item) Subtotal() kernel.Money {
	return i.priceAtOrder.MulInt(i.quantity)
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	if quantity > maxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPriceAtOrder(priceAtOrder kernel.Money) error {
	if err := priceAtOrder.Validate(); err != nil {
		return err
	}
	i.priceAtOrder = priceAtOrder
	return nil
}

// maxItemQuantity bounds a single line item. Orders above this size are a
// data-entry mistake, not a meal.
const maxItemQuantity = 1000
