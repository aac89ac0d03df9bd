// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The lifecycle timestamps are nullable; each is written at most once when
// the order reaches the corresponding status.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantID       uuid.UUID       `gorm:"type:uuid;index"`
	RiderID            *uuid.UUID      `gorm:"type:uuid;index"`
	Status             int             `gorm:"index"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(12,2)"`
	DeliveryAddress    string
	CancellationReason string
	Items              []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time
	PreparedAt         *time.Time
	PickedUpAt         *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents an order line with its price snapshot. Rows are written
// once when the order is created and never updated.
type ItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;index"`
	MenuItemID   uuid.UUID       `gorm:"type:uuid"`
	Quantity     int
	PriceAtOrder decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// TableName specifies the database table name for order item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, including its items.
func fromDomain(aggregate *order.Order) OrderDTO {
	var riderID *uuid.UUID
	if id := aggregate.RiderID(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:           uuid.New(),
			OrderID:      aggregate.ID().Bytes(),
			MenuItemID:   item.MenuItemID().Bytes(),
			Quantity:     item.Quantity(),
			PriceAtOrder: item.PriceAtOrder().Decimal(),
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		RestaurantID:       aggregate.RestaurantID().Bytes(),
		RiderID:            riderID,
		Status:             int(aggregate.Status()),
		TotalAmount:        aggregate.TotalAmount().Decimal(),
		DeliveryAddress:    aggregate.DeliveryAddress(),
		CancellationReason: aggregate.CancellationReason(),
		Items:              items,
		CreatedAt:          aggregate.CreatedAt(),
		PreparedAt:         aggregate.PreparedAt(),
		PickedUpAt:         aggregate.PickedUpAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
		CancelledAt:        aggregate.CancelledAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, keeping the stored total as-is.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		price, itemErr := kernel.NewMoney(itemDTO.PriceAtOrder)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(menuItemID, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, customerID, restaurantID, riderID,
		order.Status(dto.Status), total,
		dto.DeliveryAddress, dto.CancellationReason,
		items, dto.CreatedAt,
		dto.PreparedAt, dto.PickedUpAt, dto.DeliveredAt, dto.CancelledAt,
	)
}
