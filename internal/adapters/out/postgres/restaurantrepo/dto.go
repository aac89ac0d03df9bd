// Package restaurantrepo provides data transfer objects and mapping
// functions for restaurant and menu item persistence.
package restaurantrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO represents the database structure for persisting restaurant
// aggregates. OwnerID carries a unique index: an account owns at most one
// restaurant.
type RestaurantDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name        string
	Description string
	Address     string
	Phone       string
	Cuisine     int
	IsOpen      bool
	IsActive    bool `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;index"`
	Name         string
	Description  string
	Price        decimal.Decimal `gorm:"type:decimal(12,2)"`
	Category     int
	IsAvailable  bool
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a restaurant domain aggregate to its database
// representation.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:          aggregate.ID().Bytes(),
		OwnerID:     aggregate.OwnerID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Address:     aggregate.Address(),
		Phone:       aggregate.Phone(),
		Cuisine:     int(aggregate.Cuisine()),
		IsOpen:      aggregate.IsOpen(),
		IsActive:    aggregate.IsActive(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a restaurant domain aggregate.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(
		id, ownerID,
		dto.Name, dto.Description, dto.Address, dto.Phone,
		restaurant.Cuisine(dto.Cuisine),
		dto.IsOpen, dto.IsActive,
		dto.CreatedAt,
	)
}

// menuItemFromDomain converts a menu item entity to its database
// representation.
func menuItemFromDomain(item *restaurant.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID().Bytes(),
		RestaurantID: item.RestaurantID().Bytes(),
		Name:         item.Name(),
		Description:  item.Description(),
		Price:        item.Price().Decimal(),
		Category:     int(item.Category()),
		IsAvailable:  item.IsAvailable(),
	}
}

// menuItemToDomain converts a database DTO to a menu item entity.
func menuItemToDomain(dto MenuItemDTO) (*restaurant.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreMenuItem(
		id, restaurantID,
		dto.Name, dto.Description,
		price,
		restaurant.Category(dto.Category),
		dto.IsAvailable,
	)
}
