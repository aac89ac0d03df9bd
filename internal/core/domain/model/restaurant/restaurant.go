// Package restaurant holds the Restaurant aggregate and its menu. A
// restaurant belongs to exactly one owner account; menu items carry the
// current price that order creation snapshots into order items.
package restaurant

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// Domain errors for restaurant operations.
var (
	// ErrNameIsRequired is returned when creating a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned when creating a restaurant without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrRestaurantIsNotConstructed is returned when using an improperly
	// initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant is the aggregate root for one restaurant profile.
//
// Invariants:
//   - valid unique identifier and owner identifier
//   - non-empty name and address
//   - valid cuisine classification
type Restaurant struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	name        string
	description string
	address     string
	phone       string
	cuisine     Cuisine
	isOpen      bool
	isActive    bool
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewRestaurant creates a validated Restaurant. New restaurants start open
// and active.
func NewRestaurant(
	id kernel.UUID,
	ownerID kernel.UUID,
	name, description, address, phone string,
	cuisine Cuisine,
	createdAt time.Time,
) (*Restaurant, error) {
	r := &Restaurant{
		isOpen:    true,
		isActive:  true,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOwnerID(ownerID),
		r.setName(name),
		r.setAddress(address),
		r.setCuisine(cuisine),
	); err != nil {
		return nil, err
	}

	r.description = strings.TrimSpace(description)
	r.phone = strings.TrimSpace(phone)

	return r, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistence, including its
// open/active flags.
func RestoreRestaurant(
	id kernel.UUID,
	ownerID kernel.UUID,
	name, description, address, phone string,
	cuisine Cuisine,
	isOpen, isActive bool,
	createdAt time.Time,
) (*Restaurant, error) {
	r, err := NewRestaurant(id, ownerID, name, description, address, phone, cuisine, createdAt)
	if err != nil {
		return nil, err
	}

	r.isOpen = isOpen
	r.isActive = isActive
	return r, nil
}

// Validate ensures the Restaurant was built through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares two restaurants by identifier.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the identifier of the owning account.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Description returns the optional description text.
func (r *Restaurant) Description() string {
	return r.description
}

// Address returns the restaurant's street address.
func (r *Restaurant) Address() string {
	return r.address
}

// Phone returns the optional contact phone number.
func (r *Restaurant) Phone() string {
	return r.phone
}

// Cuisine returns the cuisine classification.
func (r *Restaurant) Cuisine() Cuisine {
	return r.cuisine
}

// IsOpen reports whether the restaurant currently accepts orders.
func (r *Restaurant) IsOpen() bool {
	return r.isOpen
}

// IsActive reports whether the restaurant is visible on the platform.
func (r *Restaurant) IsActive() bool {
	return r.isActive
}

// CreatedAt returns when the restaurant profile was created.
func (r *Restaurant) CreatedAt() time.Time {
	return r.createdAt
}

// IsOwnedBy reports whether the given account owns this restaurant.
func (r *Restaurant) IsOwnedBy(accountID kernel.UUID) bool {
	return r.ownerID.IsEqual(accountID)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	r.ownerID = ownerID
	return nil
}

func (r *Restaurant) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}
	r.address = address
	return nil
}

func (r *Restaurant) setCuisine(cuisine Cuisine) error {
	if err := cuisine.Validate(); err != nil {
		return err
	}
	r.cuisine = cuisine
	return nil
}
