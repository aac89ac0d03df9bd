// Package tracking models the rider's live location. The location is shared
// mutable state written only by the rider's own location updates; the order
// engine reads it for display and never mutates it.
package tracking

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	latitudeMin  = -90
	latitudeMax  = 90
	longitudeMin = -180
	longitudeMax = 180
)

// ErrRiderLocationIsNotConstructed is returned when using an improperly
// initialized RiderLocation.
var ErrRiderLocationIsNotConstructed = errors.New("RiderLocation must be created via NewRiderLocation constructor")

// RiderLocation is the last reported position of a rider, with its own
// last-updated timestamp. One row per rider; each report overwrites the
// previous one.
type RiderLocation struct {
	riderID   kernel.UUID
	latitude  decimal.Decimal
	longitude decimal.Decimal
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewRiderLocation creates a validated location report. Coordinates are
// fixed-point decimals; latitude must be within [-90, 90] and longitude
// within [-180, 180].
func NewRiderLocation(riderID kernel.UUID, latitude, longitude decimal.Decimal, updatedAt time.Time) (*RiderLocation, error) {
	l := &RiderLocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setRiderID(riderID),
		l.setLatitude(latitude),
		l.setLongitude(longitude),
		l.setUpdatedAt(updatedAt),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreRiderLocation reconstructs a location from persistence.
func RestoreRiderLocation(riderID kernel.UUID, latitude, longitude decimal.Decimal, updatedAt time.Time) (*RiderLocation, error) {
	return NewRiderLocation(riderID, latitude, longitude, updatedAt)
}

// Validate ensures the location was built through a constructor.
func (l *RiderLocation) Validate() error {
	if l == nil {
		return ErrRiderLocationIsNotConstructed
	}
	return l.guard.Validate(ErrRiderLocationIsNotConstructed)
}

// RiderID returns the rider this location belongs to.
func (l *RiderLocation) RiderID() kernel.UUID {
	return l.riderID
}

// Latitude returns the reported latitude.
func (l *RiderLocation) Latitude() decimal.Decimal {
	return l.latitude
}

// Longitude returns the reported longitude.
func (l *RiderLocation) Longitude() decimal.Decimal {
	return l.longitude
}

// UpdatedAt returns when the rider last reported this position.
func (l *RiderLocation) UpdatedAt() time.Time {
	return l.updatedAt
}

func (l *RiderLocation) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	l.riderID = riderID
	return nil
}

func (l *RiderLocation) setLatitude(latitude decimal.Decimal) error {
	if latitude.LessThan(decimal.NewFromInt(latitudeMin)) ||
		latitude.GreaterThan(decimal.NewFromInt(latitudeMax)) {
		return errs.NewValueIsOutOfRangeError("latitude", latitude.String(), latitudeMin, latitudeMax)
	}
	l.latitude = latitude
	return nil
}

func (l *RiderLocation) setLongitude(longitude decimal.Decimal) error {
	if longitude.LessThan(decimal.NewFromInt(longitudeMin)) ||
		longitude.GreaterThan(decimal.NewFromInt(longitudeMax)) {
		return errs.NewValueIsOutOfRangeError("longitude", longitude.String(), longitudeMin, longitudeMax)
	}
	l.longitude = longitude
	return nil
}

func (l *RiderLocation) setUpdatedAt(updatedAt time.Time) error {
	if updatedAt.IsZero() {
		return errs.NewValueIsRequiredError("updated at")
	}
	l.updatedAt = updatedAt
	return nil
}
