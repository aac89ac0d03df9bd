// Package trackingrepo provides data transfer objects and mapping functions
// for rider location persistence.
package trackingrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/tracking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RiderLocationDTO represents the database structure for persisting rider
// locations. The rider ID is the primary key: one current location per rider,
// overwritten on every report.
type RiderLocationDTO struct {
	RiderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Latitude  decimal.Decimal `gorm:"type:decimal(9,6)"`
	Longitude decimal.Decimal `gorm:"type:decimal(9,6)"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for rider location entities.
func (RiderLocationDTO) TableName() string {
	return "rider_locations"
}

// fromDomain converts a rider location to its database representation.
func fromDomain(location *tracking.RiderLocation) RiderLocationDTO {
	return RiderLocationDTO{
		RiderID:   location.RiderID().Bytes(),
		Latitude:  location.Latitude(),
		Longitude: location.Longitude(),
		UpdatedAt: location.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a rider location.
func toDomain(dto RiderLocationDTO) (*tracking.RiderLocation, error) {
	riderID, err := kernel.UUIDFromBytes(dto.RiderID[:])
	if err != nil {
		return nil, err
	}

	return tracking.RestoreRiderLocation(riderID, dto.Latitude, dto.Longitude, dto.UpdatedAt)
}
