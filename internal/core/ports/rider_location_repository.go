package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/tracking"
)

// RiderLocationRepository defines the persistence contract for rider location
// reports. Each rider has at most one current location row.
type RiderLocationRepository interface {
	// Upsert stores the rider's current location, replacing any previous
	// report for the same rider.
	Upsert(ctx context.Context, location *tracking.RiderLocation) error

	// Get retrieves the current location of the given rider.
	Get(ctx context.Context, riderID kernel.UUID) (*tracking.RiderLocation, error)
}
