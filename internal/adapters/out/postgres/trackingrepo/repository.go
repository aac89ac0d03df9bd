package trackingrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/tracking"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRiderLocationRepository implements RiderLocationRepository using GORM.
type GormRiderLocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRiderLocationRepository creates a new GORM rider location repository.
func NewGormRiderLocationRepository(db *gorm.DB, tracker aggregateTracker) *GormRiderLocationRepository {
	return &GormRiderLocationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert stores the rider's current location, replacing any previous report.
func (r *GormRiderLocationRepository) Upsert(ctx context.Context, location *tracking.RiderLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}

	dto := fromDomain(location)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "rider_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "updated_at"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(location.RiderID(), location)
	return nil
}

// Get retrieves the current location of the given rider.
func (r *GormRiderLocationRepository) Get(ctx context.Context, riderID kernel.UUID) (*tracking.RiderLocation, error) {
	if err := riderID.Validate(); err != nil {
		return nil, err
	}

	var dto RiderLocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "rider_id = ?", riderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider location", riderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
