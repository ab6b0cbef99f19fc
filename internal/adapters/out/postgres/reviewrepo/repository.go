package reviewrepo

import (
	"context"
	"errors"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/review"

	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM. Reviews are
// append-only.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new review to the database.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.OrderReview) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// LastCreatedAtByOwner returns the creation time of the owner's most recent
// review across all orders, or nil when the owner has never posted one.
func (r *GormReviewRepository) LastCreatedAtByOwner(ctx context.Context, ownerID kernel.UUID) (*time.Time, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID.Bytes()).
		Order("created_at DESC").
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	createdAt := dto.CreatedAt
	return &createdAt, nil
}
