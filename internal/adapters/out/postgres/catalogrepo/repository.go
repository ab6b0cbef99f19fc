package catalogrepo

import (
	"context"
	"errors"

	"autoservice/internal/core/domain/model/catalog"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCarModelRepository implements CarModelRepository using GORM.
type GormCarModelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCarModelRepository creates a new GORM car model repository.
func NewGormCarModelRepository(db *gorm.DB, tracker aggregateTracker) *GormCarModelRepository {
	return &GormCarModelRepository{db: db, tracker: tracker}
}

// Add saves a new car model to the database.
func (r *GormCarModelRepository) Add(ctx context.Context, aggregate *catalog.CarModel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := carModelFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a car model by ID.
func (r *GormCarModelRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.CarModel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarModelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carModel", id.String())
		}
		return nil, err
	}

	return carModelToDomain(dto)
}

// GormCarRepository implements CarRepository using GORM.
type GormCarRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCarRepository creates a new GORM car repository.
func NewGormCarRepository(db *gorm.DB, tracker aggregateTracker) *GormCarRepository {
	return &GormCarRepository{db: db, tracker: tracker}
}

// Add saves a new car to the database.
func (r *GormCarRepository) Add(ctx context.Context, aggregate *catalog.Car) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := carFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a car by ID.
func (r *GormCarRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Car, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("car", id.String())
		}
		return nil, err
	}

	return carToDomain(dto)
}

// GormServiceRepository implements ServiceRepository using GORM.
type GormServiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormServiceRepository creates a new GORM service repository.
func NewGormServiceRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceRepository {
	return &GormServiceRepository{db: db, tracker: tracker}
}

// Add saves a new service to the database.
func (r *GormServiceRepository) Add(ctx context.Context, aggregate *catalog.Service) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := serviceFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a service by ID.
func (r *GormServiceRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service", id.String())
		}
		return nil, err
	}

	return serviceToDomain(dto)
}
