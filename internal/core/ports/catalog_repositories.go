package ports

import (
	"context"

	"autoservice/internal/core/domain/model/catalog"
	"autoservice/internal/core/domain/model/kernel"
)

// CarModelRepository defines the persistence contract for car models.
type CarModelRepository interface {
	// Add persists a new car model.
	Add(ctx context.Context, aggregate *catalog.CarModel) error

	// Get retrieves a car model by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.CarModel, error)
}

// CarRepository defines the persistence contract for registered cars.
type CarRepository interface {
	// Add persists a new car.
	Add(ctx context.Context, aggregate *catalog.Car) error

	// Get retrieves a car by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Car, error)
}

// ServiceRepository defines the persistence contract for catalog services.
type ServiceRepository interface {
	// Add persists a new service.
	Add(ctx context.Context, aggregate *catalog.Service) error

	// Get retrieves a service by its unique identifier. Callers snapshot the
	// returned price when billing it on an order line.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Service, error)
}
