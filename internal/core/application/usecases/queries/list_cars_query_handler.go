package queries

import (
	"context"

	"autoservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCarsQueryHandler reads the registered car list from the database.
type ListCarsQueryHandler struct {
	db *gorm.DB
}

// NewListCarsQueryHandler creates a handler for the car list query.
func NewListCarsQueryHandler(db *gorm.DB) ListCarsQueryHandler {
	return ListCarsQueryHandler{db: db}
}

// Handle executes the query and returns one page of cars ordered by plate
// number for stable paging.
func (h ListCarsQueryHandler) Handle(ctx context.Context, query ListCarsQuery) (CarsPage, error) {
	if err := query.Validate(); err != nil {
		return CarsPage{}, err
	}

	var totalCount int64
	err := h.db.WithContext(ctx).Raw(`SELECT count(*) FROM cars`).Scan(&totalCount).Error
	if err != nil {
		return CarsPage{}, err
	}

	offset := (query.Page() - 1) * CarsPageSize

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.plate_number,
			c.vin,
			c.owner_name,
			c.image_url,
			m.make,
			m.model,
			m.year
		FROM cars c
		JOIN car_models m ON m.id = c.car_model_id
		ORDER BY c.plate_number, c.id
		LIMIT ? OFFSET ?
	`, CarsPageSize, offset).Rows()
	if err != nil {
		return CarsPage{}, err
	}
	defer rows.Close()

	items := make([]CarSummary, 0, CarsPageSize)

	for rows.Next() {
		var (
			id      uuid.UUID
			summary CarSummary
		)

		if err = rows.Scan(
			&id, &summary.PlateNumber, &summary.VIN, &summary.OwnerName,
			&summary.ImageURL, &summary.CarMake, &summary.CarModel, &summary.Year,
		); err != nil {
			return CarsPage{}, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return CarsPage{}, err
		}

		items = append(items, summary)
	}

	if err = rows.Err(); err != nil {
		return CarsPage{}, err
	}

	return CarsPage{
		Items:      items,
		TotalCount: totalCount,
		Page:       query.Page(),
		PageSize:   CarsPageSize,
		TotalPages: totalPages(totalCount, CarsPageSize),
	}, nil
}
