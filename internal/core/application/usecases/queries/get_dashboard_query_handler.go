package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDashboardQueryHandler reads the landing page counters from the database.
type GetDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardQueryHandler creates a handler for the dashboard query.
func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle executes the query. One round trip, four counters.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	var response GetDashboardQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT count(*) FROM cars),
			(SELECT count(*) FROM orders),
			(SELECT count(*) FROM services),
			(SELECT count(*) FROM reviews)
	`).Row()

	if err := row.Scan(
		&response.CarCount,
		&response.OrderCount,
		&response.ServiceCount,
		&response.ReviewCount,
	); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	return response, nil
}
