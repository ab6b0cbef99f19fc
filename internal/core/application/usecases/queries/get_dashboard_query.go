package queries

import (
	"errors"

	"autoservice/internal/pkg/guard"
)

var (
	ErrGetDashboardQueryIsNotConstructed = errors.New(
		"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
	)
)

// GetDashboardQuery retrieves the counters shown on the landing page. This is
// a parameterless query.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a query for the landing page counters.
func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// GetDashboardQueryResponse holds the landing page counters.
type GetDashboardQueryResponse struct {
	CarCount     int64
	OrderCount   int64
	ServiceCount int64
	ReviewCount  int64
}
