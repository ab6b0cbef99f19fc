package queries

import (
	"errors"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"
	"autoservice/internal/pkg/guard"
)

var (
	ErrListOverdueOrdersQueryIsNotConstructed = errors.New(
		"ListOverdueOrdersQuery must be created via NewListOverdueOrdersQuery constructor",
	)
)

// ListOverdueOrdersQuery retrieves unsettled orders whose estimate date has
// passed. Used by the background scan, not exposed over HTTP.
type ListOverdueOrdersQuery struct {
	today time.Time

	guard guard.ConstructorGuard
}

// NewListOverdueOrdersQuery creates a query for overdue orders as of the given
// day. The time component of today is ignored.
func NewListOverdueOrdersQuery(today time.Time) (ListOverdueOrdersQuery, error) {
	if today.IsZero() {
		return ListOverdueOrdersQuery{}, errs.NewValueIsRequiredError("today")
	}

	return ListOverdueOrdersQuery{
		today: today,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOverdueOrdersQueryIsNotConstructed)
}

// Today returns the reference day of the scan.
func (q ListOverdueOrdersQuery) Today() time.Time {
	return q.today
}

// OverdueOrder is one overdue order found by the scan. ReaderID is nil when
// the order has no owner to notify.
type OverdueOrder struct {
	OrderID      kernel.UUID
	ReaderID     *kernel.UUID
	EstimateDate time.Time
}
