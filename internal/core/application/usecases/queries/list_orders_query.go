// Package queries contains read operations for the query side of the CQRS
// architecture. Query handlers read the database directly, bypassing the
// domain aggregates; they return plain response structs shaped for display.
package queries

import (
	"errors"
	"fmt"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/pkg/errs"
	"autoservice/internal/pkg/guard"
)

// OrdersPageSize is the number of orders on one page of the shop-wide list.
const OrdersPageSize = 3

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves one page of the shop-wide order list, optionally
// filtered by a search term matched against the car owner's name, the plate
// number, and the VIN.
//
// Example:
//
//	query := NewListOrdersQuery("smith", 1)
//	handler := NewListOrdersQueryHandler(db)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	fmt.Printf("Showing %d of %d orders\n", len(page.Items), page.TotalCount)
type ListOrdersQuery struct {
	search string
	page   int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for one page of the order list. An empty
// search term matches everything; the page number starts at 1.
func NewListOrdersQuery(search string, page int) (ListOrdersQuery, error) {
	if page < 1 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%d is not a positive page number", page))
	}

	return ListOrdersQuery{
		search: search,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Search returns the search term, empty when unfiltered.
func (q ListOrdersQuery) Search() string {
	return q.search
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// OrderSummary is one row of an order list: the order joined with its car and
// model for display.
type OrderSummary struct {
	ID           kernel.UUID
	Date         time.Time
	EstimateDate *time.Time
	Status       order.Status
	TotalSum     kernel.Money
	PlateNumber  string
	OwnerName    string
	CarMake      string
	CarModelName string
	IsOverdue    bool
}

// OrdersPage is one page of order summaries with pagination metadata.
type OrdersPage struct {
	Items      []OrderSummary
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
}
