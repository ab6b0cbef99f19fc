package queries

import (
	"errors"
	"fmt"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"
	"autoservice/internal/pkg/guard"
)

// CarsPageSize is the number of cars on one page of the car list.
const CarsPageSize = 3

var (
	ErrListCarsQueryIsNotConstructed = errors.New(
		"ListCarsQuery must be created via NewListCarsQuery constructor",
	)
)

// ListCarsQuery retrieves one page of the registered car list.
type ListCarsQuery struct {
	page int

	guard guard.ConstructorGuard
}

// NewListCarsQuery creates a query for one page of the car list. The page
// number starts at 1.
func NewListCarsQuery(page int) (ListCarsQuery, error) {
	if page < 1 {
		return ListCarsQuery{}, errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%d is not a positive page number", page))
	}

	return ListCarsQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCarsQuery) Validate() error {
	return q.guard.Validate(ErrListCarsQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q ListCarsQuery) Page() int {
	return q.page
}

// CarSummary is one row of the car list, joined with its model.
type CarSummary struct {
	ID          kernel.UUID
	PlateNumber string
	VIN         string
	OwnerName   string
	ImageURL    string
	CarMake     string
	CarModel    string
	Year        int
}

// CarsPage is one page of car summaries with pagination metadata.
type CarsPage struct {
	Items      []CarSummary
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
}
