package queries

import (
	"errors"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with everything its detail page shows:
// the car, the billed lines in insertion order, and the reviews newest first.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's details.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderLineDetails is one billed line on the detail page, joined with the
// catalog service name. Price is the snapshot stored on the line, not the
// current catalog price.
type OrderLineDetails struct {
	ID          kernel.UUID
	ServiceName string
	Quantity    int
	Price       kernel.Money
	LineTotal   kernel.Money
}

// ReviewDetails is one review on the detail page.
type ReviewDetails struct {
	ID        kernel.UUID
	OwnerID   kernel.UUID
	Content   string
	CreatedAt time.Time
}

// GetOrderQueryResponse is the full order detail view.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	ReaderID     *kernel.UUID
	Date         time.Time
	EstimateDate *time.Time
	Status       order.Status
	TotalSum     kernel.Money
	IsOverdue    bool

	PlateNumber  string
	VIN          string
	OwnerName    string
	CarMake      string
	CarModelName string

	Lines   []OrderLineDetails
	Reviews []ReviewDetails
}
