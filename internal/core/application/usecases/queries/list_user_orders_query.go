package queries

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/guard"
)

var (
	ErrListUserOrdersQueryIsNotConstructed = errors.New(
		"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
	)
)

// ListUserOrdersQuery retrieves every order owned by one customer, without
// pagination. Backs the customer's personal order page.
type ListUserOrdersQuery struct {
	readerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListUserOrdersQuery creates a query for one customer's orders.
func NewListUserOrdersQuery(readerID kernel.UUID) (ListUserOrdersQuery, error) {
	if err := readerID.Validate(); err != nil {
		return ListUserOrdersQuery{}, err
	}

	return ListUserOrdersQuery{
		readerID: readerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}

// ReaderID returns the customer whose orders are listed.
func (q ListUserOrdersQuery) ReaderID() kernel.UUID {
	return q.readerID
}
