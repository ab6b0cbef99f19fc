package commands

import (
	"errors"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents an authenticated customer's request to place
// a repair order for one of the registered cars.
//
// The reader identity comes from the authentication boundary, never from the
// request body. The estimate date is optional.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	readerID     kernel.UUID
	carID        kernel.UUID
	estimateDate *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new repair order.
// Validates that all identifiers are valid; the estimate date may be nil.
func NewCreateOrderCommand(orderID, readerID, carID kernel.UUID, estimateDate *time.Time) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		estimateDate: estimateDate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReaderID(readerID),
		cmd.setCarID(carID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ReaderID returns the authenticated customer placing the order.
func (c CreateOrderCommand) ReaderID() kernel.UUID {
	return c.readerID
}

// CarID returns the car the order is for.
func (c CreateOrderCommand) CarID() kernel.UUID {
	return c.carID
}

// EstimateDate returns the optional promised completion date.
func (c CreateOrderCommand) EstimateDate() *time.Time {
	return c.estimateDate
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setReaderID(readerID kernel.UUID) error {
	if err := readerID.Validate(); err != nil {
		return err
	}
	c.readerID = readerID
	return nil
}

func (c *CreateOrderCommand) setCarID(carID kernel.UUID) error {
	if err := carID.Validate(); err != nil {
		return err
	}
	c.carID = carID
	return nil
}
