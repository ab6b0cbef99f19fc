package commands

import (
	"errors"
	"fmt"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"
	"autoservice/internal/pkg/guard"
)

var (
	ErrAddOrderLineCommandIsNotConstructed = errors.New(
		"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
	)
)

// AddOrderLineCommand represents a request to bill a catalog service on an
// order. The handler snapshots the current service price into the new line.
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	lineID    kernel.UUID
	orderID   kernel.UUID
	serviceID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddOrderLineCommand creates a command to add a billed line to an order.
// Quantity must be a positive integer.
func NewAddOrderLineCommand(lineID, orderID, serviceID kernel.UUID, quantity int) (AddOrderLineCommand, error) {
	cmd := AddOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLineID(lineID),
		cmd.setOrderID(orderID),
		cmd.setServiceID(serviceID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

// LineID returns the identifier the new line will be created under.
func (c AddOrderLineCommand) LineID() kernel.UUID {
	return c.lineID
}

// OrderID returns the order the line is billed on.
func (c AddOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ServiceID returns the catalog service being billed.
func (c AddOrderLineCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// Quantity returns how many units of the service are billed.
func (c AddOrderLineCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}
	c.lineID = lineID
	return nil
}

func (c *AddOrderLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddOrderLineCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	c.serviceID = serviceID
	return nil
}

func (c *AddOrderLineCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not a positive integer", quantity))
	}
	c.quantity = quantity
	return nil
}
