package commands

import (
	"errors"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a customer's request to edit one of their own
// repair orders: reschedule the estimate and re-confirm ownership. Saving an
// edit also advances a fresh order to advance-paid.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actorID      kernel.UUID
	estimateDate *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an existing order.
// The actor is the authenticated customer performing the edit.
func NewUpdateOrderCommand(orderID, actorID kernel.UUID, estimateDate *time.Time) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		estimateDate: estimateDate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order being edited.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the authenticated customer performing the edit.
func (c UpdateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// EstimateDate returns the new promised completion date, or nil to clear it.
func (c UpdateOrderCommand) EstimateDate() *time.Time {
	return c.estimateDate
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
