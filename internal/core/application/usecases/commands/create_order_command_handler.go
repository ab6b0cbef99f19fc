package commands

import (
	"context"
	"time"

	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/ports"
)

// MsgOrderReceived is the user-facing confirmation for a placed order.
const MsgOrderReceived = "Order received."

// CreateOrderCommandHandler handles the business logic for placing a repair
// order. The order starts in New status with a zero total; the reader is the
// authenticated customer from the command, set server-side.
type CreateOrderCommandHandler struct {
	uowFactory OrderCarUoWFactory
	notifier   ports.Notifier
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderCarUoWFactory, notifier ports.Notifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order placement command.
//
// Verifies the referenced car exists, creates the order in New status with
// the creation date fixed to now, and persists it. No total recomputation
// happens on this first save since no lines can exist yet.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CarRepository().Get(ctx, cmd.CarID()); err != nil {
		return err
	}

	readerID := cmd.ReaderID()
	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CarID(), &readerID, cmd.EstimateDate(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, readerID.String(), MsgOrderReceived)
	return nil
}
