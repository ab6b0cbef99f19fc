package commands

import (
	"context"

	"autoservice/internal/core/domain/model/order"
)

// AddOrderLineCommandHandler handles the business logic for billing a catalog
// service on an order. The service price is snapshotted into the line at this
// moment; later catalog price changes never touch existing lines.
type AddOrderLineCommandHandler struct {
	uowFactory OrderLineUoWFactory
}

// NewAddOrderLineCommandHandler creates a handler for adding billed lines.
func NewAddOrderLineCommandHandler(uowFactory OrderLineUoWFactory) AddOrderLineCommandHandler {
	return AddOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-line command.
//
// Loads the order and the billed service, snapshots the service price into a
// new line, recomputes the order total and saves the order with its lines.
func (h *AddOrderLineCommandHandler) Handle(ctx context.Context, cmd AddOrderLineCommand) error {
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

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	service, err := uow.ServiceRepository().Get(ctx, cmd.ServiceID())
	if err != nil {
		return err
	}

	line, err := order.NewOrderLine(cmd.LineID(), cmd.OrderID(), cmd.ServiceID(), cmd.Quantity(), service.Price())
	if err != nil {
		return err
	}

	if err = orderAggregate.AddLine(line); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
