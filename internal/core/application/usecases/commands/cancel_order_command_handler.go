package commands

import (
	"context"

	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/services"
	"autoservice/internal/core/ports"
	"autoservice/internal/pkg/errs"
)

// User-facing confirmations for cancellations. The advance-paid variant
// acknowledges money already taken.
const (
	MsgOrderCancelled     = "Order cancelled."
	MsgOrderCancelledPaid = "Order cancelled. It was paid in advance."
)

// CancelOrderResult reports the outcome of a cancellation to the caller.
type CancelOrderResult struct {
	// PriorStatus is the status the order held at the moment of cancellation.
	PriorStatus order.Status

	// Message is the user-facing confirmation already pushed to the notifier.
	Message string
}

// CancelOrderCommandHandler handles the business logic for cancelling a
// repair order. Only the order's reader may cancel it. Cancellation deletes
// the order; the repository cascades to lines and reviews.
type CancelOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	accessPolicy services.AccessPolicy
	notifier     ports.Notifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	accessPolicy services.AccessPolicy,
	notifier ports.Notifier,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: accessPolicy,
		notifier:     notifier,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (CancelOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CancelOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return CancelOrderResult{}, err
	}

	actorID := cmd.ActorID()
	if !h.accessPolicy.CanModify(&actorID, orderAggregate) {
		return CancelOrderResult{}, errs.NewNotAuthorizedError("order", cmd.OrderID().String())
	}

	priorStatus := orderAggregate.Status()

	if err = uow.OrderRepository().Delete(ctx, orderAggregate.ID()); err != nil {
		return CancelOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	message := MsgOrderCancelled
	if priorStatus == order.AdvancePaid {
		message = MsgOrderCancelledPaid
	}
	h.notifier.Notify(ctx, actorID.String(), message)

	return CancelOrderResult{PriorStatus: priorStatus, Message: message}, nil
}
