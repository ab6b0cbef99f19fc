package commands

import (
	"context"

	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/services"
	"autoservice/internal/core/ports"
	"autoservice/internal/pkg/errs"
)

// User-facing confirmations for order edits, chosen by the status the order
// held before the edit.
const (
	MsgOrderUpdated = "Order updated."
	MsgOrderPaid    = "Order paid."
)

// UpdateOrderResult reports the outcome of an order edit to the caller.
type UpdateOrderResult struct {
	// PriorStatus is the status the order held before the edit was applied.
	PriorStatus order.Status

	// Message is the user-facing confirmation already pushed to the notifier.
	Message string
}

// UpdateOrderCommandHandler handles the business logic for editing a repair
// order. Only the order's reader may edit it; the check happens before any
// mutation so unauthorized requests leave the order untouched.
type UpdateOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	accessPolicy services.AccessPolicy
	notifier     ports.Notifier
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	accessPolicy services.AccessPolicy,
	notifier ports.Notifier,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: accessPolicy,
		notifier:     notifier,
	}
}

// Handle processes the order edit command.
//
// Reschedules the estimate, re-assigns the actor as reader, advances the
// order to advance-paid and recomputes the billed total from the persisted
// lines before saving.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (UpdateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return UpdateOrderResult{}, err
	}

	actorID := cmd.ActorID()
	if !h.accessPolicy.CanModify(&actorID, orderAggregate) {
		return UpdateOrderResult{}, errs.NewNotAuthorizedError("order", cmd.OrderID().String())
	}

	priorStatus := orderAggregate.Status()

	orderAggregate.Reschedule(cmd.EstimateDate())
	if err = orderAggregate.AssignReader(actorID); err != nil {
		return UpdateOrderResult{}, err
	}
	if err = orderAggregate.MarkAdvancePaid(); err != nil {
		return UpdateOrderResult{}, err
	}
	orderAggregate.RecomputeTotal()

	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return UpdateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateOrderResult{}, err
	}

	message := MsgOrderPaid
	if priorStatus == order.New {
		message = MsgOrderUpdated
	}
	h.notifier.Notify(ctx, actorID.String(), message)

	return UpdateOrderResult{PriorStatus: priorStatus, Message: message}, nil
}
