package commands

import (
	"context"

	"autoservice/internal/core/domain/model/review"
	"autoservice/internal/core/domain/services"
	"autoservice/internal/core/ports"
	"autoservice/internal/pkg/errs"
)

// MsgReviewThrottled is the user-facing rejection for rapid-fire reviews.
const MsgReviewThrottled = "You are commenting too much."

// PostReviewCommandHandler handles the business logic for posting a review on
// an order. Submissions are throttled per owner across all their orders: one
// review per rolling minute.
type PostReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	throttle   services.ReviewThrottle
	notifier   ports.Notifier
}

// NewPostReviewCommandHandler creates a handler for review submission.
func NewPostReviewCommandHandler(
	uowFactory ReviewUoWFactory,
	throttle services.ReviewThrottle,
	notifier ports.Notifier,
) PostReviewCommandHandler {
	return PostReviewCommandHandler{
		uowFactory: uowFactory,
		throttle:   throttle,
		notifier:   notifier,
	}
}

// Handle processes the review submission command.
//
// Verifies the reviewed order exists, checks the owner's most recent review
// against the throttle window, then persists the review. The throttle is a
// read-then-write check, not a serialized reservation; concurrent submissions
// can both pass, which is acceptable for its purpose.
func (h *PostReviewCommandHandler) Handle(ctx context.Context, cmd PostReviewCommand) error {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	lastReviewAt, err := uow.ReviewRepository().LastCreatedAtByOwner(ctx, cmd.OwnerID())
	if err != nil {
		return err
	}

	if !h.throttle.CanPost(lastReviewAt, cmd.Now()) {
		h.notifier.Notify(ctx, cmd.OwnerID().String(), MsgReviewThrottled)
		return errs.NewThrottledError("review", services.ReviewThrottleWindow)
	}

	orderReview, err := review.NewOrderReview(cmd.ReviewID(), cmd.OrderID(), cmd.OwnerID(), cmd.Content(), cmd.Now())
	if err != nil {
		return err
	}

	if err = uow.ReviewRepository().Add(ctx, orderReview); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
