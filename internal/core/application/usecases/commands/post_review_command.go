package commands

import (
	"errors"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"
	"autoservice/internal/pkg/guard"
)

var (
	ErrPostReviewCommandIsNotConstructed = errors.New(
		"PostReviewCommand must be created via NewPostReviewCommand constructor",
	)
)

// PostReviewCommand represents an authenticated customer's request to leave a
// comment on an order. The submission time is captured by the caller so the
// throttle check and the stored timestamp agree.
type PostReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	orderID  kernel.UUID
	ownerID  kernel.UUID
	content  string
	now      time.Time

	guard guard.ConstructorGuard
}

// NewPostReviewCommand creates a command to post a review. Content is
// required free text.
func NewPostReviewCommand(reviewID, orderID, ownerID kernel.UUID, content string, now time.Time) (PostReviewCommand, error) {
	cmd := PostReviewCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
		cmd.setContent(content),
	); err != nil {
		return PostReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PostReviewCommand) Validate() error {
	return c.guard.Validate(ErrPostReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier the new review will be created under.
func (c PostReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// OrderID returns the reviewed order.
func (c PostReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the authenticated customer posting the review.
func (c PostReviewCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Content returns the review text.
func (c PostReviewCommand) Content() string {
	return c.content
}

// Now returns the submission time used for throttling and the stored
// creation timestamp.
func (c PostReviewCommand) Now() time.Time {
	return c.now
}

func (c *PostReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}
	c.reviewID = reviewID
	return nil
}

func (c *PostReviewCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PostReviewCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *PostReviewCommand) setContent(content string) error {
	if content == "" {
		return errs.NewValueIsRequiredError("content")
	}
	c.content = content
	return nil
}
