package review

import (
	"errors"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"
)

var (
	// ErrOrderReviewIsNotConstructed is returned when an OrderReview instance
	// was not created through the NewOrderReview or RestoreOrderReview
	// factory methods.
	ErrOrderReviewIsNotConstructed = errors.New("OrderReview must be created via NewOrderReview constructor")
)

// OrderReview represents a comment left by a customer on an order. It belongs
// to exactly one order and one owning user.
//
// OrderReview follows these invariants:
//   - Must have valid identifiers for itself, its order, and its owner
//   - Content is required free text
//   - The creation time is set once at construction and never changes
//
// Reviews are immutable after creation.
type OrderReview struct {
	id        kernel.UUID
	orderID   kernel.UUID
	ownerID   kernel.UUID
	content   string
	createdAt time.Time

	isConstructed bool
}

// NewOrderReview creates an OrderReview with validation, stamping it with the
// supplied creation time.
func NewOrderReview(id, orderID, ownerID kernel.UUID, content string, createdAt time.Time) (*OrderReview, error) {
	r := &OrderReview{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setOwnerID(ownerID),
		r.setContent(content),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreOrderReview rehydrates an OrderReview from persistence.
func RestoreOrderReview(id, orderID, ownerID kernel.UUID, content string, createdAt time.Time) (*OrderReview, error) {
	return NewOrderReview(id, orderID, ownerID, content, createdAt)
}

// Validate ensures the OrderReview was created through a factory method.
func (r *OrderReview) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrOrderReviewIsNotConstructed
	}
	return nil
}

// ID returns the review's unique identifier.
func (r *OrderReview) ID() kernel.UUID {
	return r.id
}

// OrderID returns the identifier of the reviewed order.
func (r *OrderReview) OrderID() kernel.UUID {
	return r.orderID
}

// OwnerID returns the identifier of the user who wrote the review.
func (r *OrderReview) OwnerID() kernel.UUID {
	return r.ownerID
}

// Content returns the review text.
func (r *OrderReview) Content() string {
	return r.content
}

// CreatedAt returns the immutable creation time.
func (r *OrderReview) CreatedAt() time.Time {
	return r.createdAt
}

func (r *OrderReview) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *OrderReview) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *OrderReview) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	r.ownerID = ownerID
	return nil
}

func (r *OrderReview) setContent(content string) error {
	if content == "" {
		return errs.NewValueIsRequiredError("content")
	}
	r.content = content
	return nil
}
