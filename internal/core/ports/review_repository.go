package ports

import (
	"context"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for order reviews.
// Reviews are append-only; there is no update or delete.
type ReviewRepository interface {
	// Add persists a new review.
	Add(ctx context.Context, aggregate *review.OrderReview) error

	// LastCreatedAtByOwner returns the creation time of the owner's most
	// recent review across all orders, or nil when the owner has never
	// posted one. Used by the review throttle.
	LastCreatedAtByOwner(ctx context.Context, ownerID kernel.UUID) (*time.Time, error)
}
