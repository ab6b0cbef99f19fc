// Package reviewrepo provides data transfer objects and mapping functions for
// review persistence.
package reviewrepo

import (
	"time"

	"autoservice/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting reviews. The
// owner/created_at index backs the throttle lookup.
type ReviewDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index:idx_reviews_owner_created"`
	Content   string
	CreatedAt time.Time `gorm:"index:idx_reviews_owner_created"`
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(aggregate *review.OrderReview) ReviewDTO {
	return ReviewDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		OwnerID:   aggregate.OwnerID().Bytes(),
		Content:   aggregate.Content(),
		CreatedAt: aggregate.CreatedAt(),
	}
}
