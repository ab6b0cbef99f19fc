package review_test

import (
	"testing"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderReview(t *testing.T) {
	createdAt := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("should create review with valid fields", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		ownerID := kernel.NewUUID()

		r, err := review.NewOrderReview(id, orderID, ownerID, "Quick and tidy work.", createdAt)

		require.NoError(t, err)
		assert.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(id))
		assert.True(t, r.OrderID().IsEqual(orderID))
		assert.True(t, r.OwnerID().IsEqual(ownerID))
		assert.Equal(t, "Quick and tidy work.", r.Content())
		assert.Equal(t, createdAt, r.CreatedAt())
	})

	t.Run("should reject empty content", func(t *testing.T) {
		_, err := review.NewOrderReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", createdAt)

		assert.Error(t, err)
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		_, err := review.NewOrderReview(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), "ok", createdAt)
		assert.Error(t, err)

		_, err = review.NewOrderReview(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), "ok", createdAt)
		assert.Error(t, err)

		_, err = review.NewOrderReview(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, "ok", createdAt)
		assert.Error(t, err)
	})
}

func TestOrderReview_Validate(t *testing.T) {
	var r review.OrderReview

	assert.Equal(t, review.ErrOrderReviewIsNotConstructed, r.Validate())
}
