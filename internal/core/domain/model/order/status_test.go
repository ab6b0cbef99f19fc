package order_test

import (
	"testing"

	"autoservice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{
			order.New, order.AdvancePaid, order.PartsOrdered,
			order.Working, order.Done, order.Cancelled, order.Paid,
		} {
			assert.NoError(t, s.Validate(), "status: %s", s)
		}
	})

	t.Run("unknown and out-of-range values fail", func(t *testing.T) {
		assert.Error(t, order.Unknown.Validate())
		assert.Error(t, order.Status(99).Validate())
		assert.Error(t, order.Status(-1).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "New", order.New.String())
	assert.Equal(t, "AdvancePaid", order.AdvancePaid.String())
	assert.Equal(t, "PartsOrdered", order.PartsOrdered.String())
	assert.Equal(t, "Working", order.Working.String())
	assert.Equal(t, "Done", order.Done.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Paid", order.Paid.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips every valid status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.New, order.AdvancePaid, order.PartsOrdered,
			order.Working, order.Done, order.Cancelled, order.Paid,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unrecognized names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "refunded", "new"} {
			_, err := order.StatusFromString(name)
			assert.Error(t, err, "name: %q", name)
		}
	})
}

func TestStatus_MarkAdvancePaid(t *testing.T) {
	t.Run("allowed from every valid status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.New, order.AdvancePaid, order.PartsOrdered,
			order.Working, order.Done, order.Cancelled, order.Paid,
		} {
			next, err := s.MarkAdvancePaid()
			require.NoError(t, err, "status: %s", s)
			assert.Equal(t, order.AdvancePaid, next)
		}
	})

	t.Run("rejected from invalid values", func(t *testing.T) {
		_, err := order.Unknown.MarkAdvancePaid()
		assert.Error(t, err)
	})
}

func TestStatus_IsSettled(t *testing.T) {
	assert.True(t, order.Done.IsSettled())
	assert.True(t, order.Cancelled.IsSettled())
	assert.True(t, order.Paid.IsSettled())

	assert.False(t, order.New.IsSettled())
	assert.False(t, order.AdvancePaid.IsSettled())
	assert.False(t, order.PartsOrdered.IsSettled())
	assert.False(t, order.Working.IsSettled())
}
