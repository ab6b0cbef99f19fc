package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ListUserOrdersQueryHandler reads one customer's orders from the database,
// newest first.
type ListUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListUserOrdersQueryHandler creates a handler for the personal order list
// query.
func NewListUserOrdersQueryHandler(db *gorm.DB) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{db: db}
}

// Handle executes the query and returns all orders owned by the customer.
func (h ListUserOrdersQueryHandler) Handle(ctx context.Context, query ListUserOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.date,
			o.estimate_date,
			o.status,
			o.total_sum,
			c.plate_number,
			c.owner_name,
			m.make,
			m.model
		FROM orders o
		JOIN cars c ON c.id = o.car_id
		JOIN car_models m ON m.id = c.car_model_id
		WHERE o.reader_id = ?
		ORDER BY o.date DESC, o.id
	`, query.ReaderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	today := time.Now()

	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows, today)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
