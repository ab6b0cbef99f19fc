package queries

import (
	"context"
	"time"

	"autoservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOverdueOrdersQueryHandler reads overdue unsettled orders from the
// database for the background scan.
type ListOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOverdueOrdersQueryHandler creates a handler for the overdue order
// scan query.
func NewListOverdueOrdersQueryHandler(db *gorm.DB) ListOverdueOrdersQueryHandler {
	return ListOverdueOrdersQueryHandler{db: db}
}

// Handle executes the query. An order is overdue when its estimate date is set
// and falls strictly before the reference day; settled orders are skipped.
func (h ListOverdueOrdersQueryHandler) Handle(ctx context.Context, query ListOverdueOrdersQuery) ([]OverdueOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	today := query.Today()
	dayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.reader_id, o.estimate_date
		FROM orders o
		WHERE o.estimate_date IS NOT NULL
		  AND o.estimate_date < ?
		  AND o.status NOT IN ('Done', 'Cancelled', 'Paid')
		ORDER BY o.estimate_date, o.id
	`, dayStart).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overdue := make([]OverdueOrder, 0)

	for rows.Next() {
		var (
			rawOrderID   uuid.UUID
			rawReaderID  uuid.NullUUID
			estimateDate time.Time
		)
		if err = rows.Scan(&rawOrderID, &rawReaderID, &estimateDate); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(rawOrderID[:])
		if idErr != nil {
			return nil, idErr
		}

		item := OverdueOrder{OrderID: orderID, EstimateDate: estimateDate}
		if rawReaderID.Valid {
			readerID, readerErr := kernel.UUIDFromBytes(rawReaderID.UUID[:])
			if readerErr != nil {
				return nil, readerErr
			}
			item.ReaderID = &readerID
		}

		overdue = append(overdue, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
