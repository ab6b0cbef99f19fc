package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the shop-wide order list from the database.
// Rows are joined with the car and car model so the list can show who the
// order belongs to without further lookups.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for the order list query.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of order summaries, newest
// first. The search term matches case-insensitively against the owner name,
// the plate number, and the VIN of the order's car.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (OrdersPage, error) {
	if err := query.Validate(); err != nil {
		return OrdersPage{}, err
	}

	pattern := "%" + escapeLikePattern(query.Search()) + "%"

	var totalCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*)
		FROM orders o
		JOIN cars c ON c.id = o.car_id
		WHERE (? = '' OR c.owner_name ILIKE ? OR c.plate_number ILIKE ? OR c.vin ILIKE ?)
	`, query.Search(), pattern, pattern, pattern).Scan(&totalCount).Error
	if err != nil {
		return OrdersPage{}, err
	}

	offset := (query.Page() - 1) * OrdersPageSize

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
		WHERE (? = '' OR c.owner_name ILIKE ? OR c.plate_number ILIKE ? OR c.vin ILIKE ?)
		ORDER BY o.date DESC, o.id
		LIMIT ? OFFSET ?
	`, query.Search(), pattern, pattern, pattern, OrdersPageSize, offset).Rows()
	if err != nil {
		return OrdersPage{}, err
	}
	defer rows.Close()

	items := make([]OrderSummary, 0, OrdersPageSize)
	today := time.Now()

	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows, today)
		if scanErr != nil {
			return OrdersPage{}, scanErr
		}
		items = append(items, summary)
	}

	if err = rows.Err(); err != nil {
		return OrdersPage{}, err
	}

	return OrdersPage{
		Items:      items,
		TotalCount: totalCount,
		Page:       query.Page(),
		PageSize:   OrdersPageSize,
		TotalPages: totalPages(totalCount, OrdersPageSize),
	}, nil
}

// scanOrderSummary maps one joined row to an OrderSummary. Shared by the
// shop-wide and per-customer order list handlers, whose select lists match.
func scanOrderSummary(rows *sql.Rows, today time.Time) (OrderSummary, error) {
	var (
		id           uuid.UUID
		date         time.Time
		estimateDate sql.NullTime
		statusName   string
		totalSum     decimal.Decimal
		plateNumber  string
		ownerName    string
		carMake      string
		carModelName string
	)

	if err := rows.Scan(
		&id, &date, &estimateDate, &statusName, &totalSum,
		&plateNumber, &ownerName, &carMake, &carModelName,
	); err != nil {
		return OrderSummary{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummary{}, err
	}

	status, err := order.StatusFromString(statusName)
	if err != nil {
		return OrderSummary{}, err
	}

	money, err := kernel.NewMoney(totalSum)
	if err != nil {
		return OrderSummary{}, err
	}

	summary := OrderSummary{
		ID:           orderID,
		Date:         date,
		Status:       status,
		TotalSum:     money,
		PlateNumber:  plateNumber,
		OwnerName:    ownerName,
		CarMake:      carMake,
		CarModelName: carModelName,
	}

	if estimateDate.Valid {
		estimate := estimateDate.Time
		summary.EstimateDate = &estimate
		summary.IsOverdue = isDateOverdue(estimate, today)
	}

	return summary, nil
}

// escapeLikePattern quotes LIKE wildcards in the user's search term so that a
// term such as "100%" matches the literal characters instead of acting as a
// pattern.
func escapeLikePattern(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}

// isDateOverdue reports whether the estimate lies strictly before today's
// calendar date, ignoring the time of day.
func isDateOverdue(estimate, today time.Time) bool {
	e := time.Date(estimate.Year(), estimate.Month(), estimate.Day(), 0, 0, 0, 0, estimate.Location())
	d := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return e.Before(d)
}

func totalPages(totalCount int64, pageSize int) int {
	if totalCount == 0 {
		return 0
	}
	return int((totalCount + int64(pageSize) - 1) / int64(pageSize))
}
