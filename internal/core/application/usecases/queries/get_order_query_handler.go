package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order's detail view from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for the order detail query.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Lines come back in insertion order; reviews come
// back newest first. Returns an object-not-found error when the order does
// not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.Lines, err = h.loadLines(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.Reviews, err = h.loadReviews(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.reader_id,
			o.date,
			o.estimate_date,
			o.status,
			o.total_sum,
			c.plate_number,
			c.vin,
			c.owner_name,
			m.make,
			m.model
		FROM orders o
		JOIN cars c ON c.id = o.car_id
		JOIN car_models m ON m.id = c.car_model_id
		WHERE o.id = ?
	`, orderID.Bytes()).Row()

	var (
		id           uuid.UUID
		readerID     uuid.NullUUID
		date         time.Time
		estimateDate sql.NullTime
		statusName   string
		totalSum     decimal.Decimal
		response     GetOrderQueryResponse
	)

	err := row.Scan(
		&id, &readerID, &date, &estimateDate, &statusName, &totalSum,
		&response.PlateNumber, &response.VIN, &response.OwnerName,
		&response.CarMake, &response.CarModelName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", orderID.String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if readerID.Valid {
		reader, idErr := kernel.UUIDFromBytes(readerID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		response.ReaderID = &reader
	}

	if response.Status, err = order.StatusFromString(statusName); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.TotalSum, err = kernel.NewMoney(totalSum); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.Date = date
	if estimateDate.Valid {
		estimate := estimateDate.Time
		response.EstimateDate = &estimate
		response.IsOverdue = isDateOverdue(estimate, time.Now())
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, orderID kernel.UUID) ([]OrderLineDetails, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			s.name,
			l.quantity,
			l.price
		FROM order_lines l
		JOIN services s ON s.id = l.service_id
		WHERE l.order_id = ?
		ORDER BY l.seq
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineDetails, 0)
	for rows.Next() {
		var (
			id    uuid.UUID
			price decimal.Decimal
			line  OrderLineDetails
		)

		if err = rows.Scan(&id, &line.ServiceName, &line.Quantity, &price); err != nil {
			return nil, err
		}

		if line.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		if line.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}

		line.LineTotal = line.Price.MulInt(line.Quantity)
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

func (h GetOrderQueryHandler) loadReviews(ctx context.Context, orderID kernel.UUID) ([]ReviewDetails, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.owner_id,
			r.content,
			r.created_at
		FROM reviews r
		WHERE r.order_id = ?
		ORDER BY r.created_at DESC, r.id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]ReviewDetails, 0)
	for rows.Next() {
		var (
			id      uuid.UUID
			ownerID uuid.UUID
			rev     ReviewDetails
		)

		if err = rows.Scan(&id, &ownerID, &rev.Content, &rev.CreatedAt); err != nil {
			return nil, err
		}

		if rev.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		if rev.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}

		reviews = append(reviews, rev)
	}

	return reviews, rows.Err()
}
