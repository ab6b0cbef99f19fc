// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status is stored by name so the read side and ad-hoc SQL stay legible.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CarID        uuid.UUID  `gorm:"type:uuid;index"`
	ReaderID     *uuid.UUID `gorm:"type:uuid;index"`
	Date         time.Time
	EstimateDate *time.Time
	Status       string          `gorm:"index"`
	TotalSum     decimal.Decimal `gorm:"type:numeric(12,2)"`

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one billed line row. Seq is a database-assigned
// sequence that preserves insertion order for display.
type OrderLineDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ServiceID uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int
	Price     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Seq       int64           `gorm:"autoIncrement;uniqueIndex"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation,
// including its lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	var readerID *uuid.UUID
	if id := aggregate.Reader(); id != nil {
		raw := id.Bytes()
		readerID = &raw
	}

	lines := aggregate.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for _, line := range lines {
		lineDTOs = append(lineDTOs, lineFromDomain(line))
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CarID:        aggregate.CarID().Bytes(),
		ReaderID:     readerID,
		Date:         aggregate.Date(),
		EstimateDate: aggregate.EstimateDate(),
		Status:       aggregate.Status().String(),
		TotalSum:     aggregate.TotalSum().Amount(),
		Lines:        lineDTOs,
	}
}

func lineFromDomain(line *order.OrderLine) OrderLineDTO {
	return OrderLineDTO{
		ID:        line.ID().Bytes(),
		OrderID:   line.OrderID().Bytes(),
		ServiceID: line.ServiceID().Bytes(),
		Quantity:  line.Quantity(),
		Price:     line.Price().Amount(),
		Seq:       line.Seq(),
	}
}

// toDomain converts a database DTO to an order aggregate, reconstructing its
// lines in the provided order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	carID, err := kernel.UUIDFromBytes(dto.CarID[:])
	if err != nil {
		return nil, err
	}

	var readerID *kernel.UUID
	if dto.ReaderID != nil {
		rID, readerErr := kernel.UUIDFromBytes((*dto.ReaderID)[:])
		if readerErr != nil {
			return nil, readerErr
		}
		readerID = &rID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	totalSum, err := kernel.NewMoney(dto.TotalSum)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.OrderLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, carID, readerID, dto.Date, dto.EstimateDate, status, totalSum, lines)
}

func lineToDomain(dto OrderLineDTO) (*order.OrderLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderLine(id, orderID, serviceID, dto.Quantity, price, dto.Seq)
}
