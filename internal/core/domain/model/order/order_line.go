package order

import (
	"errors"
	"fmt"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"
)

var (
	// ErrOrderLineIsNotConstructed is returned when an OrderLine instance was
	// not created through the NewOrderLine or RestoreOrderLine factory methods.
	ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine constructor")
)

// OrderLine represents one billed service instance within an order: a service
// reference, a quantity, and a price snapshot.
//
// OrderLine follows these invariants:
//   - Must have valid identifiers for itself, its order, and its service
//   - Quantity is a positive integer
//   - Price is a snapshot taken when the line was added; later changes to the
//     catalog Service price never affect it
//
// The line total is derived, never stored input.
type OrderLine struct {
	id        kernel.UUID
	orderID   kernel.UUID
	serviceID kernel.UUID
	quantity  int
	price     kernel.Money

	// seq is the insertion sequence used for stable display ordering.
	// Zero until assigned by persistence.
	seq int64

	isConstructed bool
}

// NewOrderLine creates an OrderLine with validation. The price is the
// caller's snapshot of the service price at this moment.
func NewOrderLine(id, orderID, serviceID kernel.UUID, quantity int, price kernel.Money) (*OrderLine, error) {
	line := &OrderLine{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setOrderID(orderID),
		line.setServiceID(serviceID),
		line.setQuantity(quantity),
		line.setPrice(price),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreOrderLine rehydrates an OrderLine from persistence, including its
// insertion sequence.
func RestoreOrderLine(id, orderID, serviceID kernel.UUID, quantity int, price kernel.Money, seq int64) (*OrderLine, error) {
	line, err := NewOrderLine(id, orderID, serviceID, quantity, price)
	if err != nil {
		return nil, err
	}

	line.seq = seq
	return line, nil
}

// Validate ensures the OrderLine was created through a factory method.
func (l *OrderLine) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrOrderLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *OrderLine) ID() kernel.UUID {
	return l.id
}

// OrderID returns the identifier of the order this line belongs to.
func (l *OrderLine) OrderID() kernel.UUID {
	return l.orderID
}

// ServiceID returns the identifier of the billed catalog service.
func (l *OrderLine) ServiceID() kernel.UUID {
	return l.serviceID
}

// Quantity returns the billed quantity.
func (l *OrderLine) Quantity() int {
	return l.quantity
}

// Price returns the price snapshot taken when the line was added.
func (l *OrderLine) Price() kernel.Money {
	return l.price
}

// Seq returns the insertion sequence, zero until persisted.
func (l *OrderLine) Seq() int64 {
	return l.seq
}

// LineTotal returns quantity times the price snapshot.
func (l *OrderLine) LineTotal() kernel.Money {
	return l.price.MulInt(l.quantity)
}

func (l *OrderLine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *OrderLine) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	l.orderID = orderID
	return nil
}

func (l *OrderLine) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	l.serviceID = serviceID
	return nil
}

func (l *OrderLine) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not a positive integer", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *OrderLine) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.price = price
	return nil
}
