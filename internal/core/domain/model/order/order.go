package order

import (
	"errors"
	"time"

	"autoservice/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods. This
	// ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLineBelongsToAnotherOrder is returned when a line added to an order
	// carries a different order identifier.
	ErrLineBelongsToAnotherOrder = errors.New("order line belongs to another order")
)

// Order represents a repair job for one car. It is the aggregate root that
// owns the order lines, the derived total, and the reader assignment.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and car reference
//   - The creation date is set once at creation and never changes
//   - The total always equals the sum of the lines' totals after
//     RecomputeTotal; a freshly created order has a zero total
//   - The reader, when set, identifies the authenticated customer who owns
//     the order; it is assigned server-side and never taken from input
//   - Status transitions follow the rules in Status
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// carID references the car being repaired
	carID kernel.UUID

	// readerID is the owning customer's ID (nil when staff-created and
	// unclaimed)
	readerID *kernel.UUID

	// date is the immutable creation time
	date time.Time

	// estimateDate is the promised completion date (nil if not estimated)
	estimateDate *time.Time

	// status represents the current state in the order lifecycle
	status Status

	// totalSum is the derived sum of all line totals
	totalSum kernel.Money

	// lines are the billed service instances of this order
	lines []*OrderLine

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with validation.
//
// The order starts in New status with a zero total (no lines can exist yet at
// the instant of creation, so nothing is recomputed). The creation time is
// fixed to now and immutable thereafter. readerID is optional; when present
// it must be a valid identifier supplied by the server, never by the request.
func NewOrder(id, carID kernel.UUID, readerID *kernel.UUID, estimateDate *time.Time, now time.Time) (*Order, error) {
	order := &Order{
		date:          now,
		estimateDate:  estimateDate,
		status:        New,
		totalSum:      kernel.ZeroMoney(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCarID(carID),
		order.setReaderID(readerID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rehydrates an Order from persistence, including its lines,
// status, and stored total.
func RestoreOrder(
	id, carID kernel.UUID,
	readerID *kernel.UUID,
	date time.Time,
	estimateDate *time.Time,
	status Status,
	totalSum kernel.Money,
	lines []*OrderLine,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	if err := totalSum.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		date:          date,
		estimateDate:  estimateDate,
		status:        status,
		totalSum:      totalSum,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCarID(carID),
		order.setReaderID(readerID),
	); err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err := order.attachLine(line); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CarID returns the identifier of the car being repaired.
func (o *Order) CarID() kernel.UUID {
	return o.carID
}

// Reader returns the owning customer's ID, or nil when no customer owns the
// order.
func (o *Order) Reader() *kernel.UUID {
	return o.readerID
}

// Date returns the immutable creation time of the order.
func (o *Order) Date() time.Time {
	return o.date
}

// EstimateDate returns the promised completion date, or nil when none was
// given.
func (o *Order) EstimateDate() *time.Time {
	return o.estimateDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalSum returns the stored total. It equals the sum of line totals after
// every RecomputeTotal call; for a freshly created order it is zero.
func (o *Order) TotalSum() kernel.Money {
	return o.totalSum
}

// Lines returns the order's lines. The returned slice is a copy; mutating it
// does not affect the aggregate.
func (o *Order) Lines() []*OrderLine {
	lines := make([]*OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// AddLine appends a billed service line to the order and recomputes the
// total. The line must reference this order.
func (o *Order) AddLine(line *OrderLine) error {
	if err := o.attachLine(line); err != nil {
		return err
	}

	o.RecomputeTotal()
	return nil
}

// RecomputeTotal recalculates the total as the sum of all line totals and
// stores it. An order with zero lines yields a zero total. Callers invoke it
// explicitly after line mutations; it is not a hidden save hook.
func (o *Order) RecomputeTotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range o.lines {
		total = total.Add(line.LineTotal())
	}

	o.totalSum = total
	return total
}

// IsOverdue reports whether the estimate date is set and lies strictly before
// today's calendar date. Pure function of the estimate date and the supplied
// clock; orders without an estimate date are never overdue.
func (o *Order) IsOverdue(today time.Time) bool {
	if o.estimateDate == nil {
		return false
	}

	estimate := truncateToDate(*o.estimateDate)
	return estimate.Before(truncateToDate(today))
}

// Reschedule replaces the estimate date. Passing nil clears it.
func (o *Order) Reschedule(estimateDate *time.Time) {
	o.estimateDate = estimateDate
}

// MarkAdvancePaid transitions the order to AdvancePaid. Every successful
// customer update lands here regardless of the prior status.
func (o *Order) MarkAdvancePaid() error {
	newStatus, err := o.status.MarkAdvancePaid()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignReader re-asserts the owning customer. Always called server-side
// with the authenticated identity of the requester.
func (o *Order) AssignReader(readerID kernel.UUID) error {
	if err := readerID.Validate(); err != nil {
		return err
	}

	o.readerID = &readerID
	return nil
}

func (o *Order) attachLine(line *OrderLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	if !line.OrderID().IsEqual(o.id) {
		return ErrLineBelongsToAnotherOrder
	}

	o.lines = append(o.lines, line)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCarID(carID kernel.UUID) error {
	if err := carID.Validate(); err != nil {
		return err
	}
	o.carID = carID
	return nil
}

func (o *Order) setReaderID(readerID *kernel.UUID) error {
	if readerID == nil {
		return nil
	}

	if err := readerID.Validate(); err != nil {
		return err
	}
	o.readerID = readerID
	return nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
