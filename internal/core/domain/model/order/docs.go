// Package order provides domain entities and business logic for repair order
// management. It implements the Order aggregate root with derived totals and
// a status lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning the order lines, the derived total,
//     and the reader (the customer who placed the order)
//   - OrderLine: one billed service instance with a quantity and a price
//     snapshot taken when the line was added
//   - Status: the order lifecycle enum with the customer-driven transition
//
// Key business rules:
//   - The total always equals the sum of line totals; RecomputeTotal is an
//     explicit call made after line mutations, not a hidden save hook
//   - A freshly created order has a zero total and status New
//   - The creation date is set once and never changes
//   - A customer update moves the order to AdvancePaid
//   - An order is overdue when its estimate date is set and lies strictly
//     before today
package order
