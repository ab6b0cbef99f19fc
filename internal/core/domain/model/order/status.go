package order

import (
	"fmt"

	"autoservice/internal/pkg/errs"
)

// Status represents the lifecycle state of a repair order.
//
// State transitions:
//
//	New ──> AdvancePaid ──> PartsOrdered ──> Working ──> Done
//	              │
//	              └──> (Cancelled, Paid reachable as side branches)
//
// Only the New/AdvancePaid transition is driven by customer action and
// implemented here; the staff-only states (PartsOrdered, Working, Done, Paid)
// are accepted as values but advanced by the administrative side.
// Cancellation removes the order instead of parking it in Cancelled.
//
// TODO: any customer edit moves the order to AdvancePaid, even a date-only
// correction; "edit" and "pay" are coupled into one action. Kept as shipped,
// pending a product decision.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned when a customer places an order.
	New

	// AdvancePaid indicates the customer has updated the order, which the
	// workflow treats as an advance payment.
	AdvancePaid

	// PartsOrdered indicates staff have ordered the required parts.
	PartsOrdered

	// Working indicates the repair is in progress.
	Working

	// Done indicates the repair is finished.
	Done

	// Cancelled indicates the order was called off.
	Cancelled

	// Paid indicates the order has been settled in full.
	Paid
)

// getStatusStrings returns a map of Status values to their string
// representations, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		New:          "New",
		AdvancePaid:  "AdvancePaid",
		PartsOrdered: "PartsOrdered",
		Working:      "Working",
		Done:         "Done",
		Cancelled:    "Cancelled",
		Paid:         "Paid",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:          "New",
		AdvancePaid:  "AdvancePaid",
		PartsOrdered: "PartsOrdered",
		Working:      "Working",
		Done:         "Done",
		Cancelled:    "Cancelled",
		Paid:         "Paid",
	}
}

// Validate checks if the Status value is valid. Unknown (0) and any value
// outside the enum are invalid. Used to vet Status values arriving from
// persistence or requests.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as produced by String.
// Returns an error for unrecognized names and for "Unknown".
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// MarkAdvancePaid transitions the status to AdvancePaid.
//
// The transition is allowed from every valid status: a customer update always
// lands the order in AdvancePaid regardless of where it was (see the type
// comment for the coupling caveat). Only invalid values are rejected.
func (s Status) MarkAdvancePaid() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return AdvancePaid, nil
}

// IsSettled reports whether the status is one of the terminal settlement
// states (Done, Cancelled, Paid). Settled orders are excluded from the
// overdue scan.
func (s Status) IsSettled() bool {
	return s == Done || s == Cancelled || s == Paid
}
