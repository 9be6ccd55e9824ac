package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the lifecycle state of a laundry order.
//
// Customer-triggered transitions:
//
//	Pending ────┐
//	            ├──> Cancelled (via Cancel)
//	InProgress ─┘
//
// Administrative updates go through ForceStatus on the Order aggregate and
// are deliberately unconstrained: the legacy system allows administrators to
// set any status, and that behavior is preserved behind a single method so a
// stricter transition table can be substituted later without touching
// callers.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned to every newly placed order.
	Pending

	// InProgress indicates the laundry work has started.
	InProgress

	// Completed indicates the work is finished and the order awaits delivery.
	Completed

	// Delivered indicates the order has been handed over to the customer.
	Delivered

	// Cancelled indicates the order was cancelled by its customer.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString parses a status name as supplied by API callers.
// Returns an error for unknown names, including "Unknown".
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle values.
// Unknown (0) and out-of-range values are rejected. Used to vet status
// values arriving from persistence or API input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCancel checks whether a customer may cancel an order in this
// status without performing the transition. Completed and Cancelled orders
// cannot be cancelled.
func (s Status) ValidateCancel() error {
	if s == Completed || s == Cancelled {
		return errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
	return nil
}

// Cancel transitions the status to Cancelled.
//
// Pending, InProgress and Delivered orders may be cancelled. Delivered is
// permitted for parity with the legacy system, which only rejects Completed
// and Cancelled.
//
// Returns (0, error) when the order is already Completed or Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateCancel(); err != nil {
		return 0, err
	}
	return Cancelled, nil
}
