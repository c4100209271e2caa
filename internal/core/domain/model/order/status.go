package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Initiated ──> Sent ──> Delivered
//
// Transitions are strictly forward; Delivered is terminal and is always
// accompanied by a soft delete of the order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Initiated is the initial status when an order is first created.
	Initiated

	// Sent indicates the order has been dispatched to the client.
	Sent

	// Delivered indicates the order reached the client. This is a terminal
	// state: the order is soft-deleted at the same time and no further
	// transition is defined.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Initiated: "INITIATED",
		Sent:      "SENT",
		Delivered: "DELIVERED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Initiated: "INITIATED",
		Sent:      "SENT",
		Delivered: "DELIVERED",
	}
}

// StatusFromString converts a persisted string representation back to a Status.
// Returns an error for any string that does not name a valid status.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Initiated, Sent, Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status ("INITIATED", "SENT",
// "DELIVERED"), or "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is defined from s.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next returns the status that follows s in the lifecycle.
//
// Valid transitions:
//   - Initiated -> Sent
//   - Sent -> Delivered
//
// Returns an error for Delivered (terminal, no regression or repetition
// allowed) and for invalid values.
func (s Status) Next() (Status, error) {
	switch s {
	case Initiated:
		return Sent, nil
	case Sent:
		return Delivered, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s has no next status", s.String()),
		)
	}
}
