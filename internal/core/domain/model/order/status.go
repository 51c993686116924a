package order

import (
	"fmt"

	"grocery/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──> out_for_delivery ──> delivered
//	   │            │
//	   └────────────┴──> cancelled
//
// The happy path is strictly forward, one step at a time. cancelled is only
// reachable from pending or confirmed. delivered and cancelled are terminal.
//
// Status is a value object that validates state transitions and provides the
// snake_case string representations used for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly built order,
	// waiting for payment confirmation.
	StatusPending

	// StatusConfirmed indicates payment completed and the order was accepted.
	StatusConfirmed

	// StatusPreparing indicates the store is picking and packing the order.
	StatusPreparing

	// StatusOutForDelivery indicates the order left the store.
	StatusOutForDelivery

	// StatusDelivered indicates the order reached the customer.
	// Terminal state.
	StatusDelivered

	// StatusCancelled indicates the order was abandoned before preparation.
	// Terminal state.
	StatusCancelled
)

// happyPath is the canonical forward progression of an order.
// TrackerStep and Transition derive their rules from this sequence.
var happyPath = [...]Status{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPending:        "pending",
		StatusConfirmed:      "confirmed",
		StatusPreparing:      "preparing",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "pending",
		StatusConfirmed:      "confirmed",
		StatusPreparing:      "preparing",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns an error for anything outside the closed set, so illegal values
// from storage or transport never become a live Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the closed set of valid states.
// StatusUnknown (0) and any other values are invalid. Used to vet Status
// values arriving from external sources before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, e.g. "out_for_delivery".
// Returns "unknown" for invalid values. Implements fmt.Stringer and is the
// exact form persisted by the order store.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are legal out of s.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanCancel reports whether the order may still be cancelled from s.
// Cancellation is only allowed before preparation starts.
func (s Status) CanCancel() bool {
	return s == StatusPending || s == StatusConfirmed
}

// TrackerStep returns the zero-based position of s in the happy-path
// sequence (pending=0 .. delivered=4), which the presentation collaborator
// uses to highlight the delivery tracker. Returns -1 for cancelled and for
// invalid values, which have no place on the tracker.
func (s Status) TrackerStep() int {
	for i, step := range happyPath {
		if s == step {
			return i
		}
	}
	return -1
}

// next returns the immediate successor of s on the happy path, or
// StatusUnknown if s is terminal or not on the path.
func (s Status) next() Status {
	for i, step := range happyPath[:len(happyPath)-1] {
		if s == step {
			return happyPath[i+1]
		}
	}
	return StatusUnknown
}

// Transition validates a requested status change and returns the new status.
// This is a pure function: it persists nothing and never mutates s.
//
// Legal transitions:
//   - the immediate happy-path successor of s
//   - cancelled, while s is pending or confirmed
//
// Everything else fails with an IllegalTransitionError: skipping steps,
// moving backwards, and any transition out of a terminal state.
func (s Status) Transition(requested Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	if err := requested.Validate(); err != nil {
		return StatusUnknown, err
	}

	if s.IsTerminal() {
		return StatusUnknown, errs.NewIllegalTransitionErrorWithCause(s.String(), requested.String(),
			fmt.Errorf("%s is a terminal status", s))
	}

	if requested == StatusCancelled {
		if !s.CanCancel() {
			return StatusUnknown, errs.NewIllegalTransitionErrorWithCause(s.String(), requested.String(),
				fmt.Errorf("only pending or confirmed orders can be cancelled"))
		}
		return StatusCancelled, nil
	}

	if requested != s.next() {
		return StatusUnknown, errs.NewIllegalTransitionErrorWithCause(s.String(), requested.String(),
			fmt.Errorf("%s must be followed by %s", s, s.next()))
	}

	return requested, nil
}
