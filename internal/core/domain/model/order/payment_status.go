package order

import (
	"fmt"

	"grocery/internal/pkg/errs"
)

// PaymentStatus tracks the payment state reported by the external payment
// collaborator. The core never verifies payments; it only records the
// reported outcome and couples it to the order status.
//
// State transitions:
//
//	pending ──> completed   (forces order status pending -> confirmed)
//	pending ──> failed      (forces order status pending/confirmed -> cancelled)
//
// completed and failed are terminal: a resolved payment is never revisited.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status of every new order.
	PaymentPending

	// PaymentCompleted indicates the payment collaborator reported success.
	PaymentCompleted

	// PaymentFailed indicates the payment collaborator reported failure.
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:   "unknown",
		PaymentPending:   "pending",
		PaymentCompleted: "completed",
		PaymentFailed:    "failed",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:   "pending",
		PaymentCompleted: "completed",
		PaymentFailed:    "failed",
	}
}

// PaymentStatusFromString parses the persisted string form of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus is one of the closed set of valid states.
func (p PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String returns the persisted name of the payment status, e.g. "completed".
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// IsResolved reports whether the payment reached a terminal outcome.
func (p PaymentStatus) IsResolved() bool {
	return p == PaymentCompleted || p == PaymentFailed
}

// Transition validates a requested payment-status change against the current
// payment status and the current order status, and returns both the new
// payment status and the order status it forces. This is a pure function;
// nothing is persisted.
//
// Rules:
//   - completed: only from a pending payment on a pending order;
//     forces the order to confirmed
//   - failed: only from a pending payment on a pending or confirmed order;
//     forces the order to cancelled
//   - anything else, including re-resolving a resolved payment,
//     fails with an IllegalTransitionError
func (p PaymentStatus) Transition(orderStatus Status, requested PaymentStatus) (PaymentStatus, Status, error) {
	if err := p.Validate(); err != nil {
		return PaymentUnknown, StatusUnknown, err
	}
	if err := requested.Validate(); err != nil {
		return PaymentUnknown, StatusUnknown, err
	}
	if err := orderStatus.Validate(); err != nil {
		return PaymentUnknown, StatusUnknown, err
	}

	if p.IsResolved() {
		return PaymentUnknown, StatusUnknown, errs.NewIllegalTransitionErrorWithCause(
			p.String(), requested.String(),
			fmt.Errorf("payment is already resolved"))
	}

	switch requested {
	case PaymentCompleted:
		if orderStatus != StatusPending {
			return PaymentUnknown, StatusUnknown, errs.NewIllegalTransitionErrorWithCause(
				p.String(), requested.String(),
				fmt.Errorf("payment can only complete while the order is pending, not %s", orderStatus))
		}
		return PaymentCompleted, StatusConfirmed, nil

	case PaymentFailed:
		if !orderStatus.CanCancel() {
			return PaymentUnknown, StatusUnknown, errs.NewIllegalTransitionErrorWithCause(
				p.String(), requested.String(),
				fmt.Errorf("payment can only fail while the order is pending or confirmed, not %s", orderStatus))
		}
		return PaymentFailed, StatusCancelled, nil

	default:
		return PaymentUnknown, StatusUnknown, errs.NewIllegalTransitionErrorWithCause(
			p.String(), requested.String(),
			fmt.Errorf("a payment cannot return to %s", requested))
	}
}
