package order

import (
	"errors"
	"fmt"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

const deliveryFeeCents = 599

// DeliveryLeadTime is the fixed lead time promised to the customer:
// the estimated delivery timestamp is creation time plus this duration.
const DeliveryLeadTime = 45 * time.Minute

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the Builder or RestoreOrder. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via Builder.Build or RestoreOrder")

	// ErrOrderAlreadyIdentified is returned when the store tries to assign
	// an identifier to an order that already has one. Orders are created
	// exactly once.
	ErrOrderAlreadyIdentified = errors.New("order already has an identifier")
)

// StandardDeliveryFee returns the flat per-order delivery fee (5.99).
func StandardDeliveryFee() kernel.Money {
	fee, _ := kernel.NewMoneyFromCents(deliveryFeeCents)
	return fee
}

// Order is the aggregate root of the order lifecycle. It is produced once by
// the Builder at checkout, persisted once, and afterwards changes only
// through status and payment-status transitions.
//
// Order invariants, held for its whole lifetime:
//   - total == subtotal + delivery fee
//   - subtotal == sum of the item subtotals
//   - items is non-empty
//   - status and payment status only change via the transitions in
//     Status.Transition and PaymentStatus.Transition
//
// The identifier is assigned by the order store on successful persistence;
// before that ID() reports absence. Orders are never deleted; they terminate
// logically at delivered or cancelled.
type Order struct {
	id                  *kernel.UUID
	userID              string
	items               []Item
	subtotal            kernel.Money
	deliveryFee         kernel.Money
	total               kernel.Money
	status              Status
	paymentStatus       PaymentStatus
	deliveryAddress     DeliveryAddress
	createdAt           time.Time
	estimatedDeliveryAt time.Time
	specialInstructions string
	paymentMethod       string

	isConstructed bool
}

// RestoreOrder rebuilds an order aggregate from persisted state. The stored
// money fields are revalidated against the aggregate invariants, so corrupted
// rows never become live orders.
func RestoreOrder(
	id kernel.UUID,
	userID string,
	items []Item,
	subtotal kernel.Money,
	deliveryFee kernel.Money,
	total kernel.Money,
	status Status,
	paymentStatus PaymentStatus,
	deliveryAddress DeliveryAddress,
	createdAt time.Time,
	estimatedDeliveryAt time.Time,
	specialInstructions string,
	paymentMethod string,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
		deliveryAddress.Validate(),
	); err != nil {
		return nil, err
	}

	o := &Order{
		id:                  &id,
		userID:              userID,
		items:               append([]Item(nil), items...),
		subtotal:            subtotal,
		deliveryFee:         deliveryFee,
		total:               total,
		status:              status,
		paymentStatus:       paymentStatus,
		deliveryAddress:     deliveryAddress,
		createdAt:           createdAt,
		estimatedDeliveryAt: estimatedDeliveryAt,
		specialInstructions: specialInstructions,
		paymentMethod:       paymentMethod,
		isConstructed:       true,
	}

	if err := o.checkInvariants(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through the
// Builder or RestoreOrder. Prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// checkInvariants verifies the money and item invariants of the aggregate.
func (o *Order) checkInvariants() error {
	if o.userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	if len(o.items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	if o.paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}

	sum := kernel.Money{}
	for _, item := range o.items {
		if err := item.Validate(); err != nil {
			return err
		}
		sum = sum.Add(item.Subtotal())
	}

	if !o.subtotal.IsEqual(sum) {
		return errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("subtotal %s does not equal item sum %s", o.subtotal, sum))
	}
	if !o.total.IsEqual(o.subtotal.Add(o.deliveryFee)) {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("total %s does not equal subtotal %s plus delivery fee %s",
				o.total, o.subtotal, o.deliveryFee))
	}

	return nil
}

// ID returns the store-assigned identifier, or nil if the order has not been
// persisted yet.
func (o *Order) ID() *kernel.UUID {
	return o.id
}

// AssignID sets the store-assigned identifier on a freshly persisted order.
// Only the order store calls this, exactly once per order.
func (o *Order) AssignID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.id != nil {
		return ErrOrderAlreadyIdentified
	}
	o.id = &id
	return nil
}

// UserID returns the owning user identifier supplied by the authentication
// collaborator.
func (o *Order) UserID() string {
	return o.userID
}

// Items returns the priced order lines in cart insertion order.
// The returned slice is a copy.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Subtotal returns the sum of the item subtotals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// DeliveryFee returns the flat delivery fee charged on this order.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Total returns subtotal plus delivery fee.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// DeliveryAddress returns the delivery destination.
func (o *Order) DeliveryAddress() DeliveryAddress {
	return o.deliveryAddress
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// EstimatedDeliveryAt returns the promised delivery timestamp
// (creation time + DeliveryLeadTime).
func (o *Order) EstimatedDeliveryAt() time.Time {
	return o.estimatedDeliveryAt
}

// SpecialInstructions returns the optional free-text instructions, empty if none.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// PaymentMethod returns the payment method identifier chosen at checkout.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// TrackerStep returns the position of the current status on the happy-path
// delivery tracker, or -1 for cancelled orders.
func (o *Order) TrackerStep() int {
	return o.status.TrackerStep()
}

// ChangeStatus applies a status transition through the state machine.
// On an illegal transition the order is left untouched and an
// IllegalTransitionError is returned.
func (o *Order) ChangeStatus(requested Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Transition(requested)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ApplyPaymentStatus applies a payment-status transition through the state
// machine, including its coupling to the order status: a completed payment
// confirms a pending order, a failed payment cancels it. On an illegal
// transition nothing changes.
func (o *Order) ApplyPaymentStatus(requested PaymentStatus) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newPayment, newStatus, err := o.paymentStatus.Transition(o.status, requested)
	if err != nil {
		return err
	}

	o.paymentStatus = newPayment
	o.status = newStatus
	return nil
}
