package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/guard"
)

var ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
	"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
)

// UpdatePaymentStatusCommand represents a payment outcome reported by the
// payment collaborator. The core records the outcome and lets the state
// machine couple it to the order status; it never verifies the payment.
type UpdatePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentStatus order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewUpdatePaymentStatusCommand creates a command to record a payment outcome.
func NewUpdatePaymentStatusCommand(
	orderID kernel.UUID,
	paymentStatus order.PaymentStatus,
) (UpdatePaymentStatusCommand, error) {
	paymentCommand := UpdatePaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setPaymentStatus(paymentStatus),
	); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order the payment belongs to.
func (c UpdatePaymentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentStatus returns the reported payment outcome.
func (c UpdatePaymentStatusCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}

func (c *UpdatePaymentStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdatePaymentStatusCommand) setPaymentStatus(paymentStatus order.PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}

	c.paymentStatus = paymentStatus
	return nil
}
