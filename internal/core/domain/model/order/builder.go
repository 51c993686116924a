package order

import (
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// Builder accumulates the fields of a new order through chained setters and
// validates them only at Build time. It is the single way to create an order
// at checkout.
//
// Example:
//
//	o, err := order.NewBuilder().
//	    SetUserID(userID).
//	    SetItems(pricedItems).
//	    SetDeliveryAddress(address).
//	    SetPaymentMethod("card").
//	    Build()
type Builder struct {
	userID              string
	items               []Item
	deliveryAddress     DeliveryAddress
	paymentMethod       string
	specialInstructions string
}

// NewBuilder creates an empty order builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetUserID sets the owning user identifier.
func (b *Builder) SetUserID(userID string) *Builder {
	b.userID = userID
	return b
}

// SetItems sets the priced items produced by cart pricing.
func (b *Builder) SetItems(items []Item) *Builder {
	b.items = append([]Item(nil), items...)
	return b
}

// SetDeliveryAddress sets the delivery destination.
func (b *Builder) SetDeliveryAddress(address DeliveryAddress) *Builder {
	b.deliveryAddress = address
	return b
}

// SetPaymentMethod sets the payment method identifier.
func (b *Builder) SetPaymentMethod(method string) *Builder {
	b.paymentMethod = method
	return b
}

// SetSpecialInstructions sets the optional delivery instructions.
func (b *Builder) SetSpecialInstructions(instructions string) *Builder {
	b.specialInstructions = instructions
	return b
}

// Build validates the accumulated fields and produces the order.
//
// Validation reports the first absent required field, in this fixed order:
// userId, items (which must also be non-empty), deliveryAddress,
// paymentMethod. Every absence is a ValueIsRequiredError naming the field.
//
// A successful build computes the subtotal as the sum of item subtotals, the
// total as subtotal plus the standard delivery fee, stamps the creation time,
// sets the estimated delivery time to creation time plus DeliveryLeadTime,
// and starts the order at status pending with payment pending. The returned
// order carries no identifier; the order store assigns one on persistence.
//
// Build has no side effects and never touches storage.
func (b *Builder) Build() (*Order, error) {
	if b.userID == "" {
		return nil, errs.NewValueIsRequiredError("userId")
	}
	if len(b.items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if err := b.deliveryAddress.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredError("deliveryAddress")
	}
	if b.paymentMethod == "" {
		return nil, errs.NewValueIsRequiredError("paymentMethod")
	}

	subtotal := kernel.Money{}
	for _, item := range b.items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		subtotal = subtotal.Add(item.Subtotal())
	}

	fee := StandardDeliveryFee()
	now := time.Now().UTC()

	return &Order{
		userID:              b.userID,
		items:               append([]Item(nil), b.items...),
		subtotal:            subtotal,
		deliveryFee:         fee,
		total:               subtotal.Add(fee),
		status:              StatusPending,
		paymentStatus:       PaymentPending,
		deliveryAddress:     b.deliveryAddress,
		createdAt:           now,
		estimatedDeliveryAt: now.Add(DeliveryLeadTime),
		specialInstructions: b.specialInstructions,
		paymentMethod:       b.paymentMethod,
		isConstructed:       true,
	}, nil
}
