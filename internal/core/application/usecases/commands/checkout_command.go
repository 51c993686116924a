package commands

import (
	"errors"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a request to turn the user's current cart into
// an order. Carries the delivery address (already geocoded by the upstream
// collaborator), the payment method, and optional delivery instructions; the
// items come from the user's stored cart.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(userID,
//	    "500 Market St", "San Francisco", "CA", "94105",
//	    37.7749, -122.4194, "card", "leave at the door")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	userID              string
	street              string
	city                string
	state               string
	zipCode             string
	latitude            float64
	longitude           float64
	paymentMethod       string
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command. Only the user identifier is
// validated here; the address, cart, and payment method are validated in the
// handler so absent fields are reported in the order the storefront expects.
func NewCheckoutCommand(
	userID string,
	street string,
	city string,
	state string,
	zipCode string,
	latitude float64,
	longitude float64,
	paymentMethod string,
	specialInstructions string,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := checkoutCommand.setUserID(userID); err != nil {
		return CheckoutCommand{}, err
	}

	checkoutCommand.street = street
	checkoutCommand.city = city
	checkoutCommand.state = state
	checkoutCommand.zipCode = zipCode
	checkoutCommand.latitude = latitude
	checkoutCommand.longitude = longitude
	checkoutCommand.paymentMethod = paymentMethod
	checkoutCommand.specialInstructions = specialInstructions

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// UserID returns the identifier of the user checking out.
func (c CheckoutCommand) UserID() string {
	return c.userID
}

// Street returns the delivery street line.
func (c CheckoutCommand) Street() string {
	return c.street
}

// City returns the delivery city.
func (c CheckoutCommand) City() string {
	return c.city
}

// State returns the delivery state or region.
func (c CheckoutCommand) State() string {
	return c.state
}

// ZipCode returns the delivery postal code.
func (c CheckoutCommand) ZipCode() string {
	return c.zipCode
}

// Latitude returns the geocoded delivery latitude.
func (c CheckoutCommand) Latitude() float64 {
	return c.latitude
}

// Longitude returns the geocoded delivery longitude.
func (c CheckoutCommand) Longitude() float64 {
	return c.longitude
}

// PaymentMethod returns the payment method identifier.
func (c CheckoutCommand) PaymentMethod() string {
	return c.paymentMethod
}

// SpecialInstructions returns the optional delivery instructions.
func (c CheckoutCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *CheckoutCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	c.userID = userID
	return nil
}
