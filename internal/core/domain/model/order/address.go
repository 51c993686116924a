package order

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// ErrDeliveryAddressIsNotConstructed is returned when a DeliveryAddress was
// not created through the NewDeliveryAddress factory method.
var ErrDeliveryAddressIsNotConstructed = errors.New(
	"DeliveryAddress must be created via NewDeliveryAddress constructor")

// DeliveryAddress is the destination of an order: the free-text postal
// fields plus the geographic coordinates the geocoding collaborator resolved
// them to. Both the text fields and the coordinates are required before an
// order can be built.
type DeliveryAddress struct { //nolint:recvcheck //using for validation
	street   string
	city     string
	state    string
	zipCode  string
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewDeliveryAddress creates a delivery address. Every text field must be
// non-empty and the location must be a properly constructed GeoPoint.
func NewDeliveryAddress(
	street string,
	city string,
	state string,
	zipCode string,
	location kernel.GeoPoint,
) (DeliveryAddress, error) {
	address := DeliveryAddress{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setField(&address.street, street, "street"),
		address.setField(&address.city, city, "city"),
		address.setField(&address.state, state, "state"),
		address.setField(&address.zipCode, zipCode, "zipCode"),
		address.setLocation(location),
	); err != nil {
		return DeliveryAddress{}, err
	}

	return address, nil
}

// Validate ensures the address was created through NewDeliveryAddress.
func (a DeliveryAddress) Validate() error {
	return a.guard.Validate(ErrDeliveryAddressIsNotConstructed)
}

// Street returns the street line.
func (a DeliveryAddress) Street() string {
	return a.street
}

// City returns the city.
func (a DeliveryAddress) City() string {
	return a.city
}

// State returns the state or region.
func (a DeliveryAddress) State() string {
	return a.state
}

// ZipCode returns the postal code.
func (a DeliveryAddress) ZipCode() string {
	return a.zipCode
}

// Location returns the geocoded coordinates.
func (a DeliveryAddress) Location() kernel.GeoPoint {
	return a.location
}

func (a *DeliveryAddress) setField(target *string, value string, name string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*target = value
	return nil
}

func (a *DeliveryAddress) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.location = location
	return nil
}
