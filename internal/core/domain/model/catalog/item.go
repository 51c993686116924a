// Package catalog defines the read-only catalog item the core prices carts
// against. The catalog itself is owned by an external collaborator; the core
// never mutates it.
package catalog

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("catalog Item must be created via NewItem constructor")

// Item is a single sellable product: identifier, display name, and unit price.
// Immutable value object; the pricing of a cart snapshots these fields into
// order items, so later catalog changes never touch existing orders.
type Item struct { //nolint:recvcheck //using for validation
	id        int
	name      string
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates a catalog item. The identifier must be positive and the
// name non-empty; the unit price may be zero but never negative (enforced by
// kernel.Money construction).
func NewItem(id int, name string, unitPrice kernel.Money) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
	); err != nil {
		return Item{}, err
	}

	item.unitPrice = unitPrice
	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the catalog item identifier.
func (i Item) ID() int {
	return i.id
}

// Name returns the display name.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the price of one unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i *Item) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}
