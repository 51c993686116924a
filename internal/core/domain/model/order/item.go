package order

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("order Item must be created via NewItem constructor")

// Item is one priced line of an order, frozen at pricing time: the catalog
// item identifier and name, the unit price in effect when the cart was
// priced, the quantity, and the resulting subtotal. Later catalog price
// changes never retroactively affect an existing order.
type Item struct { //nolint:recvcheck //using for validation
	itemID    int
	name      string
	unitPrice kernel.Money
	quantity  int
	subtotal  kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates a priced order line. The subtotal is computed here, once,
// as unit price times quantity; it is never recomputed afterwards.
func NewItem(itemID int, name string, unitPrice kernel.Money, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setItemID(itemID),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.unitPrice = unitPrice
	item.subtotal = unitPrice.MultiplyQuantity(quantity)
	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ItemID returns the catalog identifier this line was priced from.
func (i Item) ItemID() int {
	return i.itemID
}

// Name returns the item name captured at pricing time.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the unit price captured at pricing time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns the frozen line subtotal (unit price × quantity).
func (i Item) Subtotal() kernel.Money {
	return i.subtotal
}

func (i *Item) setItemID(itemID int) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id",
			fmt.Errorf("%d is not greater than 0", itemID))
	}
	i.itemID = itemID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
