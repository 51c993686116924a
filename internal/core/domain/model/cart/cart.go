package cart

import (
	"errors"
	"fmt"

	"grocery/internal/core/domain/model/catalog"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart or RestoreCart factory methods.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

// Entry is one line of a cart: a catalog item identifier and the desired
// quantity. Entries are exposed in insertion order so pricing produces a
// stable item sequence.
type Entry struct {
	ItemID   int
	Quantity int
}

// Cart holds the transient item selection a customer builds before checkout.
// It maps catalog item identifiers to positive quantities and remembers the
// order in which items were first added.
//
// A cart has no persisted identity; session stores serialize it through
// Entries and rebuild it with RestoreCart. A single cart instance is never
// shared between goroutines.
//
// Cart invariants:
//   - Every quantity is positive; the core enforces no upper bound
//     (per-request caps are caller policy)
//   - Iteration order equals insertion order
type Cart struct {
	quantities map[int]int
	itemOrder  []int

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		quantities: make(map[int]int),
		itemOrder:  make([]int, 0),
		guard:      guard.NewConstructorGuard(),
	}
}

// RestoreCart rebuilds a cart from previously captured entries, preserving
// their order. Used by session stores to rehydrate a cart; entries must obey
// the same quantity rules as SetQuantity.
func RestoreCart(entries []Entry) (*Cart, error) {
	c := NewCart()
	for _, entry := range entries {
		if err := c.SetQuantity(entry.ItemID, entry.Quantity); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Validate ensures the cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// SetQuantity sets or overwrites the desired quantity for a catalog item.
// Quantities must be positive; zero and negative quantities fail with a
// ValueIsInvalidError and leave the cart unchanged. Use RemoveItem to drop
// an item.
func (c *Cart) SetQuantity(itemID int, quantity int) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if _, exists := c.quantities[itemID]; !exists {
		c.itemOrder = append(c.itemOrder, itemID)
	}
	c.quantities[itemID] = quantity
	return nil
}

// RemoveItem deletes an item from the cart. Removing an absent item is a no-op.
func (c *Cart) RemoveItem(itemID int) {
	if _, exists := c.quantities[itemID]; !exists {
		return
	}

	delete(c.quantities, itemID)
	for i, id := range c.itemOrder {
		if id == itemID {
			c.itemOrder = append(c.itemOrder[:i], c.itemOrder[i+1:]...)
			break
		}
	}
}

// Quantity returns the quantity for an item and whether the item is in the cart.
func (c *Cart) Quantity(itemID int) (int, bool) {
	quantity, ok := c.quantities[itemID]
	return quantity, ok
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.itemOrder) == 0
}

// Entries returns the cart contents in insertion order.
// The returned slice is a copy; mutating it does not affect the cart.
func (c *Cart) Entries() []Entry {
	entries := make([]Entry, 0, len(c.itemOrder))
	for _, id := range c.itemOrder {
		entries = append(entries, Entry{ItemID: id, Quantity: c.quantities[id]})
	}
	return entries
}

// Clear removes every item from the cart. Called after a successful checkout.
func (c *Cart) Clear() {
	c.quantities = make(map[int]int)
	c.itemOrder = c.itemOrder[:0]
}

// PriceAgainst resolves every cart entry against the supplied catalog and
// produces priced order items in cart insertion order. Pricing is a pure
// read: the cart is left untouched.
//
// Fails with an ObjectNotFoundError if any entry references an identifier
// with no catalog match.
func (c *Cart) PriceAgainst(items []catalog.Item) ([]order.Item, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	byID := make(map[int]catalog.Item, len(items))
	for _, item := range items {
		byID[item.ID()] = item
	}

	priced := make([]order.Item, 0, len(c.itemOrder))
	for _, id := range c.itemOrder {
		catalogItem, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("catalog item", fmt.Sprintf("%d", id))
		}

		orderItem, err := order.NewItem(id, catalogItem.Name(), catalogItem.UnitPrice(), c.quantities[id])
		if err != nil {
			return nil, err
		}
		priced = append(priced, orderItem)
	}

	return priced, nil
}
