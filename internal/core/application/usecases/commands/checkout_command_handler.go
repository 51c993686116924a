package commands

import (
	"context"
	"log/slog"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/metrics"
)

// CheckoutCommandHandler handles the business logic for checkout: it loads
// the user's cart, prices it against the catalog, builds the order, and
// persists it in one transaction.
//
// After the order is committed the cart is cleared and an order-changed event
// is published. Both are best effort: a failure there is logged and the order
// stands.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, cartStore, publisher)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	cartStore  ports.CartStore
	publisher  ports.OrderEventPublisher
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	cartStore ports.CartStore,
	publisher ports.OrderEventPublisher,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		cartStore:  cartStore,
		publisher:  publisher,
	}
}

// Handle processes the checkout command and returns the identifier of the
// created order.
//
// Required inputs are reported in a fixed order: an empty cart fails on
// "items" before the address or payment method is looked at, and the address
// before the payment method. Pricing is a pure read of the catalog; the cart
// itself is never mutated before the commit succeeds.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	userCart, err := h.cartStore.Get(ctx, cmd.UserID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if userCart.IsEmpty() {
		return kernel.UUID{}, errs.NewValueIsRequiredError("items")
	}

	location, err := kernel.NewGeoPoint(cmd.Latitude(), cmd.Longitude())
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause("deliveryAddress", err)
	}
	address, err := order.NewDeliveryAddress(
		cmd.Street(), cmd.City(), cmd.State(), cmd.ZipCode(), location)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entries := userCart.Entries()
	ids := make([]int, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ItemID)
	}

	catalogItems, err := uow.CatalogRepository().GetByIDs(ctx, ids)
	if err != nil {
		return kernel.UUID{}, err
	}

	items, err := userCart.PriceAgainst(catalogItems)
	if err != nil {
		return kernel.UUID{}, err
	}

	newOrder, err := order.NewBuilder().
		SetUserID(cmd.UserID()).
		SetItems(items).
		SetDeliveryAddress(address).
		SetPaymentMethod(cmd.PaymentMethod()).
		SetSpecialInstructions(cmd.SpecialInstructions()).
		Build()
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	metrics.OrdersCreated.Inc()

	if err = h.cartStore.Delete(ctx, cmd.UserID()); err != nil {
		slog.Warn("failed to clear cart after checkout",
			"userId", cmd.UserID(), "error", err)
	}
	if err = h.publisher.Publish(ctx, ports.NewOrderChangedEvent(newOrder)); err != nil {
		slog.Warn("failed to publish order created event",
			"orderId", newOrder.ID().String(), "error", err)
	}

	return *newOrder.ID(), nil
}
