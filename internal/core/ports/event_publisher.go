package ports

import (
	"context"

	"grocery/internal/core/domain/model/order"
)

// OrderChangedEvent notifies downstream consumers that an order was created
// or moved to a new status. Events are best effort: a failed publish never
// rolls back the state change that caused it.
type OrderChangedEvent struct {
	OrderID       string `json:"order_id"`
	UserID        string `json:"user_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	TotalCents    int64  `json:"total_cents"`
}

// NewOrderChangedEvent captures the notification payload for an order's
// current state.
func NewOrderChangedEvent(aggregate *order.Order) OrderChangedEvent {
	event := OrderChangedEvent{
		UserID:        aggregate.UserID(),
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		TotalCents:    aggregate.Total().Cents(),
	}
	if id := aggregate.ID(); id != nil {
		event.OrderID = id.String()
	}
	return event
}

// OrderEventPublisher publishes order change notifications to the message
// broker. Implementations must be safe for concurrent use.
type OrderEventPublisher interface {
	// Publish sends one order change notification. Errors are reported to
	// the caller for logging but must not affect order state.
	Publish(ctx context.Context, event OrderChangedEvent) error

	// Close releases the underlying broker connection.
	Close() error
}
