// Package queries contains read operations that bypass the domain model.
// Implements the Query side of the CQRS architecture: handlers read the
// storage schema directly and shape results for presentation.
package queries

import (
	"encoding/json"
	"time"
)

// OrderItemResponse is one priced order line as presented to the storefront.
type OrderItemResponse struct {
	ItemID    int     `json:"itemId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// OrderResponse is the presentation shape of one order: money as decimals,
// statuses as their persisted strings, and the tracker step precomputed for
// the delivery tracker widget.
type OrderResponse struct {
	ID                  string              `json:"id"`
	UserID              string              `json:"userId"`
	Items               []OrderItemResponse `json:"items"`
	Subtotal            float64             `json:"subtotal"`
	DeliveryFee         float64             `json:"deliveryFee"`
	Total               float64             `json:"total"`
	Status              string              `json:"status"`
	PaymentStatus       string              `json:"paymentStatus"`
	TrackerStep         int                 `json:"trackerStep"`
	Street              string              `json:"street"`
	City                string              `json:"city"`
	State               string              `json:"state"`
	ZipCode             string              `json:"zipCode"`
	Latitude            float64             `json:"latitude"`
	Longitude           float64             `json:"longitude"`
	CreatedAt           time.Time           `json:"createdAt"`
	EstimatedDeliveryAt time.Time           `json:"estimatedDeliveryAt"`
	SpecialInstructions string              `json:"specialInstructions,omitempty"`
	PaymentMethod       string              `json:"paymentMethod"`
}

// storedItem matches the JSON item documents in the orders table.
type storedItem struct {
	ItemID         int    `json:"item_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	SubtotalCents  int64  `json:"subtotal_cents"`
}

func decodeItems(raw []byte) ([]OrderItemResponse, error) {
	var stored []storedItem
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}

	items := make([]OrderItemResponse, 0, len(stored))
	for _, item := range stored {
		items = append(items, OrderItemResponse{
			ItemID:    item.ItemID,
			Name:      item.Name,
			UnitPrice: float64(item.UnitPriceCents) / 100,
			Quantity:  item.Quantity,
			Subtotal:  float64(item.SubtotalCents) / 100,
		})
	}
	return items, nil
}
