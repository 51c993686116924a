// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Orders are flat records: the priced item list is stored as a JSON document
// column because items are frozen at checkout and never queried individually.
type OrderDTO struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID              string         `gorm:"index"`
	Items               datatypes.JSON `gorm:"type:jsonb"`
	SubtotalCents       int64
	DeliveryFeeCents    int64
	TotalCents          int64
	Status              string `gorm:"type:varchar(32);index"`
	PaymentStatus       string `gorm:"type:varchar(32)"`
	Street              string
	City                string
	State               string
	ZipCode             string
	Latitude            float64
	Longitude           float64
	CreatedAt           time.Time `gorm:"type:timestamptz;index"`
	EstimatedDeliveryAt time.Time `gorm:"type:timestamptz"`
	SpecialInstructions string
	PaymentMethod       string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one priced order line inside the JSON items column.
type ItemDTO struct {
	ItemID         int    `json:"item_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	SubtotalCents  int64  `json:"subtotal_cents"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ItemID:         item.ItemID(),
			Name:           item.Name(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
			SubtotalCents:  item.Subtotal().Cents(),
		})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	address := aggregate.DeliveryAddress()
	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		UserID:              aggregate.UserID(),
		Items:               datatypes.JSON(rawItems),
		SubtotalCents:       aggregate.Subtotal().Cents(),
		DeliveryFeeCents:    aggregate.DeliveryFee().Cents(),
		TotalCents:          aggregate.Total().Cents(),
		Status:              aggregate.Status().String(),
		PaymentStatus:       aggregate.PaymentStatus().String(),
		Street:              address.Street(),
		City:                address.City(),
		State:               address.State(),
		ZipCode:             address.ZipCode(),
		Latitude:            address.Location().Latitude(),
		Longitude:           address.Location().Longitude(),
		CreatedAt:           aggregate.CreatedAt(),
		EstimatedDeliveryAt: aggregate.EstimatedDeliveryAt(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		PaymentMethod:       aggregate.PaymentMethod(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs every value object through its constructor, so corrupted rows
// surface as errors instead of invalid aggregates.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var itemDTOs []ItemDTO
	if err = json.Unmarshal(dto.Items, &itemDTOs); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		unitPrice, priceErr := kernel.NewMoneyFromCents(itemDTO.UnitPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewItem(itemDTO.ItemID, itemDTO.Name, unitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	subtotal, err := kernel.NewMoneyFromCents(dto.SubtotalCents)
	if err != nil {
		return nil, err
	}
	deliveryFee, err := kernel.NewMoneyFromCents(dto.DeliveryFeeCents)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoneyFromCents(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}
	address, err := order.NewDeliveryAddress(dto.Street, dto.City, dto.State, dto.ZipCode, location)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.UserID,
		items,
		subtotal,
		deliveryFee,
		total,
		status,
		paymentStatus,
		address,
		dto.CreatedAt,
		dto.EstimatedDeliveryAt,
		dto.SpecialInstructions,
		dto.PaymentMethod,
	)
}
