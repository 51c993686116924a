// Package catalogrepo provides read-only persistence for the product catalog.
// Catalog content management happens elsewhere; the order lifecycle only ever
// reads the catalog to price carts and render the storefront listing.
package catalogrepo

import (
	"grocery/internal/core/domain/model/catalog"
	"grocery/internal/core/domain/model/kernel"
)

// ItemDTO represents one catalog item row.
type ItemDTO struct {
	ID             int `gorm:"primaryKey"`
	Name           string
	UnitPriceCents int64
}

// TableName specifies the database table name for catalog items.
func (ItemDTO) TableName() string {
	return "catalog_items"
}

func toDomain(dto ItemDTO) (catalog.Item, error) {
	unitPrice, err := kernel.NewMoneyFromCents(dto.UnitPriceCents)
	if err != nil {
		return catalog.Item{}, err
	}
	return catalog.NewItem(dto.ID, dto.Name, unitPrice)
}
