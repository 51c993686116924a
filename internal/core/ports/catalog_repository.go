package ports

import (
	"context"

	"grocery/internal/core/domain/model/catalog"
)

// CatalogRepository defines the read contract for the product catalog.
// The order lifecycle only ever reads the catalog: pricing resolves cart
// entries against it at checkout and never again afterwards.
type CatalogRepository interface {
	// GetByIDs retrieves the catalog items with the given identifiers.
	// Identifiers with no match are simply absent from the result; the
	// caller decides whether absence is an error.
	GetByIDs(ctx context.Context, ids []int) ([]catalog.Item, error)

	// GetAll retrieves the whole catalog, for the storefront listing.
	GetAll(ctx context.Context) ([]catalog.Item, error)
}
