package inmem

import (
	"context"
	"sort"

	"grocery/internal/core/domain/model/catalog"
)

// CatalogRepository serves a fixed catalog from memory. Used for local
// development and as the test substitute for the database-backed adapter.
type CatalogRepository struct {
	items map[int]catalog.Item
}

// NewCatalogRepository creates a catalog repository over a fixed item set.
func NewCatalogRepository(items []catalog.Item) *CatalogRepository {
	byID := make(map[int]catalog.Item, len(items))
	for _, item := range items {
		byID[item.ID()] = item
	}
	return &CatalogRepository{items: byID}
}

// GetByIDs retrieves the catalog items with the given identifiers, ordered by
// identifier. Identifiers with no match are absent from the result.
func (r *CatalogRepository) GetByIDs(_ context.Context, ids []int) ([]catalog.Item, error) {
	items := make([]catalog.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID() < items[j].ID() })
	return items, nil
}

// GetAll retrieves the whole catalog ordered by identifier.
func (r *CatalogRepository) GetAll(_ context.Context) ([]catalog.Item, error) {
	items := make([]catalog.Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID() < items[j].ID() })
	return items, nil
}
