package catalogrepo

import (
	"context"

	"grocery/internal/core/domain/model/catalog"
	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetByIDs retrieves the catalog items with the given identifiers.
// Identifiers with no match are absent from the result.
func (r *GormCatalogRepository) GetByIDs(ctx context.Context, ids []int) ([]catalog.Item, error) {
	if len(ids) == 0 {
		return []catalog.Item{}, nil
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&dtos, "id IN ?", ids).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("get catalog items", err)
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves the whole catalog for the storefront listing.
func (r *GormCatalogRepository) GetAll(ctx context.Context) ([]catalog.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&dtos).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("get catalog", err)
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []ItemDTO) ([]catalog.Item, error) {
	items := make([]catalog.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
