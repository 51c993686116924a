package inmem

import (
	"context"

	"grocery/internal/core/ports"
)

// UnitOfWorkFactory creates unit of work instances over shared in-memory stores.
type UnitOfWorkFactory struct {
	orders  *OrderRepository
	catalog *CatalogRepository
}

// NewUnitOfWorkFactory creates a factory bound to the given stores.
func NewUnitOfWorkFactory(orders *OrderRepository, catalog *CatalogRepository) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{orders: orders, catalog: catalog}
}

// Create produces a new UnitOfWork instance.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{orders: f.orders, catalog: f.catalog}
}

// UnitOfWork satisfies the transactional contract over in-memory stores.
// There is no transaction to manage: the order repository already serializes
// writes under its mutex, so Begin, Commit and Rollback are no-ops.
type UnitOfWork struct {
	orders  *OrderRepository
	catalog *CatalogRepository
}

func (uow *UnitOfWork) Begin(_ context.Context) error    { return nil }
func (uow *UnitOfWork) Commit(_ context.Context) error   { return nil }
func (uow *UnitOfWork) Rollback(_ context.Context) error { return nil }

// OrderRepository provides access to the shared in-memory order store.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return uow.orders
}

// CatalogRepository provides access to the shared in-memory catalog.
func (uow *UnitOfWork) CatalogRepository() ports.CatalogRepository {
	return uow.catalog
}
